// internal/game/rules_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uno-arcade/uno/internal/models"
)

func TestCanPlayCard(t *testing.T) {
	top := models.Card{Color: models.ColorRed, Value: "3"}

	tests := []struct {
		name string
		card models.Card
		want bool
	}{
		{"same color different value", models.Card{Color: models.ColorRed, Value: "7"}, true},
		{"same value different color", models.Card{Color: models.ColorBlue, Value: "3"}, true},
		{"exact match", models.Card{Color: models.ColorRed, Value: "3"}, true},
		{"wild", models.Card{Color: models.ColorWild, Value: models.ValueWild}, true},
		{"wild draw four", models.Card{Color: models.ColorWild, Value: models.ValueDrawFour}, true},
		{"colored special on same color", models.Card{Color: models.ColorRed, Value: models.ValueSkip}, true},
		{"no match", models.Card{Color: models.ColorGreen, Value: "8"}, false},
		{"colored special on other color", models.Card{Color: models.ColorYellow, Value: models.ValueDrawTwo}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canPlayCard(tt.card, top))
		})
	}
}

func TestCanPlayCardSpecialTops(t *testing.T) {
	// Value matching applies to specials too: a skip may be played on a skip
	// of any color.
	top := models.Card{Color: models.ColorBlue, Value: models.ValueSkip}
	assert.True(t, canPlayCard(models.Card{Color: models.ColorRed, Value: models.ValueSkip}, top))
	assert.False(t, canPlayCard(models.Card{Color: models.ColorRed, Value: "5"}, top))

	// A recolored wild on the discard top matches by its assigned color.
	top = models.Card{Color: models.ColorGreen, Value: models.ValueWild}
	assert.True(t, canPlayCard(models.Card{Color: models.ColorGreen, Value: "2"}, top))
	assert.False(t, canPlayCard(models.Card{Color: models.ColorRed, Value: "2"}, top))
}

func TestRecolorWild(t *testing.T) {
	tests := []struct {
		name string
		hand []models.Card
		want models.Color
	}{
		{
			"most frequent color wins",
			[]models.Card{
				{Color: models.ColorBlue, Value: "2"},
				{Color: models.ColorBlue, Value: "7"},
				{Color: models.ColorGreen, Value: "3"},
			},
			models.ColorBlue,
		},
		{
			"tie breaks by first color seen",
			[]models.Card{
				{Color: models.ColorYellow, Value: "1"},
				{Color: models.ColorGreen, Value: "4"},
				{Color: models.ColorGreen, Value: "6"},
				{Color: models.ColorYellow, Value: "9"},
			},
			models.ColorYellow,
		},
		{
			"wilds in hand are ignored",
			[]models.Card{
				{Color: models.ColorWild, Value: models.ValueWild},
				{Color: models.ColorGreen, Value: "4"},
			},
			models.ColorGreen,
		},
		{
			"empty hand defaults to red",
			nil,
			models.ColorRed,
		},
		{
			"all-wild hand defaults to red",
			[]models.Card{{Color: models.ColorWild, Value: models.ValueDrawFour}},
			models.ColorRed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recolorWild(tt.hand))
		})
	}
}

func TestReverseTwiceRestoresDirection(t *testing.T) {
	g := newTestGame(t, 20, 3)

	assert.Equal(t, 1, g.Direction)
	g.applyCardEffect(models.Card{Color: models.ColorRed, Value: models.ValueReverse})
	assert.Equal(t, -1, g.Direction)
	g.applyCardEffect(models.Card{Color: models.ColorBlue, Value: models.ValueReverse})
	assert.Equal(t, 1, g.Direction)
}

func TestForceDrawUsesReshufflePolicy(t *testing.T) {
	g := newTestGame(t, 21, 2)
	a, b := g.Players[0], g.Players[1]

	// Move everything into the discard pile, then swap a non-wild card to the
	// top so the +2 below can match its color.
	g.DiscardPile = append(g.DiscardPile, g.Deck...)
	g.Deck = nil
	last := len(g.DiscardPile) - 1
	for i, c := range g.DiscardPile {
		if c.Color != models.ColorWild {
			g.DiscardPile[i], g.DiscardPile[last] = g.DiscardPile[last], g.DiscardPile[i]
			break
		}
	}
	top := g.discardTop()

	// Leave one card in the deck: the +2 must reshuffle mid-draw.
	g.Deck = []models.Card{g.DiscardPile[0]}
	g.DiscardPile = g.DiscardPile[1:]

	setHand(g, a.ID,
		models.Card{Color: top.Color, Value: models.ValueDrawTwo},
		models.Card{Color: models.ColorRed, Value: "4"},
	)
	victimHandBefore := len(g.Hands[b.ID])
	countBefore := g.CardCount()

	_, err := g.PlayCard(a.ID, 0)
	assert.NoError(t, err)
	assert.Len(t, g.Hands[b.ID], victimHandBefore+2)
	assert.Equal(t, countBefore, g.CardCount(), "reshuffle must not create or destroy cards")
}

func TestTurnMonotonicity(t *testing.T) {
	g := newTestGame(t, 22, 3)

	// Absent special effects, advance moves one seat at a time and a full
	// cycle returns to the original player.
	start := g.CurrentPlayerIndex
	for i := 1; i <= len(g.Players); i++ {
		g.advanceTurn()
		assert.Equal(t, (start+i)%len(g.Players), g.CurrentPlayerIndex)
	}
	assert.Equal(t, start, g.CurrentPlayerIndex)

	// Same property backwards.
	g.Direction = -1
	for i := 0; i < len(g.Players); i++ {
		g.advanceTurn()
	}
	assert.Equal(t, start, g.CurrentPlayerIndex)
}
