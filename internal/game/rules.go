// internal/game/rules.go
package game

import (
	"log"

	"github.com/google/uuid"
	"github.com/uno-arcade/uno/internal/models"
)

// canPlayCard is the complete legality predicate: a card may be played iff it
// is wild, matches the discard top's color, or matches its value.
func canPlayCard(card, top models.Card) bool {
	return card.Color == models.ColorWild ||
		card.Color == top.Color ||
		card.Value == top.Value
}

// applyCardEffect resolves the special effect of a just-played card. It runs
// after the card has been removed from the hand and pushed onto the discard
// pile, and before the standard end-of-turn advance.
//
// Forced-draw semantics: the victim of a "+2" or "+4" both draws and loses
// their turn. That is encoded here as a single combined transition (draw,
// then step past the victim) rather than relying on advance ordering.
//
// Reverse is a literal direction flip. In a two-player game that sends the
// turn back to the player who just moved once the end-of-turn advance runs;
// there is no special-cased skip shortcut.
func (g *UnoGame) applyCardEffect(played models.Card) {
	switch played.Value {
	case models.ValueReverse:
		g.Direction = -g.Direction
	case models.ValueSkip:
		g.advanceTurn()
	case models.ValueDrawTwo:
		g.forceDraw(2)
	case models.ValueDrawFour:
		g.forceDraw(4)
	}
}

// forceDraw deals n deck cards to the next seat in direction order, then
// steps past that seat so the standard advance lands on the player after the
// victim.
func (g *UnoGame) forceDraw(n int) {
	seats := len(g.Players)
	victimIdx := (g.CurrentPlayerIndex + g.Direction + seats) % seats
	victim := g.Players[victimIdx]

	cards, err := g.drawFromDeck(n)
	if err != nil {
		// Unreachable with the fixed 108-card universe; log and carry on so
		// the turn still resolves.
		log.Printf("Game %s: forced draw failed: %v", g.ID, err)
	} else {
		g.addCards(victim.ID, cards)
	}
	g.advanceTurn()
}

// recolorWild reassigns a wild card's color at the moment of play: the most
// frequent non-wild color among the cards remaining in the player's hand,
// with ties broken by the order colors are first seen, defaulting to red for
// a hand with no non-wild cards left.
func recolorWild(hand []models.Card) models.Color {
	counts := make(map[models.Color]int)
	order := make([]models.Color, 0, 4)
	for _, c := range hand {
		if c.Color == models.ColorWild {
			continue
		}
		if counts[c.Color] == 0 {
			order = append(order, c.Color)
		}
		counts[c.Color]++
	}

	best := models.ColorRed
	bestCount := 0
	for _, color := range order {
		if counts[color] > bestCount {
			best = color
			bestCount = counts[color]
		}
	}
	return best
}

// handEmpty reports whether a player's hand is empty. The first empty hand
// wins and short-circuits any further effect resolution.
func (g *UnoGame) handEmpty(playerID uuid.UUID) bool {
	return len(g.Hands[playerID]) == 0
}
