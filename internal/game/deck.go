// internal/game/deck.go
package game

import (
	"math/rand"

	"github.com/uno-arcade/uno/internal/models"
)

// DeckSize is the fixed card universe for one game. Cards are neither created
// nor destroyed after the initial deal: deck + discard pile + hands always sum
// to this.
const DeckSize = 108

// NewDeck builds the canonical 108-card UNO deck in deterministic composition
// order: per color one "0", two of each "1".."9", two each of skip, reverse
// and "+2"; plus four wild and four wild "+4" cards. Callers shuffle the
// result themselves.
func NewDeck() []models.Card {
	deck := make([]models.Card, 0, DeckSize)

	numbers := []models.Value{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	specials := []models.Value{models.ValueSkip, models.ValueReverse, models.ValueDrawTwo}

	for _, color := range models.Colors {
		for _, num := range numbers {
			deck = append(deck, models.Card{Color: color, Value: num})
			if num != "0" {
				deck = append(deck, models.Card{Color: color, Value: num})
			}
		}
		for _, special := range specials {
			deck = append(deck, models.Card{Color: color, Value: special})
			deck = append(deck, models.Card{Color: color, Value: special})
		}
	}

	for i := 0; i < 4; i++ {
		deck = append(deck, models.Card{Color: models.ColorWild, Value: models.ValueWild})
		deck = append(deck, models.Card{Color: models.ColorWild, Value: models.ValueDrawFour})
	}

	return deck
}

// shuffleCards permutes cards in place with a Fisher-Yates shuffle. The rng is
// injected so games can be seeded deterministically in tests; fairness, not
// secrecy, is the requirement here.
func shuffleCards(rng *rand.Rand, cards []models.Card) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
