// internal/game/hand.go
package game

import (
	"github.com/google/uuid"
	"github.com/uno-arcade/uno/internal/models"
)

// removeCardAt removes and returns the card at idx from a player's hand,
// preserving the order of the remaining cards. Fails with ErrInvalidMove when
// idx is out of range.
func (g *UnoGame) removeCardAt(playerID uuid.UUID, idx int) (models.Card, error) {
	hand := g.Hands[playerID]
	if idx < 0 || idx >= len(hand) {
		return models.Card{}, ErrInvalidMove
	}
	card := hand[idx]
	g.Hands[playerID] = append(hand[:idx:idx], hand[idx+1:]...)
	return card, nil
}

// addCards appends cards to a player's hand in draw order.
func (g *UnoGame) addCards(playerID uuid.UUID, cards []models.Card) {
	g.Hands[playerID] = append(g.Hands[playerID], cards...)
}
