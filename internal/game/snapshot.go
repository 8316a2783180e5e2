// internal/game/snapshot.go
package game

import (
	"github.com/google/uuid"
	"github.com/uno-arcade/uno/internal/models"
)

// GameSnapshot is an immutable copy of a game record, handed back to the
// boundary layer for responses and persistence. Hands are keyed by the string
// form of the player ID so the snapshot marshals cleanly to JSON.
type GameSnapshot struct {
	ID            uuid.UUID                `json:"id"`
	GameType      models.GameType          `json:"gameType"`
	Status        models.GameStatus        `json:"status"`
	Players       []models.Player          `json:"players"`
	CurrentPlayer uuid.UUID                `json:"currentPlayer"`
	Winner        *uuid.UUID               `json:"winner,omitempty"`
	Direction     int                      `json:"direction"`
	DiscardTop    *models.Card             `json:"discardTop,omitempty"`
	DeckCount     int                      `json:"deckCount"`
	Hands         map[string][]models.Card `json:"hands"`
}

// Snapshot copies the current state. Assumes Mu is held.
func (g *UnoGame) Snapshot() GameSnapshot {
	snap := GameSnapshot{
		ID:        g.ID,
		GameType:  g.Type,
		Status:    g.Status,
		Players:   make([]models.Player, len(g.Players)),
		Direction: g.Direction,
		DeckCount: len(g.Deck),
		Hands:     make(map[string][]models.Card, len(g.Hands)),
	}
	for i, p := range g.Players {
		snap.Players[i] = *p
	}
	if g.Status == models.StatusActive {
		snap.CurrentPlayer = g.CurrentPlayer().ID
	}
	if g.Winner != uuid.Nil {
		w := g.Winner
		snap.Winner = &w
	}
	if len(g.DiscardPile) > 0 {
		top := g.discardTop()
		snap.DiscardTop = &top
	}
	for id, hand := range g.Hands {
		handCopy := make([]models.Card, len(hand))
		copy(handCopy, hand)
		snap.Hands[id.String()] = handCopy
	}
	return snap
}
