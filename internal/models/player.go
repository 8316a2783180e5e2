// internal/models/player.go
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Player is a seated game participant: either a registered human or a
// synthetic bot. Bots exist only inside a game record and are never persisted.
type Player struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	IsBot bool      `json:"isBot"`
}

// NewBotPlayer creates a synthetic participant whose moves are chosen by the
// engine's bot strategy.
func NewBotPlayer() *Player {
	id, _ := uuid.NewRandom()
	return &Player{
		ID:    id,
		Name:  fmt.Sprintf("UNO Bot %s", id.String()[:8]),
		IsBot: true,
	}
}

// PlayerRecord is the persisted player-directory row. The engine never sees
// this type; it only compares player IDs for equality.
type PlayerRecord struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	IsPlaying bool      `json:"isPlaying"`
	CreatedAt time.Time `json:"createdAt"`
}
