// internal/database/player.go
package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uno-arcade/uno/internal/models"
)

// CreatePlayer inserts a new player-directory row, generating an ID when the
// caller did not provide one.
func CreatePlayer(ctx context.Context, p *models.PlayerRecord) error {
	if p.ID == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("failed to generate player id: %w", err)
		}
		p.ID = id
	}

	q := `INSERT INTO players (id, name, score, is_playing)
	      VALUES ($1, $2, $3, $4)
	      RETURNING created_at`
	if err := DB.QueryRow(ctx, q, p.ID, p.Name, p.Score, p.IsPlaying).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// GetPlayer loads a single player row by ID.
func GetPlayer(ctx context.Context, id uuid.UUID) (*models.PlayerRecord, error) {
	var p models.PlayerRecord
	q := `SELECT id, name, score, is_playing, created_at FROM players WHERE id=$1`
	err := DB.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Score, &p.IsPlaying, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPlayers returns every player row, newest first.
func ListPlayers(ctx context.Context) ([]models.PlayerRecord, error) {
	q := `SELECT id, name, score, is_playing, created_at FROM players ORDER BY created_at DESC`
	rows, err := DB.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []models.PlayerRecord
	for rows.Next() {
		var p models.PlayerRecord
		if err := rows.Scan(&p.ID, &p.Name, &p.Score, &p.IsPlaying, &p.CreatedAt); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// UpdatePlayerName renames a player and returns the updated row.
func UpdatePlayerName(ctx context.Context, id uuid.UUID, name string) (*models.PlayerRecord, error) {
	var p models.PlayerRecord
	q := `UPDATE players SET name=$2 WHERE id=$1
	      RETURNING id, name, score, is_playing, created_at`
	err := DB.QueryRow(ctx, q, id, name).Scan(&p.ID, &p.Name, &p.Score, &p.IsPlaying, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePlayer removes a player row.
func DeletePlayer(ctx context.Context, id uuid.UUID) error {
	if _, err := DB.Exec(ctx, `DELETE FROM players WHERE id=$1`, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}
