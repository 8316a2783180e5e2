// internal/database/game.go
package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/uno-arcade/uno/internal/game"
)

// SaveGameSnapshot upserts the serialized game state. The engine mutates the
// in-memory record and hands back a snapshot; this is the record-store side
// of that contract.
func SaveGameSnapshot(ctx context.Context, snap game.GameSnapshot) error {
	state, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal game snapshot: %w", err)
	}

	q := `
		INSERT INTO games (id, game_type, status, state, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE SET status=$3, state=$4, updated_at=now()
	`
	if _, err := DB.Exec(ctx, q, snap.ID, snap.GameType, snap.Status, state); err != nil {
		return fmt.Errorf("failed to upsert game snapshot: %w", err)
	}
	return nil
}

// RecordGameResult marks a game completed and bumps the winner's score, in
// one transaction. Bot winners have no directory row; the score update is
// then a no-op.
func RecordGameResult(ctx context.Context, gameID, winnerID uuid.UUID) error {
	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
			INSERT INTO games (id, status, winner_id, updated_at)
			VALUES ($1, 'finished', $2, now())
			ON CONFLICT (id) DO UPDATE SET status='finished', winner_id=$2, updated_at=now()
		`
		if _, e := tx.Exec(ctx, q, gameID, winnerID); e != nil {
			return e
		}
		_, e := tx.Exec(ctx, `UPDATE players SET score = score + 1 WHERE id=$1`, winnerID)
		return e
	})
	if err != nil {
		return fmt.Errorf("tx record game result: %w", err)
	}
	return nil
}

// InsertActionRecords batch-inserts historian action rows.
func InsertActionRecords(ctx context.Context, records []ActionRow) error {
	if len(records) == 0 {
		return nil
	}
	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
			INSERT INTO game_actions (game_id, action_index, actor_id, action_type, payload, occurred_at)
			VALUES ($1, $2, $3, $4, $5, to_timestamp($6::double precision / 1000))
			ON CONFLICT DO NOTHING
		`
		for _, r := range records {
			payload, e := json.Marshal(r.Payload)
			if e != nil {
				return e
			}
			if _, e := tx.Exec(ctx, q, r.GameID, r.ActionIndex, r.ActorID, r.ActionType, payload, r.Timestamp); e != nil {
				return e
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("tx insert action records: %w", err)
	}
	return nil
}

// ActionRow mirrors cache.GameActionRecord for persistence without importing
// the cache package here.
type ActionRow struct {
	GameID      uuid.UUID
	ActionIndex int
	ActorID     uuid.UUID
	ActionType  string
	Payload     map[string]interface{}
	Timestamp   int64
}
