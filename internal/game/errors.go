// internal/game/errors.go
package game

import "errors"

// Engine error taxonomy. Every validation failure is detected before any
// mutation; an operation either completes fully or returns one of these.
var (
	// ErrGameNotFound indicates an unknown game ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrPlayerNotFound indicates the acting player is not seated in the game.
	ErrPlayerNotFound = errors.New("player not found in game")

	// ErrNotYourTurn indicates the acting player is not the current player.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrInvalidMove indicates an out-of-range card index or a card that does
	// not match the discard top.
	ErrInvalidMove = errors.New("invalid move")

	// ErrNotJoinable indicates a join attempt on a single-player game, a full
	// game, or a game that already started.
	ErrNotJoinable = errors.New("game is not joinable")

	// ErrGameFinished indicates an action against a terminal game record.
	ErrGameFinished = errors.New("game is finished")

	// ErrExhaustedSupply indicates no card is available to draw even after
	// reshuffling the discard pile. Unreachable with the fixed 108-card deck
	// and at most 4 hands.
	ErrExhaustedSupply = errors.New("no cards available to draw")
)
