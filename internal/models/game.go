// internal/models/game.go
package models

// GameType distinguishes a solo game against a bot from a multiplayer table.
type GameType string

const (
	GameTypeSingle      GameType = "single"
	GameTypeMultiplayer GameType = "multiplayer"
)

// GameStatus is the game lifecycle state. Finished is terminal.
type GameStatus string

const (
	StatusWaiting  GameStatus = "waiting"
	StatusActive   GameStatus = "active"
	StatusFinished GameStatus = "finished"
)
