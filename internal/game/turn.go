// internal/game/turn.go
package game

// advanceTurn moves the current player one seat in the current direction,
// wrapping around the seating order. It knows nothing about skip or reverse
// beyond consuming the already-updated Direction.
func (g *UnoGame) advanceTurn() {
	n := len(g.Players)
	g.CurrentPlayerIndex = (g.CurrentPlayerIndex + g.Direction + n) % n
}
