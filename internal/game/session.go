// internal/game/session.go
package game

import (
	"github.com/google/uuid"
	"github.com/uno-arcade/uno/internal/models"
)

// MoveResult reports the outcome of a session operation. Finished is true
// when the action (or a chained bot turn) ended the game, in which case
// Winner holds the winning player's ID.
type MoveResult struct {
	Finished bool
	Winner   uuid.UUID
}

// PlayCard plays the card at cardIndex from the acting player's hand onto the
// discard pile, resolves its effect, advances the turn and then resolves any
// chained bot turns. All validation happens before any mutation.
//
// Assumes Mu is held by the caller for the duration of the call.
func (g *UnoGame) PlayCard(playerID uuid.UUID, cardIndex int) (MoveResult, error) {
	if err := g.checkTurn(playerID); err != nil {
		return MoveResult{}, err
	}

	hand := g.Hands[playerID]
	if cardIndex < 0 || cardIndex >= len(hand) {
		return MoveResult{}, ErrInvalidMove
	}
	if !canPlayCard(hand[cardIndex], g.discardTop()) {
		return MoveResult{}, ErrInvalidMove
	}

	card, err := g.removeCardAt(playerID, cardIndex)
	if err != nil {
		return MoveResult{}, err
	}
	if card.Color == models.ColorWild {
		card.Color = recolorWild(g.Hands[playerID])
	}
	g.DiscardPile = append(g.DiscardPile, card)

	if g.handEmpty(playerID) {
		g.finish(playerID)
		return MoveResult{Finished: true, Winner: playerID}, nil
	}

	g.applyCardEffect(card)
	g.advanceTurn()
	g.runBotTurns()

	return g.result(), nil
}

// DrawCard draws one card from the deck into the acting player's hand and
// ends their turn, then resolves any chained bot turns.
//
// Assumes Mu is held by the caller for the duration of the call.
func (g *UnoGame) DrawCard(playerID uuid.UUID) (MoveResult, error) {
	if err := g.checkTurn(playerID); err != nil {
		return MoveResult{}, err
	}

	cards, err := g.drawFromDeck(1)
	if err != nil {
		return MoveResult{}, err
	}
	g.addCards(playerID, cards)

	g.advanceTurn()
	g.runBotTurns()

	return g.result(), nil
}

// checkTurn validates that the game accepts actions and that it is the acting
// player's turn. It never mutates.
func (g *UnoGame) checkTurn(playerID uuid.UUID) error {
	if g.Status == models.StatusFinished {
		return ErrGameFinished
	}
	if g.Status != models.StatusActive {
		return ErrNotYourTurn
	}
	if g.indexOfPlayer(playerID) == -1 {
		return ErrPlayerNotFound
	}
	if g.CurrentPlayer().ID != playerID {
		return ErrNotYourTurn
	}
	return nil
}

func (g *UnoGame) result() MoveResult {
	if g.Status == models.StatusFinished {
		return MoveResult{Finished: true, Winner: g.Winner}
	}
	return MoveResult{}
}
