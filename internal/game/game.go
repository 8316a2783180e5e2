// internal/game/game.go
package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/uno-arcade/uno/internal/models"
)

const (
	// MaxPlayers caps the number of seats in a multiplayer game.
	MaxPlayers = 4
	// MinPlayersToStart is the seat count at which a multiplayer game activates.
	MinPlayersToStart = 2
	// HandSize is the number of cards dealt to each seat at activation.
	HandSize = 7
)

// UnoGame holds the entire state for a single game instance in memory. It is
// the aggregate root: deck, discard pile, hands, turn order and lifecycle all
// live here and are mutated only through the session operations.
//
// The engine is single-threaded per game: callers must serialize operations
// against the same record (hold Mu for the duration of one action, including
// any chained bot turns). The engine itself performs no concurrency control
// beyond that contract.
type UnoGame struct {
	ID   uuid.UUID
	Type models.GameType

	// Players is the seating order; turn order follows it in Direction.
	Players []*models.Player

	// Hands maps player ID to that player's cards, in draw/deal order.
	Hands map[uuid.UUID][]models.Card

	Deck        []models.Card
	DiscardPile []models.Card

	CurrentPlayerIndex int
	Direction          int // +1 forward, -1 backward; flips only on reverse

	Status models.GameStatus
	Winner uuid.UUID // uuid.Nil until the game finishes

	rng *rand.Rand

	// Mu serializes external operations against this record. One in-flight
	// mutation per game at a time is a requirement on the caller.
	Mu sync.Mutex
}

// NewUnoGame builds a game with a freshly shuffled deck and the creator
// seated. Multiplayer games start waiting; single-player games auto-add a bot
// opponent, deal immediately and become active with the creator to move.
func NewUnoGame(gameType models.GameType, creator *models.Player) *UnoGame {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewUnoGameWithRNG(gameType, creator, rng)
}

// NewUnoGameWithRNG is NewUnoGame with an injected random source, used for
// deterministic shuffles in tests.
func NewUnoGameWithRNG(gameType models.GameType, creator *models.Player, rng *rand.Rand) *UnoGame {
	id, _ := uuid.NewRandom()
	g := &UnoGame{
		ID:          id,
		Type:        gameType,
		Players:     []*models.Player{creator},
		Hands:       make(map[uuid.UUID][]models.Card),
		Deck:        NewDeck(),
		DiscardPile: []models.Card{},
		Direction:   1,
		Status:      models.StatusWaiting,
		rng:         rng,
	}
	shuffleCards(g.rng, g.Deck)

	if gameType == models.GameTypeSingle {
		g.Players = append(g.Players, models.NewBotPlayer())
		g.start()
	}
	return g
}

// Join seats a player in a multiplayer game. The game activates once
// MinPlayersToStart seats are filled; players joining an already-active table
// are dealt a hand on the spot so the initial deal still runs exactly once.
// Assumes Mu is held.
func (g *UnoGame) Join(p *models.Player) error {
	if g.Type == models.GameTypeSingle {
		return ErrNotJoinable
	}
	if g.Status == models.StatusFinished {
		return ErrNotJoinable
	}
	if len(g.Players) >= MaxPlayers {
		return ErrNotJoinable
	}
	g.Players = append(g.Players, p)

	if g.Status == models.StatusWaiting {
		if len(g.Players) >= MinPlayersToStart {
			g.start()
		}
		return nil
	}

	// Late joiner on an active table: deal their hand now.
	hand, err := g.drawFromDeck(HandSize)
	if err != nil {
		return err
	}
	g.Hands[p.ID] = hand
	return nil
}

// start deals the initial hands and flips the first discard. Runs exactly
// once, at the waiting -> active transition.
func (g *UnoGame) start() {
	g.deal()
	g.CurrentPlayerIndex = 0
	g.Status = models.StatusActive
	log.Printf("Game %s started with %d players.", g.ID, len(g.Players))
}

// deal removes HandSize cards from the top of the deck into a fresh hand for
// every seat in seating order, then flips one deck card to seed the discard
// pile. Top of the deck is the last element.
func (g *UnoGame) deal() {
	for _, p := range g.Players {
		hand := make([]models.Card, 0, HandSize)
		for i := 0; i < HandSize; i++ {
			hand = append(hand, g.popDeck())
		}
		g.Hands[p.ID] = hand
	}
	g.DiscardPile = append(g.DiscardPile, g.popDeck())
}

// popDeck removes and returns the top deck card. Callers must ensure the deck
// is non-empty; during play use drawFromDeck, which replenishes first.
func (g *UnoGame) popDeck() models.Card {
	card := g.Deck[len(g.Deck)-1]
	g.Deck = g.Deck[:len(g.Deck)-1]
	return card
}

// drawFromDeck removes up to n cards from the deck, replenishing from the
// discard pile when the deck runs dry. It fails with ErrExhaustedSupply only
// in the theoretical case where deck and discard (minus its top card) are
// both empty.
func (g *UnoGame) drawFromDeck(n int) ([]models.Card, error) {
	cards := make([]models.Card, 0, n)
	for i := 0; i < n; i++ {
		if len(g.Deck) == 0 && !g.replenishFromDiscard() {
			if len(cards) == 0 {
				return nil, ErrExhaustedSupply
			}
			log.Printf("Game %s: supply exhausted after drawing %d of %d cards.", g.ID, len(cards), n)
			break
		}
		cards = append(cards, g.popDeck())
	}
	return cards, nil
}

// replenishFromDiscard sets the discard top aside, shuffles the remaining
// discard pile into a new deck and resets the discard pile to just that top
// card. Returns false when there is nothing to reshuffle.
func (g *UnoGame) replenishFromDiscard() bool {
	if len(g.DiscardPile) <= 1 {
		return false
	}
	top := g.DiscardPile[len(g.DiscardPile)-1]
	g.Deck = append(g.Deck, g.DiscardPile[:len(g.DiscardPile)-1]...)
	g.DiscardPile = []models.Card{top}
	shuffleCards(g.rng, g.Deck)
	log.Printf("Game %s: reshuffled discard pile into deck (%d cards).", g.ID, len(g.Deck))
	return true
}

// discardTop returns the currently matchable card. The discard pile is never
// empty while a game is active.
func (g *UnoGame) discardTop() models.Card {
	return g.DiscardPile[len(g.DiscardPile)-1]
}

// CurrentPlayer returns the seat whose turn it is.
func (g *UnoGame) CurrentPlayer() *models.Player {
	return g.Players[g.CurrentPlayerIndex]
}

// indexOfPlayer returns the seat index for a player ID, or -1 if not seated.
func (g *UnoGame) indexOfPlayer(id uuid.UUID) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// finish records the winner and moves the game to its terminal state. No
// mutation is permitted afterwards.
func (g *UnoGame) finish(winner uuid.UUID) {
	g.Winner = winner
	g.Status = models.StatusFinished
	log.Printf("Game %s finished, winner %s.", g.ID, winner)
}

// CardCount returns deck + discard + hand totals; it must equal DeckSize for
// the lifetime of a started game.
func (g *UnoGame) CardCount() int {
	total := len(g.Deck) + len(g.DiscardPile)
	for _, hand := range g.Hands {
		total += len(hand)
	}
	return total
}
