// internal/game/bot.go
package game

import (
	"log"

	"github.com/uno-arcade/uno/internal/models"
)

// botChainFactor bounds how many consecutive bot turns may resolve inside one
// external action: players * botChainFactor. A rule-interaction bug must never
// be able to spin the chain forever.
const botChainFactor = 8

// specialPreference is the order in which a losing bot prefers to dump action
// cards.
var specialPreference = []models.Value{
	models.ValueSkip,
	models.ValueReverse,
	models.ValueDrawTwo,
	models.ValueDrawFour,
}

// runBotTurns resolves turns while the current player is a bot and the game
// is still active. Called at the end of every successful external action, so
// control only returns to the caller with a human to move or a finished game.
func (g *UnoGame) runBotTurns() {
	limit := len(g.Players) * botChainFactor
	for i := 0; i < limit; i++ {
		if g.Status != models.StatusActive || !g.CurrentPlayer().IsBot {
			return
		}
		g.takeBotTurn()
	}
	log.Printf("Game %s: bot turn chain hit the iteration cap (%d).", g.ID, limit)
}

// takeBotTurn resolves exactly one bot move: play the chosen card, or draw a
// single card and end the turn when nothing is playable. A bot that draws
// does not chain a play afterwards.
func (g *UnoGame) takeBotTurn() {
	bot := g.CurrentPlayer()
	hand := g.Hands[bot.ID]

	idx, ok := g.chooseBotCard(hand)
	if !ok {
		cards, err := g.drawFromDeck(1)
		if err != nil {
			log.Printf("Game %s: bot %s could not draw: %v", g.ID, bot.ID, err)
		} else {
			g.addCards(bot.ID, cards)
		}
		g.advanceTurn()
		return
	}

	card, err := g.removeCardAt(bot.ID, idx)
	if err != nil {
		// chooseBotCard only returns in-range indices.
		log.Printf("Game %s: bot %s chose invalid index %d: %v", g.ID, bot.ID, idx, err)
		g.advanceTurn()
		return
	}
	if card.Color == models.ColorWild {
		card.Color = recolorWild(g.Hands[bot.ID])
	}
	g.DiscardPile = append(g.DiscardPile, card)

	if g.handEmpty(bot.ID) {
		g.finish(bot.ID)
		return
	}

	g.applyCardEffect(card)
	g.advanceTurn()
}

// chooseBotCard picks the index of the card the bot plays, or ok=false when
// nothing is playable. Preference order:
//  1. when the bot's hand is larger than the first human's ("losing"), any
//     playable action card, in skip/reverse/+2/+4 order;
//  2. a playable card matching the discard top's color exactly (non-wild);
//  3. the first playable card in hand order, wilds included.
//
// Ties within a preference break by encounter order in the hand, so the
// strategy is fully deterministic for a given state.
func (g *UnoGame) chooseBotCard(hand []models.Card) (int, bool) {
	top := g.discardTop()

	playable := make([]int, 0, len(hand))
	for i, c := range hand {
		if canPlayCard(c, top) {
			playable = append(playable, i)
		}
	}
	if len(playable) == 0 {
		return 0, false
	}

	if human := g.firstHuman(); human != nil && len(hand) > len(g.Hands[human.ID]) {
		for _, want := range specialPreference {
			for _, i := range playable {
				if hand[i].Value == want {
					return i, true
				}
			}
		}
	}

	for _, i := range playable {
		if hand[i].Color == top.Color && hand[i].Color != models.ColorWild {
			return i, true
		}
	}

	return playable[0], true
}

// firstHuman returns the first non-bot seat, or nil in the degenerate
// bots-only case.
func (g *UnoGame) firstHuman() *models.Player {
	for _, p := range g.Players {
		if !p.IsBot {
			return p
		}
	}
	return nil
}
