// internal/handlers/game_server.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/uno-arcade/uno/internal/cache"
	"github.com/uno-arcade/uno/internal/database"
	"github.com/uno-arcade/uno/internal/game"
	"github.com/uno-arcade/uno/internal/models"
)

// GameServer is the request boundary in front of the game engine. It owns the
// in-memory game store, serializes operations per game record via the game's
// mutex, and persists snapshots and action logs after each successful action.
type GameServer struct {
	Store  *game.GameStore
	Logger *logrus.Logger

	seqMu     sync.Mutex
	actionSeq map[uuid.UUID]int
}

func NewGameServer(logger *logrus.Logger) *GameServer {
	return &GameServer{
		Store:     game.NewGameStore(),
		Logger:    logger,
		actionSeq: make(map[uuid.UUID]int),
	}
}

// ServeHTTP routes /games requests:
//
//	POST /games               create a game
//	GET  /games/{id}          fetch a snapshot
//	POST /games/{id}/join     seat a player
//	POST /games/{id}/play     play a card
//	POST /games/{id}/draw     draw a card
func (s *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/games" || r.URL.Path == "/games/" {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.handleCreateGame(w, r)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/games/")
	parts := strings.SplitN(rest, "/", 2)
	gameID, err := uuid.Parse(parts[0])
	if err != nil {
		http.Error(w, "invalid game id", http.StatusBadRequest)
		return
	}

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.handleGetGame(w, r, gameID)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch parts[1] {
	case "join":
		s.handleJoinGame(w, r, gameID)
	case "play":
		s.handlePlayCard(w, r, gameID)
	case "draw":
		s.handleDrawCard(w, r, gameID)
	default:
		http.Error(w, "unknown game action", http.StatusNotFound)
	}
}

type createGameRequest struct {
	GameType models.GameType `json:"gameType"`
	PlayerID uuid.UUID       `json:"playerId"`
}

func (s *GameServer) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.GameType == "" {
		req.GameType = models.GameTypeMultiplayer
	}
	if req.GameType != models.GameTypeSingle && req.GameType != models.GameTypeMultiplayer {
		http.Error(w, "invalid game type", http.StatusBadRequest)
		return
	}
	if req.PlayerID == uuid.Nil {
		http.Error(w, "playerId is required", http.StatusBadRequest)
		return
	}

	creator := s.resolvePlayer(r.Context(), req.PlayerID)
	g := game.NewUnoGame(req.GameType, creator)
	s.Store.AddGame(g)

	g.Mu.Lock()
	snap := g.Snapshot()
	g.Mu.Unlock()

	s.Logger.WithFields(logrus.Fields{
		"game":     g.ID,
		"gameType": req.GameType,
		"player":   req.PlayerID,
	}).Info("game created")

	s.persistSnapshot(snap)
	s.publishAction(g.ID, req.PlayerID, "game_create", map[string]interface{}{"gameType": string(req.GameType)})
	writeJSON(w, http.StatusCreated, snap)
}

func (s *GameServer) handleGetGame(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	g, ok := s.Store.GetGame(gameID)
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	g.Mu.Lock()
	snap := g.Snapshot()
	g.Mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

type joinGameRequest struct {
	PlayerID uuid.UUID `json:"playerId"`
}

func (s *GameServer) handleJoinGame(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	var req joinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == uuid.Nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	g, ok := s.Store.GetGame(gameID)
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	player := s.resolvePlayer(r.Context(), req.PlayerID)

	g.Mu.Lock()
	err := g.Join(player)
	if err != nil {
		g.Mu.Unlock()
		writeEngineError(w, err)
		return
	}
	snap := g.Snapshot()
	g.Mu.Unlock()

	s.Logger.WithFields(logrus.Fields{"game": gameID, "player": req.PlayerID}).Info("player joined")
	s.persistSnapshot(snap)
	s.publishAction(gameID, req.PlayerID, "game_join", nil)
	writeJSON(w, http.StatusOK, snap)
}

type playCardRequest struct {
	PlayerID  uuid.UUID `json:"playerId"`
	CardIndex int       `json:"cardIndex"`
}

func (s *GameServer) handlePlayCard(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	var req playCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == uuid.Nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	g, ok := s.Store.GetGame(gameID)
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	g.Mu.Lock()
	res, err := g.PlayCard(req.PlayerID, req.CardIndex)
	if err != nil {
		g.Mu.Unlock()
		writeEngineError(w, err)
		return
	}
	snap := g.Snapshot()
	g.Mu.Unlock()

	s.Logger.WithFields(logrus.Fields{
		"game":     gameID,
		"player":   req.PlayerID,
		"index":    req.CardIndex,
		"finished": res.Finished,
	}).Info("card played")

	s.persistSnapshot(snap)
	s.publishAction(gameID, req.PlayerID, "game_play", map[string]interface{}{"cardIndex": req.CardIndex})
	if res.Finished {
		s.recordResult(gameID, res.Winner)
	}

	writeJSON(w, http.StatusOK, moveResponse(snap, res))
}

type drawCardRequest struct {
	PlayerID uuid.UUID `json:"playerId"`
}

func (s *GameServer) handleDrawCard(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	var req drawCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == uuid.Nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	g, ok := s.Store.GetGame(gameID)
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	g.Mu.Lock()
	res, err := g.DrawCard(req.PlayerID)
	if err != nil {
		g.Mu.Unlock()
		writeEngineError(w, err)
		return
	}
	snap := g.Snapshot()
	g.Mu.Unlock()

	s.Logger.WithFields(logrus.Fields{"game": gameID, "player": req.PlayerID}).Info("card drawn")
	s.persistSnapshot(snap)
	s.publishAction(gameID, req.PlayerID, "game_draw", nil)
	if res.Finished {
		s.recordResult(gameID, res.Winner)
	}

	writeJSON(w, http.StatusOK, moveResponse(snap, res))
}

// resolvePlayer looks the player up in the directory for their display name,
// falling back to an anonymous name when the directory is unavailable. The
// engine only needs the opaque ID.
func (s *GameServer) resolvePlayer(ctx context.Context, id uuid.UUID) *models.Player {
	name := "Player " + id.String()[:8]
	if database.DB != nil {
		if rec, err := database.GetPlayer(ctx, id); err == nil {
			name = rec.Name
		}
	}
	return &models.Player{ID: id, Name: name}
}

// persistSnapshot saves the game state asynchronously; the in-memory store
// stays authoritative, so persistence failures are logged and tolerated.
func (s *GameServer) persistSnapshot(snap game.GameSnapshot) {
	if database.DB == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := database.SaveGameSnapshot(ctx, snap); err != nil {
			s.Logger.WithError(err).WithField("game", snap.ID).Warn("failed to persist game snapshot")
		}
	}()
}

// recordResult marks the game finished in the database and bumps the winner's
// directory score.
func (s *GameServer) recordResult(gameID, winnerID uuid.UUID) {
	if database.DB == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := database.RecordGameResult(ctx, gameID, winnerID); err != nil {
			s.Logger.WithError(err).WithField("game", gameID).Warn("failed to record game result")
		}
	}()
}

// publishAction pushes one action record onto the historian queue.
func (s *GameServer) publishAction(gameID, actorID uuid.UUID, actionType string, payload map[string]interface{}) {
	if cache.Rdb == nil {
		return
	}
	s.seqMu.Lock()
	s.actionSeq[gameID]++
	seq := s.actionSeq[gameID]
	s.seqMu.Unlock()

	if payload == nil {
		payload = make(map[string]interface{})
	}
	record := cache.GameActionRecord{
		GameID:        gameID,
		ActionIndex:   seq,
		ActorID:       actorID,
		ActionType:    actionType,
		ActionPayload: payload,
		Timestamp:     time.Now().UnixMilli(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := cache.PublishGameAction(ctx, record); err != nil {
			s.Logger.WithError(err).WithField("game", gameID).Warn("failed to publish game action")
		}
	}()
}

// moveResponse wraps a snapshot with the terminal outcome for play/draw
// responses.
func moveResponse(snap game.GameSnapshot, res game.MoveResult) map[string]interface{} {
	body := map[string]interface{}{"game": snap}
	if res.Finished {
		body["finished"] = true
		body["winner"] = res.Winner
	}
	return body
}
