// internal/handlers/player.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/uno-arcade/uno/internal/database"
	"github.com/uno-arcade/uno/internal/models"
)

// PlayerHandler serves the player directory CRUD:
//
//	POST   /players        create a player
//	GET    /players        list players
//	PUT    /players/{id}   rename a player
//	DELETE /players/{id}   remove a player
type PlayerHandler struct {
	Logger *logrus.Logger
}

func (h *PlayerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/players" || r.URL.Path == "/players/" {
		switch r.Method {
		case http.MethodPost:
			h.handleCreate(w, r)
		case http.MethodGet:
			h.handleList(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/players/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid player id", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodPut:
		h.handleUpdate(w, r, id)
	case http.MethodDelete:
		h.handleDelete(w, r, id)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type playerRequest struct {
	Name string `json:"name"`
}

func (h *PlayerHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	player := models.PlayerRecord{Name: req.Name}
	if err := database.CreatePlayer(r.Context(), &player); err != nil {
		h.Logger.WithError(err).Error("failed to create player")
		http.Error(w, "failed to create player", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, player)
}

func (h *PlayerHandler) handleList(w http.ResponseWriter, r *http.Request) {
	players, err := database.ListPlayers(r.Context())
	if err != nil {
		h.Logger.WithError(err).Error("failed to list players")
		http.Error(w, "failed to list players", http.StatusInternalServerError)
		return
	}
	if players == nil {
		players = []models.PlayerRecord{}
	}
	writeJSON(w, http.StatusOK, players)
}

func (h *PlayerHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	player, err := database.UpdatePlayerName(r.Context(), id, req.Name)
	if err != nil {
		h.Logger.WithError(err).WithField("player", id).Error("failed to update player")
		http.Error(w, "player not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (h *PlayerHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := database.DeletePlayer(r.Context(), id); err != nil {
		h.Logger.WithError(err).WithField("player", id).Error("failed to delete player")
		http.Error(w, "failed to delete player", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "player removed"})
}
