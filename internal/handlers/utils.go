// internal/handlers/utils.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/uno-arcade/uno/internal/game"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Message string `json:"message"`
}

// writeEngineError translates an engine error kind into an HTTP response.
func writeEngineError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrGameNotFound), errors.Is(err, game.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrInvalidMove),
		errors.Is(err, game.ErrNotJoinable):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrGameFinished):
		status = http.StatusConflict
	}
	writeJSON(w, status, errorResponse{Message: err.Error()})
}
