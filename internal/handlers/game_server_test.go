// internal/handlers/game_server_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uno-arcade/uno/internal/game"
	"github.com/uno-arcade/uno/internal/models"
)

func newTestServer() *GameServer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewGameServer(logger)
}

func doJSON(t *testing.T, s *GameServer, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) game.GameSnapshot {
	t.Helper()
	var snap game.GameSnapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snap))
	return snap
}

func TestCreateSinglePlayerGame(t *testing.T) {
	s := newTestServer()
	playerID := uuid.New()

	rec := doJSON(t, s, http.MethodPost, "/games", map[string]interface{}{
		"gameType": "single",
		"playerId": playerID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	snap := decodeSnapshot(t, rec)
	assert.Equal(t, models.StatusActive, snap.Status)
	assert.Equal(t, playerID, snap.CurrentPlayer)
	require.Len(t, snap.Players, 2)
	assert.True(t, snap.Players[1].IsBot)
	assert.Len(t, snap.Hands[playerID.String()], game.HandSize)
}

func TestCreateGameValidation(t *testing.T) {
	s := newTestServer()

	rec := doJSON(t, s, http.MethodPost, "/games", map[string]interface{}{"gameType": "single"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "missing playerId")

	rec = doJSON(t, s, http.MethodPost, "/games", map[string]interface{}{
		"gameType": "tournament",
		"playerId": uuid.New(),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown game type")
}

func TestJoinFlow(t *testing.T) {
	s := newTestServer()
	host := uuid.New()

	rec := doJSON(t, s, http.MethodPost, "/games", map[string]interface{}{
		"gameType": "multiplayer",
		"playerId": host,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	snap := decodeSnapshot(t, rec)
	assert.Equal(t, models.StatusWaiting, snap.Status)

	guest := uuid.New()
	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/games/%s/join", snap.ID), map[string]interface{}{
		"playerId": guest,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	snap = decodeSnapshot(t, rec)
	assert.Equal(t, models.StatusActive, snap.Status)
	assert.Equal(t, host, snap.CurrentPlayer)

	// Joining an unknown game is a 404.
	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/games/%s/join", uuid.New()), map[string]interface{}{
		"playerId": uuid.New(),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJoinSinglePlayerGameRejected(t *testing.T) {
	s := newTestServer()
	host := uuid.New()

	rec := doJSON(t, s, http.MethodPost, "/games", map[string]interface{}{
		"gameType": "single",
		"playerId": host,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	snap := decodeSnapshot(t, rec)

	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/games/%s/join", snap.ID), map[string]interface{}{
		"playerId": uuid.New(),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayOutOfTurn(t *testing.T) {
	s := newTestServer()
	host := uuid.New()
	guest := uuid.New()

	rec := doJSON(t, s, http.MethodPost, "/games", map[string]interface{}{
		"gameType": "multiplayer",
		"playerId": host,
	})
	snap := decodeSnapshot(t, rec)
	doJSON(t, s, http.MethodPost, fmt.Sprintf("/games/%s/join", snap.ID), map[string]interface{}{
		"playerId": guest,
	})

	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/games/%s/play", snap.ID), map[string]interface{}{
		"playerId":  guest,
		"cardIndex": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDrawAdvancesTurn(t *testing.T) {
	s := newTestServer()
	host := uuid.New()
	guest := uuid.New()

	rec := doJSON(t, s, http.MethodPost, "/games", map[string]interface{}{
		"gameType": "multiplayer",
		"playerId": host,
	})
	created := decodeSnapshot(t, rec)
	doJSON(t, s, http.MethodPost, fmt.Sprintf("/games/%s/join", created.ID), map[string]interface{}{
		"playerId": guest,
	})

	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/games/%s/draw", created.ID), map[string]interface{}{
		"playerId": host,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Game game.GameSnapshot `json:"game"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, guest, body.Game.CurrentPlayer)
	assert.Len(t, body.Game.Hands[host.String()], game.HandSize+1)
}

func TestGetGameSnapshot(t *testing.T) {
	s := newTestServer()
	host := uuid.New()

	rec := doJSON(t, s, http.MethodPost, "/games", map[string]interface{}{
		"gameType": "single",
		"playerId": host,
	})
	created := decodeSnapshot(t, rec)

	rec = doJSON(t, s, http.MethodGet, fmt.Sprintf("/games/%s", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decodeSnapshot(t, rec)
	assert.Equal(t, created.ID, snap.ID)

	rec = doJSON(t, s, http.MethodGet, "/games/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
