// cmd/server/main.go
package main

import (
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/uno-arcade/uno/internal/cache"
	"github.com/uno-arcade/uno/internal/database"
	"github.com/uno-arcade/uno/internal/handlers"
	"github.com/uno-arcade/uno/internal/middleware"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	// Postgres backs the player directory and game record persistence.
	if os.Getenv("PG_HOST") != "" {
		database.ConnectDB()
	} else {
		logger.Warn("PG_HOST not set; running without persistence")
	}

	// Redis feeds the historian action queue; the service runs fine without it.
	if err := cache.ConnectRedis(); err != nil {
		logger.WithError(err).Warn("running without the historian action queue")
	}

	mux := http.NewServeMux()

	gameServer := handlers.NewGameServer(logger)
	playerHandler := &handlers.PlayerHandler{Logger: logger}

	mux.Handle("/games", middleware.LogMiddleware(logger)(gameServer))
	mux.Handle("/games/", middleware.LogMiddleware(logger)(gameServer))
	mux.Handle("/players", middleware.LogMiddleware(logger)(playerHandler))
	mux.Handle("/players/", middleware.LogMiddleware(logger)(playerHandler))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
