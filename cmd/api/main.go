package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/praveenraj/scholarhub/internal/pkg/logger"
	"github.com/praveenraj/scholarhub/internal/server"
)

func main() {
	// Load .env before config so GEMINI_API_KEY and DB overrides are
	// visible; a missing file is fine in deployed environments.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("No .env file loaded")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
