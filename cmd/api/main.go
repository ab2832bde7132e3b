package main

import (
	"os"

	"github.com/sauravjha/registrar/internal/pkg/logger" // Still needed for initial error logging
	"github.com/sauravjha/registrar/internal/server"
)

// @title Registrar API
// @version 1.0
// @description API for managing course types, courses, offerings, students and registrations

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	// Initialize the server with all its dependencies
	// NewServer orchestrates LoadConfigAndSetupLogger, SetupStorage, BuildDependencies, SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger setup by the logger package's init
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	// If Run completes without error, graceful shutdown was successful
	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
