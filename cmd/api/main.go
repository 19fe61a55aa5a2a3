package main

import (
	"os"

	"github.com/yigit/forensicsite/internal/bootstrap"
	"github.com/yigit/forensicsite/internal/config"
	"github.com/yigit/forensicsite/internal/pkg/logger"
	"github.com/yigit/forensicsite/internal/server"
)

// @title Forensic Science Institute Content API
// @version 1.0
// @description Editable page content for the institute website

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	srv, err := server.NewServer(config.GetEnv("CONFIG_PATH", bootstrap.DefaultConfigPath))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// blocks until a shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
