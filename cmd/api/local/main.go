//go:build !lambda
// +build !lambda

package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nexusradar/nexusradar-api/internal/helpers"
	"github.com/nexusradar/nexusradar-api/internal/logger"
	"github.com/nexusradar/nexusradar-api/internal/server"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		// It's often okay if the .env file is missing, especially in production
		// where variables might be set directly in the environment.
		// Log it but don't necessarily stop the application.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'", stage)
	}

	// Initialize logger first
	logger.InitLogger(stage)
	defer func() {
		_ = logger.Sync()
	}()

	r := gin.Default()
	server.InitializeHandlers()
	server.InitializeRoutes(r)
	defer server.Shutdown()

	log.Printf("Server starting on :8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
