package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/handlers"
	"github.com/nexusradar/nexusradar-api/internal/helpers"
	"github.com/nexusradar/nexusradar-api/internal/logger"
	"github.com/nexusradar/nexusradar-api/internal/refdata"
	"go.uber.org/zap"
)

// Loads the reference nexus rules and state tax rates, and optionally
// bootstraps a tenant when SEED_TENANT_NAME is set.
func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'", stage)
	}

	logger.InitLogger(stage)
	defer func() {
		_ = logger.Sync()
	}()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	connPool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	defer connPool.Close()

	queries := db.New(connPool)

	if err := refdata.Seed(ctx, queries); err != nil {
		logger.Fatal("Failed to seed reference data", zap.Error(err))
	}

	if tenantName := os.Getenv("SEED_TENANT_NAME"); tenantName != "" {
		apiKey, err := generateAPIKey()
		if err != nil {
			logger.Fatal("Failed to generate API key", zap.Error(err))
		}

		tenant, err := queries.CreateTenant(ctx, db.CreateTenantParams{
			Name:       tenantName,
			ApiKeyHash: handlers.HashAPIKey(apiKey),
		})
		if err != nil {
			logger.Fatal("Failed to create tenant", zap.Error(err))
		}

		logger.Info("Created tenant", zap.String("tenant_id", tenant.TenantID.String()))
		// The key is only printed once; we store its hash
		fmt.Printf("Tenant %s API key: %s\n", tenant.TenantID, apiKey)
	}
}

func generateAPIKey() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return "nxr_" + hex.EncodeToString(raw), nil
}
