package server

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nexusradar/nexusradar-api/internal/client/aws"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/handlers"
	"github.com/nexusradar/nexusradar-api/internal/logger"
	"github.com/nexusradar/nexusradar-api/internal/services"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	analysisHandler        *handlers.AnalysisHandler
	businessProfileHandler *handlers.BusinessProfileHandler
	nexusRuleHandler       *handlers.NexusRuleHandler
	healthHandler          *handlers.HealthHandler

	// Database
	connPool  *pgxpool.Pool
	dbQueries *db.Queries
)

func InitializeHandlers() {
	// Get database connection string from environment
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	// Create a connection pool using pgxpool
	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	// Create the connection pool, retrying while the database comes up
	connect := func() error {
		pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err != nil {
			return err
		}
		if err := pool.Ping(context.Background()); err != nil {
			pool.Close()
			return err
		}
		connPool = pool
		return nil
	}
	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(connect, retryPolicy); err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	// Create queries instance with the connection pool
	dbQueries = db.New(connPool)

	ctx := context.Background()

	queueURL := os.Getenv("ANALYSIS_QUEUE_URL")
	if queueURL == "" {
		logger.Fatal("ANALYSIS_QUEUE_URL environment variable is required")
	}
	queueClient, err := aws.NewStageQueueClient(ctx, queueURL)
	if err != nil {
		logger.Fatal("Unable to create queue client", zap.Error(err))
	}

	bucket := os.Getenv("ANALYSIS_BUCKET")
	if bucket == "" {
		logger.Fatal("ANALYSIS_BUCKET environment variable is required")
	}
	fileStore, err := aws.NewFileStoreClient(ctx, bucket)
	if err != nil {
		logger.Fatal("Unable to create file store client", zap.Error(err))
	}

	analysisService := services.NewAnalysisService(dbQueries, queueClient, fileStore)
	commonServices := handlers.NewCommonServices(dbQueries, analysisService)

	// API Handler initialization
	analysisHandler = handlers.NewAnalysisHandler(commonServices)
	businessProfileHandler = handlers.NewBusinessProfileHandler(commonServices)
	nexusRuleHandler = handlers.NewNexusRuleHandler(commonServices)
	healthHandler = handlers.NewHealthHandler(connPool)
}

func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())
	router.Use(handlers.CorrelationIDMiddleware())

	// Health checks
	router.GET("/healthz", healthHandler.Healthz)
	router.GET("/readyz", healthHandler.Readyz)

	// if we are not in production, log the request body
	if os.Getenv("GIN_MODE") != "release" {
		router.Use(handlers.LogRequest())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Protected routes (API key required)
		protected := v1.Group("/")
		protected.Use(handlers.APIKeyAuth(dbQueries))
		{
			// Analyses
			analyses := protected.Group("/analyses")
			{
				analyses.GET("", analysisHandler.ListAnalyses)
				analyses.POST("", analysisHandler.CreateAnalysis)
				analyses.GET("/:analysis_id", analysisHandler.GetAnalysis)
				analyses.DELETE("/:analysis_id", analysisHandler.DeleteAnalysis)

				// Transactions and validation
				analyses.POST("/:analysis_id/transactions", analysisHandler.UploadTransactions)
				analyses.GET("/:analysis_id/validation-report", analysisHandler.GetValidationReport)

				// Business profile
				analyses.POST("/:analysis_id/business-profile", businessProfileHandler.CreateBusinessProfile)
				analyses.GET("/:analysis_id/business-profile", businessProfileHandler.GetBusinessProfile)

				// Results
				analyses.GET("/:analysis_id/nexus", analysisHandler.GetNexusResults)
				analyses.POST("/:analysis_id/nexus", analysisHandler.RerunNexus)
				analyses.GET("/:analysis_id/liability", analysisHandler.GetLiabilityEstimates)
				analyses.POST("/:analysis_id/liability", analysisHandler.EstimateLiability)
			}

			// Reference data
			nexusRules := protected.Group("/nexus-rules")
			{
				nexusRules.GET("", nexusRuleHandler.ListNexusRules)
				nexusRules.PUT("", nexusRuleHandler.UpsertNexusRule)
				nexusRules.GET("/:state_code", nexusRuleHandler.GetNexusRule)
			}
			protected.GET("/state-tax-configs", nexusRuleHandler.ListStateTaxConfigs)
		}
	}
}

// Shutdown releases pooled resources on server exit
func Shutdown() {
	if connPool != nil {
		connPool.Close()
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-API-Key"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
