package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	awsclient "github.com/nexusradar/nexusradar-api/internal/client/aws"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/helpers"
	"github.com/nexusradar/nexusradar-api/internal/logger"
	"github.com/nexusradar/nexusradar-api/internal/services"
	"go.uber.org/zap"
)

// Application holds all dependencies for the analysis processor Lambda handler
type Application struct {
	analysisService *services.AnalysisService
	dbQueries       *db.Queries
}

// HandleSQSEvent processes pipeline stage messages from SQS
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) error {
	logger.Info("Analysis processor handling SQS event",
		zap.Int("record_count", len(event.Records)))

	for _, record := range event.Records {
		err := app.processStageRecord(ctx, record)
		if err != nil {
			logger.Error("Failed to process stage record",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			// SQS will handle retries for failed messages
			return fmt.Errorf("failed to process message %s: %w", record.MessageId, err)
		}
	}

	logger.Info("Successfully processed all stage records",
		zap.Int("count", len(event.Records)))
	return nil
}

// processStageRecord processes a single SQS record containing a stage message
func (app *Application) processStageRecord(ctx context.Context, record events.SQSMessage) error {
	logger.Info("Processing stage record",
		zap.String("message_id", record.MessageId),
		zap.String("source_queue", record.EventSourceARN))

	var message awsclient.StageMessage
	if err := json.Unmarshal([]byte(record.Body), &message); err != nil {
		return fmt.Errorf("failed to unmarshal stage message: %w", err)
	}
	if message.Stage == "" {
		return fmt.Errorf("missing stage in message body")
	}
	if message.AnalysisID == uuid.Nil {
		return fmt.Errorf("missing analysis ID in message body")
	}

	if err := app.analysisService.RunStage(ctx, message.Stage, message.AnalysisID, message.Params); err != nil {
		return fmt.Errorf("failed to run stage %s: %w", message.Stage, err)
	}

	logger.Info("Successfully processed stage",
		zap.String("stage", message.Stage),
		zap.String("analysis_id", message.AnalysisID.String()))
	return nil
}

// LocalHandleRequest handles local testing
func (app *Application) LocalHandleRequest(ctx context.Context) error {
	logger.Info("Analysis processor running in local mode")

	analysisID := os.Getenv("LOCAL_ANALYSIS_ID")
	stage := os.Getenv("LOCAL_STAGE")
	if analysisID == "" || stage == "" {
		logger.Info("Set LOCAL_ANALYSIS_ID and LOCAL_STAGE to run a stage locally")
		return nil
	}

	parsed, err := uuid.Parse(analysisID)
	if err != nil {
		return fmt.Errorf("invalid LOCAL_ANALYSIS_ID: %w", err)
	}
	return app.analysisService.RunStage(ctx, stage, parsed, nil)
}

func main() {
	// Load .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables/secrets.", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// Initialize logger (AFTER stage validation)
	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing analysis processor for stage", zap.String("stage", stage))
	defer func() {
		// Sync logger before exit (important for Lambda)
		_ = logger.Sync()
	}()

	ctx := context.Background()

	// --- Initialize AWS Secrets Manager Client ---
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// --- Database Connection Setup ---
	var dsn string
	if stage == helpers.StageProd || stage == helpers.StageDev {
		logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", stage))
		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSecretArn := os.Getenv("RDS_SECRET_ARN")
		dbSSLMode := os.Getenv("DB_SSLMODE")

		if dbEndpoint == "" || dbName == "" || dbSecretArn == "" {
			logger.Fatal("Missing required DB environment variables for deployed environment (DB_HOST, DB_NAME, RDS_SECRET_ARN)")
		}
		if dbSSLMode == "" {
			dbSSLMode = "require"
			logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
		}

		type RdsSecret struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var secretData RdsSecret
		err = secretsClient.GetSecretJSON(ctx, "RDS_SECRET_ARN", "", &secretData)
		if err != nil {
			logger.Fatal("Failed to retrieve or parse RDS secret", zap.Error(err), zap.String("secretArnEnvVar", "RDS_SECRET_ARN"))
		}
		if secretData.Username == "" || secretData.Password == "" {
			logger.Fatal("Username or password not found in RDS secret data", zap.String("secretArnEnvVar", "RDS_SECRET_ARN"))
		}

		dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username), url.QueryEscape(secretData.Password),
			dbEndpoint, dbName, dbSSLMode)
		logger.Info("Constructed DSN from Secrets Manager credentials")
	} else {
		// Local
		logger.Info("Running in local stage, using DATABASE_URL from env/secrets")
		dsn, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			logger.Fatal("Failed to get DATABASE_URL", zap.Error(err))
		}
		if dsn == "" {
			logger.Fatal("DATABASE_URL is required for local development and not found")
		}
	}

	// --- Database Pool Initialization ---
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 15
	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries := db.New(connPool)

	// --- Initialize SQS Client for chaining the next stage ---
	queueURL := os.Getenv("ANALYSIS_QUEUE_URL")
	if stage != helpers.StageLocal && queueURL == "" {
		logger.Fatal("ANALYSIS_QUEUE_URL environment variable is required for deployed stages")
	}
	queueClient, err := awsclient.NewStageQueueClient(ctx, queueURL)
	if err != nil {
		logger.Fatal("Failed to initialize SQS client", zap.Error(err))
	}

	// --- Initialize S3 File Store ---
	bucket := os.Getenv("ANALYSIS_BUCKET")
	if bucket == "" {
		logger.Fatal("ANALYSIS_BUCKET environment variable is required")
	}
	fileStore, err := awsclient.NewFileStoreClient(ctx, bucket)
	if err != nil {
		logger.Fatal("Failed to initialize S3 client", zap.Error(err))
	}

	// --- Create Application Instance ---
	app := &Application{
		analysisService: services.NewAnalysisService(dbQueries, queueClient, fileStore),
		dbQueries:       dbQueries,
	}

	if stage == helpers.StageLocal {
		if err := app.LocalHandleRequest(ctx); err != nil {
			logger.Fatal("Error in LocalHandleRequest", zap.Error(err))
		}
		return
	}

	lambda.Start(app.HandleSQSEvent)
}
