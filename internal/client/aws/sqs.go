package aws

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nexusradar/nexusradar-api/internal/logger"
)

// StageMessage is the payload exchanged over the analysis pipeline queue.
// One message runs exactly one pipeline stage for one analysis.
type StageMessage struct {
	Stage      string          `json:"stage"`
	AnalysisID uuid.UUID       `json:"analysis_id"`
	Params     json.RawMessage `json:"params,omitempty"`
}

// StageQueueClient publishes pipeline stage messages to SQS.
type StageQueueClient struct {
	svc      *sqs.Client
	queueURL string
}

// NewStageQueueClient creates a stage queue publisher for the given queue URL.
func NewStageQueueClient(ctx context.Context, queueURL string) (*StageQueueClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}

	return &StageQueueClient{
		svc:      sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

// EnqueueStage publishes one stage message. Params may be nil.
func (c *StageQueueClient) EnqueueStage(ctx context.Context, stage string, analysisID uuid.UUID, params json.RawMessage) error {
	msg := StageMessage{
		Stage:      stage,
		AnalysisID: analysisID,
		Params:     params,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal stage message")
	}

	_, err = c.svc.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(c.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"Stage": {
				StringValue: aws.String(stage),
				DataType:    aws.String("String"),
			},
			"AnalysisID": {
				StringValue: aws.String(analysisID.String()),
				DataType:    aws.String("String"),
			},
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to send message to SQS")
	}

	logger.Info("Enqueued pipeline stage",
		zap.String("stage", stage),
		zap.String("analysis_id", analysisID.String()))
	return nil
}
