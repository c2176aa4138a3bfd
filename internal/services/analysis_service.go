package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nexusradar/nexusradar-api/internal/client/aws"
	"github.com/nexusradar/nexusradar-api/internal/constants"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/logger"
	"github.com/nexusradar/nexusradar-api/internal/types/api/params"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StageEnqueuer publishes pipeline stage messages.
type StageEnqueuer interface {
	EnqueueStage(ctx context.Context, stage string, analysisID uuid.UUID, params json.RawMessage) error
}

// FileStore stores raw uploads and validation reports.
type FileStore interface {
	Upload(ctx context.Context, key string, content []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// AnalysisService owns the analysis lifecycle and sequences the pipeline
// stages. The engines trust their inputs exist; sequencing and status
// transitions live here.
type AnalysisService struct {
	queries   db.Querier
	csv       *CSVProcessorService
	nexus     *NexusService
	liability *LiabilityService
	queue     StageEnqueuer
	files     FileStore
	logger    *zap.Logger
}

// NewAnalysisService creates the orchestrating analysis service
func NewAnalysisService(queries db.Querier, queue StageEnqueuer, files FileStore) *AnalysisService {
	return &AnalysisService{
		queries:   queries,
		csv:       NewCSVProcessorService(queries),
		nexus:     NewNexusService(queries),
		liability: NewLiabilityService(queries),
		queue:     queue,
		files:     files,
		logger:    logger.Log,
	}
}

// CreateAnalysis registers a new analysis in pending state
func (s *AnalysisService) CreateAnalysis(ctx context.Context, p params.CreateAnalysisParams) (db.Analysis, error) {
	analysis, err := s.queries.CreateAnalysis(ctx, db.CreateAnalysisParams{
		TenantID:    p.TenantID,
		ClientName:  p.ClientName,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
	})
	if err != nil {
		return db.Analysis{}, fmt.Errorf("failed to create analysis: %w", err)
	}

	s.logger.Info("Created analysis",
		zap.String("analysis_id", analysis.AnalysisID.String()),
		zap.String("tenant_id", p.TenantID.String()),
		zap.String("client_name", p.ClientName))
	return analysis, nil
}

// GetAnalysis fetches one analysis scoped to a tenant
func (s *AnalysisService) GetAnalysis(ctx context.Context, tenantID, analysisID uuid.UUID) (db.Analysis, error) {
	analysis, err := s.queries.GetTenantAnalysis(ctx, db.GetTenantAnalysisParams{
		AnalysisID: analysisID,
		TenantID:   tenantID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Analysis{}, ErrAnalysisNotFound
		}
		return db.Analysis{}, fmt.Errorf("failed to get analysis: %w", err)
	}
	return analysis, nil
}

// ListAnalyses returns a tenant's analyses, newest first
func (s *AnalysisService) ListAnalyses(ctx context.Context, tenantID uuid.UUID) ([]db.Analysis, error) {
	analyses, err := s.queries.ListTenantAnalyses(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

// DeleteAnalysis removes an analysis, its stored files, and via cascade its
// transactions, results, and estimates
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, tenantID, analysisID uuid.UUID) error {
	analysis, err := s.GetAnalysis(ctx, tenantID, analysisID)
	if err != nil {
		return err
	}

	for _, key := range []*string{analysis.SourceFileKey, analysis.ValidationReportKey} {
		if key == nil {
			continue
		}
		if err := s.files.Delete(ctx, *key); err != nil {
			s.logger.Warn("Failed to delete stored file",
				zap.String("key", *key), zap.Error(err))
		}
	}

	if err := s.queries.DeleteAnalysis(ctx, analysisID); err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}

	s.logger.Info("Deleted analysis", zap.String("analysis_id", analysisID.String()))
	return nil
}

// SubmitFile stores the raw upload and kicks off the processing pipeline
func (s *AnalysisService) SubmitFile(ctx context.Context, tenantID, analysisID uuid.UUID, content []byte) (db.Analysis, error) {
	analysis, err := s.GetAnalysis(ctx, tenantID, analysisID)
	if err != nil {
		return db.Analysis{}, err
	}

	key := aws.SourceFileKey(tenantID, analysisID)
	if err := s.files.Upload(ctx, key, content, "text/csv"); err != nil {
		return db.Analysis{}, fmt.Errorf("failed to store upload: %w", err)
	}

	analysis, err = s.queries.UpdateAnalysisFileKeys(ctx, db.UpdateAnalysisFileKeysParams{
		AnalysisID:    analysisID,
		SourceFileKey: &key,
	})
	if err != nil {
		return db.Analysis{}, fmt.Errorf("failed to record file key: %w", err)
	}

	if err := s.queue.EnqueueStage(ctx, constants.StageProcessCSV, analysisID, nil); err != nil {
		return db.Analysis{}, fmt.Errorf("failed to enqueue processing: %w", err)
	}
	return analysis, nil
}

// GetNexusResults returns the stored nexus determinations for a tenant's
// analysis
func (s *AnalysisService) GetNexusResults(ctx context.Context, tenantID, analysisID uuid.UUID) ([]db.NexusResult, error) {
	if _, err := s.GetAnalysis(ctx, tenantID, analysisID); err != nil {
		return nil, err
	}
	results, err := s.queries.ListNexusResults(ctx, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to list nexus results: %w", err)
	}
	return results, nil
}

// GetLiabilityEstimates returns the stored liability estimates for a tenant's
// analysis
func (s *AnalysisService) GetLiabilityEstimates(ctx context.Context, tenantID, analysisID uuid.UUID) ([]db.LiabilityEstimate, error) {
	if _, err := s.GetAnalysis(ctx, tenantID, analysisID); err != nil {
		return nil, err
	}
	estimates, err := s.queries.ListLiabilityEstimates(ctx, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liability estimates: %w", err)
	}
	return estimates, nil
}

// GetValidationReport downloads the stored data quality report for a tenant's
// analysis
func (s *AnalysisService) GetValidationReport(ctx context.Context, tenantID, analysisID uuid.UUID) ([]byte, error) {
	analysis, err := s.GetAnalysis(ctx, tenantID, analysisID)
	if err != nil {
		return nil, err
	}
	if analysis.ValidationReportKey == nil {
		return nil, ErrAnalysisNotFound
	}
	report, err := s.files.Download(ctx, *analysis.ValidationReportKey)
	if err != nil {
		return nil, fmt.Errorf("failed to download validation report: %w", err)
	}
	return report, nil
}

// liabilityStageParams is the liability stage's message payload.
type liabilityStageParams struct {
	ExemptionRate        *string `json:"exemption_rate,omitempty"`
	IncludePenalties     *bool   `json:"include_penalties,omitempty"`
	CustomLookbackMonths *int32  `json:"custom_lookback_months,omitempty"`
}

// RunStage executes one pipeline stage for an analysis and enqueues the next
// stage on success. Engine failures mark the analysis failed before the error
// is returned; quality-gate rejections also mark it failed but are not
// errors.
func (s *AnalysisService) RunStage(ctx context.Context, stage string, analysisID uuid.UUID, rawParams json.RawMessage) error {
	s.logger.Info("Running pipeline stage",
		zap.String("stage", stage),
		zap.String("analysis_id", analysisID.String()))

	var err error
	switch stage {
	case constants.StageProcessCSV:
		err = s.runProcessCSV(ctx, analysisID)
	case constants.StageDetermineNexus:
		err = s.runDetermineNexus(ctx, analysisID, rawParams)
	case constants.StageCalculateLiability:
		err = s.runCalculateLiability(ctx, analysisID, rawParams)
	default:
		err = fmt.Errorf("unknown pipeline stage %q", stage)
	}

	if err != nil {
		s.markFailed(ctx, analysisID, err.Error())
		return err
	}
	return nil
}

func (s *AnalysisService) runProcessCSV(ctx context.Context, analysisID uuid.UUID) error {
	analysis, err := s.setStatus(ctx, analysisID, db.AnalysisStatusProcessingCsv)
	if err != nil {
		return err
	}
	if analysis.SourceFileKey == nil {
		return fmt.Errorf("analysis %s has no uploaded file", analysisID)
	}

	content, err := s.files.Download(ctx, *analysis.SourceFileKey)
	if err != nil {
		return fmt.Errorf("failed to download upload: %w", err)
	}

	result, err := s.csv.ProcessFile(ctx, analysisID, content)
	if err != nil {
		return err
	}

	// Persist the validation report regardless of acceptance so tenants can
	// inspect rejected uploads
	reportKey := aws.ValidationReportKey(analysis.TenantID, analysisID)
	if reportJSON, err := json.Marshal(result.QualityReport); err == nil {
		if err := s.files.Upload(ctx, reportKey, reportJSON, "application/json"); err != nil {
			s.logger.Warn("Failed to store validation report", zap.Error(err))
		} else if _, err := s.queries.UpdateAnalysisFileKeys(ctx, db.UpdateAnalysisFileKeysParams{
			AnalysisID:          analysisID,
			ValidationReportKey: &reportKey,
		}); err != nil {
			s.logger.Warn("Failed to record validation report key", zap.Error(err))
		}
	}

	if !result.Accepted {
		// Soft rejection: the pipeline stops but the message succeeded
		s.markFailed(ctx, analysisID, result.Message)
		return nil
	}

	return s.queue.EnqueueStage(ctx, constants.StageDetermineNexus, analysisID, nil)
}

func (s *AnalysisService) runDetermineNexus(ctx context.Context, analysisID uuid.UUID, rawParams json.RawMessage) error {
	if _, err := s.setStatus(ctx, analysisID, db.AnalysisStatusProcessingNexus); err != nil {
		return err
	}

	if _, err := s.nexus.DetermineNexus(ctx, analysisID); err != nil {
		return err
	}

	// Liability assumptions ride through unchanged
	return s.queue.EnqueueStage(ctx, constants.StageCalculateLiability, analysisID, rawParams)
}

func (s *AnalysisService) runCalculateLiability(ctx context.Context, analysisID uuid.UUID, rawParams json.RawMessage) error {
	if _, err := s.setStatus(ctx, analysisID, db.AnalysisStatusProcessingLiability); err != nil {
		return err
	}

	liabilityParams, err := parseLiabilityParams(rawParams)
	if err != nil {
		return err
	}

	if _, err := s.liability.CalculateLiability(ctx, analysisID, liabilityParams); err != nil {
		return err
	}

	_, err = s.setStatus(ctx, analysisID, db.AnalysisStatusCompleted)
	return err
}

func parseLiabilityParams(rawParams json.RawMessage) (params.LiabilityParams, error) {
	result := params.LiabilityParams{IncludePenalties: true}
	if len(rawParams) == 0 {
		return result, nil
	}

	var p liabilityStageParams
	if err := json.Unmarshal(rawParams, &p); err != nil {
		return result, fmt.Errorf("invalid liability params: %w", err)
	}

	if p.ExemptionRate != nil {
		rate, err := decimal.NewFromString(*p.ExemptionRate)
		if err != nil {
			return result, fmt.Errorf("invalid exemption rate %q: %w", *p.ExemptionRate, err)
		}
		result.ExemptionRate = &rate
	}
	if p.IncludePenalties != nil {
		result.IncludePenalties = *p.IncludePenalties
	}
	result.CustomLookbackMonths = p.CustomLookbackMonths
	return result, nil
}

func (s *AnalysisService) setStatus(ctx context.Context, analysisID uuid.UUID, status db.AnalysisStatus) (db.Analysis, error) {
	analysis, err := s.queries.UpdateAnalysisStatus(ctx, db.UpdateAnalysisStatusParams{
		AnalysisID: analysisID,
		Status:     status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Analysis{}, ErrAnalysisNotFound
		}
		return db.Analysis{}, fmt.Errorf("failed to update analysis status: %w", err)
	}
	return analysis, nil
}

func (s *AnalysisService) markFailed(ctx context.Context, analysisID uuid.UUID, message string) {
	if _, err := s.queries.UpdateAnalysisStatus(ctx, db.UpdateAnalysisStatusParams{
		AnalysisID:   analysisID,
		Status:       db.AnalysisStatusFailed,
		ErrorMessage: &message,
	}); err != nil {
		s.logger.Error("Failed to mark analysis failed",
			zap.String("analysis_id", analysisID.String()),
			zap.Error(err))
	}
}
