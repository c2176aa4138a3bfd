package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nexusradar/nexusradar-api/internal/client/aws"
	"github.com/nexusradar/nexusradar-api/internal/constants"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/mocks"
	"github.com/nexusradar/nexusradar-api/internal/services"
	"github.com/nexusradar/nexusradar-api/internal/types/api/params"
	"github.com/nexusradar/nexusradar-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type enqueuedStage struct {
	stage      string
	analysisID uuid.UUID
	params     json.RawMessage
}

type fakeQueue struct {
	calls []enqueuedStage
	err   error
}

func (q *fakeQueue) EnqueueStage(_ context.Context, stage string, analysisID uuid.UUID, params json.RawMessage) error {
	if q.err != nil {
		return q.err
	}
	q.calls = append(q.calls, enqueuedStage{stage: stage, analysisID: analysisID, params: params})
	return nil
}

type fakeFileStore struct {
	objects     map[string][]byte
	deleted     []string
	uploadErr   error
	downloadErr error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{objects: make(map[string][]byte)}
}

func (f *fakeFileStore) Upload(_ context.Context, key string, content []byte, _ string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.objects[key] = content
	return nil
}

func (f *fakeFileStore) Download(_ context.Context, key string) ([]byte, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	content, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("no such key %s", key)
	}
	return content, nil
}

func (f *fakeFileStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func TestAnalysisService_CreateAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAnalysisService(mockQuerier, &fakeQueue{}, newFakeFileStore())
	ctx := context.Background()

	tenantID := uuid.New()
	periodStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	mockQuerier.EXPECT().
		CreateAnalysis(ctx, db.CreateAnalysisParams{
			TenantID:    tenantID,
			ClientName:  "Acme Widgets LLC",
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
		}).
		Return(db.Analysis{
			AnalysisID: uuid.New(),
			TenantID:   tenantID,
			ClientName: "Acme Widgets LLC",
			Status:     db.AnalysisStatusPending,
		}, nil)

	analysis, err := service.CreateAnalysis(ctx, params.CreateAnalysisParams{
		TenantID:    tenantID,
		ClientName:  "Acme Widgets LLC",
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, db.AnalysisStatusPending, analysis.Status)
}

func TestAnalysisService_GetAnalysis_TenantScoped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAnalysisService(mockQuerier, &fakeQueue{}, newFakeFileStore())
	ctx := context.Background()

	tenantID := uuid.New()
	analysisID := uuid.New()

	mockQuerier.EXPECT().
		GetTenantAnalysis(ctx, db.GetTenantAnalysisParams{AnalysisID: analysisID, TenantID: tenantID}).
		Return(db.Analysis{}, pgx.ErrNoRows)

	_, err := service.GetAnalysis(ctx, tenantID, analysisID)
	assert.ErrorIs(t, err, services.ErrAnalysisNotFound)
}

func TestAnalysisService_SubmitFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	queue := &fakeQueue{}
	files := newFakeFileStore()
	service := services.NewAnalysisService(mockQuerier, queue, files)
	ctx := context.Background()

	tenantID := uuid.New()
	analysisID := uuid.New()
	content := []byte("date,state,amount\n2024-01-15,CA,100.00\n")
	key := aws.SourceFileKey(tenantID, analysisID)

	mockQuerier.EXPECT().
		GetTenantAnalysis(ctx, db.GetTenantAnalysisParams{AnalysisID: analysisID, TenantID: tenantID}).
		Return(db.Analysis{AnalysisID: analysisID, TenantID: tenantID}, nil)
	mockQuerier.EXPECT().
		UpdateAnalysisFileKeys(ctx, db.UpdateAnalysisFileKeysParams{
			AnalysisID:    analysisID,
			SourceFileKey: &key,
		}).
		Return(db.Analysis{AnalysisID: analysisID, SourceFileKey: &key}, nil)

	analysis, err := service.SubmitFile(ctx, tenantID, analysisID, content)
	require.NoError(t, err)
	require.NotNil(t, analysis.SourceFileKey)

	assert.Equal(t, content, files.objects[key])
	require.Len(t, queue.calls, 1)
	assert.Equal(t, constants.StageProcessCSV, queue.calls[0].stage)
	assert.Equal(t, analysisID, queue.calls[0].analysisID)
}

func TestAnalysisService_DeleteAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	files := newFakeFileStore()
	service := services.NewAnalysisService(mockQuerier, &fakeQueue{}, files)
	ctx := context.Background()

	tenantID := uuid.New()
	analysisID := uuid.New()
	sourceKey := "tenants/t/analyses/a/source.csv"
	reportKey := "tenants/t/analyses/a/validation-report.json"

	mockQuerier.EXPECT().
		GetTenantAnalysis(ctx, db.GetTenantAnalysisParams{AnalysisID: analysisID, TenantID: tenantID}).
		Return(db.Analysis{
			AnalysisID:          analysisID,
			TenantID:            tenantID,
			SourceFileKey:       &sourceKey,
			ValidationReportKey: &reportKey,
		}, nil)
	mockQuerier.EXPECT().
		DeleteAnalysis(ctx, analysisID).
		Return(nil)

	err := service.DeleteAnalysis(ctx, tenantID, analysisID)
	require.NoError(t, err)
	assert.Equal(t, []string{sourceKey, reportKey}, files.deleted)
}

func TestAnalysisService_GetValidationReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	files := newFakeFileStore()
	service := services.NewAnalysisService(mockQuerier, &fakeQueue{}, files)
	ctx := context.Background()

	tenantID := uuid.New()
	analysisID := uuid.New()
	reportKey := "tenants/t/analyses/a/validation-report.json"
	files.objects[reportKey] = []byte(`{"total_rows":10}`)

	t.Run("report stored", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetTenantAnalysis(ctx, gomock.Any()).
			Return(db.Analysis{AnalysisID: analysisID, ValidationReportKey: &reportKey}, nil)

		report, err := service.GetValidationReport(ctx, tenantID, analysisID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"total_rows":10}`, string(report))
	})

	t.Run("no report yet", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetTenantAnalysis(ctx, gomock.Any()).
			Return(db.Analysis{AnalysisID: analysisID}, nil)

		_, err := service.GetValidationReport(ctx, tenantID, analysisID)
		assert.ErrorIs(t, err, services.ErrAnalysisNotFound)
	})
}

func TestAnalysisService_RunStage_ProcessCSVChainsToNexus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	queue := &fakeQueue{}
	files := newFakeFileStore()
	service := services.NewAnalysisService(mockQuerier, queue, files)
	ctx := context.Background()

	tenantID := uuid.New()
	analysisID := uuid.New()
	sourceKey := aws.SourceFileKey(tenantID, analysisID)
	reportKey := aws.ValidationReportKey(tenantID, analysisID)
	files.objects[sourceKey] = []byte("date,state,amount\n2024-01-15,CA,100.00\n")

	mockQuerier.EXPECT().
		UpdateAnalysisStatus(ctx, db.UpdateAnalysisStatusParams{
			AnalysisID: analysisID,
			Status:     db.AnalysisStatusProcessingCsv,
		}).
		Return(db.Analysis{
			AnalysisID:    analysisID,
			TenantID:      tenantID,
			SourceFileKey: &sourceKey,
		}, nil)
	mockQuerier.EXPECT().
		CreateTransactions(ctx, gomock.Any()).
		Return(int64(1), nil)
	mockQuerier.EXPECT().
		UpdateAnalysisFileKeys(ctx, db.UpdateAnalysisFileKeysParams{
			AnalysisID:          analysisID,
			ValidationReportKey: &reportKey,
		}).
		Return(db.Analysis{AnalysisID: analysisID}, nil)

	err := service.RunStage(ctx, constants.StageProcessCSV, analysisID, nil)
	require.NoError(t, err)

	// The quality report is stored even on success
	var report business.DataQualityReport
	require.NoError(t, json.Unmarshal(files.objects[reportKey], &report))
	assert.Equal(t, 1, report.ValidRows)

	require.Len(t, queue.calls, 1)
	assert.Equal(t, constants.StageDetermineNexus, queue.calls[0].stage)
}

func TestAnalysisService_RunStage_ProcessCSVQualityRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	queue := &fakeQueue{}
	files := newFakeFileStore()
	service := services.NewAnalysisService(mockQuerier, queue, files)
	ctx := context.Background()

	tenantID := uuid.New()
	analysisID := uuid.New()
	sourceKey := aws.SourceFileKey(tenantID, analysisID)
	files.objects[sourceKey] = []byte("date,state,amount\nnot-a-date,XX,abc\n")

	mockQuerier.EXPECT().
		UpdateAnalysisStatus(ctx, db.UpdateAnalysisStatusParams{
			AnalysisID: analysisID,
			Status:     db.AnalysisStatusProcessingCsv,
		}).
		Return(db.Analysis{
			AnalysisID:    analysisID,
			TenantID:      tenantID,
			SourceFileKey: &sourceKey,
		}, nil)
	mockQuerier.EXPECT().
		UpdateAnalysisFileKeys(ctx, gomock.Any()).
		Return(db.Analysis{AnalysisID: analysisID}, nil)

	var failedMessage string
	mockQuerier.EXPECT().
		UpdateAnalysisStatus(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateAnalysisStatusParams) (db.Analysis, error) {
			require.Equal(t, db.AnalysisStatusFailed, arg.Status)
			require.NotNil(t, arg.ErrorMessage)
			failedMessage = *arg.ErrorMessage
			return db.Analysis{AnalysisID: analysisID, Status: arg.Status}, nil
		})

	// A rejected file is not a processing error; the message must not requeue
	err := service.RunStage(ctx, constants.StageProcessCSV, analysisID, nil)
	require.NoError(t, err)

	assert.Contains(t, failedMessage, "Data quality too low")
	assert.Empty(t, queue.calls)
}

func TestAnalysisService_RunStage_DetermineNexusPassesParamsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	queue := &fakeQueue{}
	service := services.NewAnalysisService(mockQuerier, queue, newFakeFileStore())
	ctx := context.Background()

	analysisID := uuid.New()
	rawParams := json.RawMessage(`{"exemption_rate":"0.05"}`)

	mockQuerier.EXPECT().
		UpdateAnalysisStatus(ctx, db.UpdateAnalysisStatusParams{
			AnalysisID: analysisID,
			Status:     db.AnalysisStatusProcessingNexus,
		}).
		Return(db.Analysis{AnalysisID: analysisID}, nil)

	// Nexus determination with no transactions and no rules
	mockQuerier.EXPECT().
		GetAnalysis(ctx, analysisID).
		Return(db.Analysis{AnalysisID: analysisID, PeriodEnd: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)}, nil)
	mockQuerier.EXPECT().
		GetBusinessProfileByAnalysis(ctx, analysisID).
		Return(db.BusinessProfile{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().
		ListActiveNexusRules(ctx, gomock.Any()).
		Return(nil, nil)
	mockQuerier.EXPECT().
		DeleteAnalysisNexusResults(ctx, analysisID).
		Return(nil)

	err := service.RunStage(ctx, constants.StageDetermineNexus, analysisID, rawParams)
	require.NoError(t, err)

	require.Len(t, queue.calls, 1)
	assert.Equal(t, constants.StageCalculateLiability, queue.calls[0].stage)
	assert.Equal(t, rawParams, queue.calls[0].params)
}

func TestAnalysisService_RunStage_CalculateLiabilityCompletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAnalysisService(mockQuerier, &fakeQueue{}, newFakeFileStore())
	ctx := context.Background()

	analysisID := uuid.New()

	mockQuerier.EXPECT().
		UpdateAnalysisStatus(ctx, db.UpdateAnalysisStatusParams{
			AnalysisID: analysisID,
			Status:     db.AnalysisStatusProcessingLiability,
		}).
		Return(db.Analysis{AnalysisID: analysisID}, nil)
	mockQuerier.EXPECT().
		GetAnalysis(ctx, analysisID).
		Return(db.Analysis{AnalysisID: analysisID}, nil)
	mockQuerier.EXPECT().
		ListNexusStates(ctx, analysisID).
		Return(nil, nil)
	mockQuerier.EXPECT().
		DeleteAnalysisLiabilityEstimates(ctx, analysisID).
		Return(nil)
	mockQuerier.EXPECT().
		UpdateAnalysisStatus(ctx, db.UpdateAnalysisStatusParams{
			AnalysisID: analysisID,
			Status:     db.AnalysisStatusCompleted,
		}).
		Return(db.Analysis{AnalysisID: analysisID, Status: db.AnalysisStatusCompleted}, nil)

	err := service.RunStage(ctx, constants.StageCalculateLiability, analysisID, json.RawMessage(`{"include_penalties":false}`))
	require.NoError(t, err)
}

func TestAnalysisService_RunStage_UnknownStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewAnalysisService(mockQuerier, &fakeQueue{}, newFakeFileStore())
	ctx := context.Background()

	analysisID := uuid.New()

	mockQuerier.EXPECT().
		UpdateAnalysisStatus(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateAnalysisStatusParams) (db.Analysis, error) {
			assert.Equal(t, db.AnalysisStatusFailed, arg.Status)
			return db.Analysis{AnalysisID: analysisID, Status: arg.Status}, nil
		})

	err := service.RunStage(ctx, constants.StageCalculateLiability+"_v2", analysisID, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown pipeline stage"))
}

func TestAnalysisService_RunStage_EngineFailureMarksFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	files := newFakeFileStore()
	files.downloadErr = fmt.Errorf("object gone")
	service := services.NewAnalysisService(mockQuerier, &fakeQueue{}, files)
	ctx := context.Background()

	analysisID := uuid.New()
	sourceKey := "tenants/t/analyses/a/source.csv"

	mockQuerier.EXPECT().
		UpdateAnalysisStatus(ctx, db.UpdateAnalysisStatusParams{
			AnalysisID: analysisID,
			Status:     db.AnalysisStatusProcessingCsv,
		}).
		Return(db.Analysis{AnalysisID: analysisID, SourceFileKey: &sourceKey}, nil)
	mockQuerier.EXPECT().
		UpdateAnalysisStatus(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateAnalysisStatusParams) (db.Analysis, error) {
			assert.Equal(t, db.AnalysisStatusFailed, arg.Status)
			require.NotNil(t, arg.ErrorMessage)
			assert.Contains(t, *arg.ErrorMessage, "failed to download upload")
			return db.Analysis{AnalysisID: analysisID, Status: arg.Status}, nil
		})

	err := service.RunStage(ctx, constants.StageProcessCSV, analysisID, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to download upload")
}
