package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/mocks"
	"github.com/nexusradar/nexusradar-api/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubQueue struct {
	stages []string
}

func (q *stubQueue) EnqueueStage(_ context.Context, stage string, _ uuid.UUID, _ json.RawMessage) error {
	q.stages = append(q.stages, stage)
	return nil
}

type stubFileStore struct {
	objects map[string][]byte
}

func (f *stubFileStore) Upload(_ context.Context, key string, content []byte, _ string) error {
	f.objects[key] = content
	return nil
}

func (f *stubFileStore) Download(_ context.Context, key string) ([]byte, error) {
	return f.objects[key], nil
}

func (f *stubFileStore) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

// testRouter wires an AnalysisHandler behind a middleware that injects the
// given tenant, standing in for APIKeyAuth.
func testRouter(mockQuerier *mocks.MockQuerier, tenant db.Tenant, queue *stubQueue) (*gin.Engine, *AnalysisHandler) {
	analyses := services.NewAnalysisService(mockQuerier, queue, &stubFileStore{objects: make(map[string][]byte)})
	handler := NewAnalysisHandler(NewCommonServices(mockQuerier, analyses))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(tenantContextKey, tenant)
		c.Next()
	})
	return router, handler
}

func TestAnalysisHandler_CreateAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	tenant := db.Tenant{TenantID: uuid.New(), IsActive: true}
	router, handler := testRouter(mockQuerier, tenant, &stubQueue{})
	router.POST("/analyses", handler.CreateAnalysis)

	tests := []struct {
		name       string
		body       string
		setupMocks func()
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid request",
			body: `{"client_name":"Acme Widgets LLC","period_start":"2024-01-01","period_end":"2024-12-31"}`,
			setupMocks: func() {
				mockQuerier.EXPECT().
					CreateAnalysis(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.CreateAnalysisParams) (db.Analysis, error) {
						assert.Equal(t, tenant.TenantID, arg.TenantID)
						assert.Equal(t, "Acme Widgets LLC", arg.ClientName)
						return db.Analysis{
							AnalysisID:  uuid.New(),
							TenantID:    arg.TenantID,
							ClientName:  arg.ClientName,
							Status:      db.AnalysisStatusPending,
							PeriodStart: arg.PeriodStart,
							PeriodEnd:   arg.PeriodEnd,
						}, nil
					})
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"pending"`,
		},
		{
			name:       "missing client name",
			body:       `{"period_start":"2024-01-01","period_end":"2024-12-31"}`,
			setupMocks: func() {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid request body",
		},
		{
			name:       "malformed period start",
			body:       `{"client_name":"Acme","period_start":"Jan 1 2024","period_end":"2024-12-31"}`,
			setupMocks: func() {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid period_start date",
		},
		{
			name:       "period end before period start",
			body:       `{"client_name":"Acme","period_start":"2024-12-31","period_end":"2024-01-01"}`,
			setupMocks: func() {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "period_end must not be before period_start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAnalysisHandler_GetAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	tenant := db.Tenant{TenantID: uuid.New(), IsActive: true}
	router, handler := testRouter(mockQuerier, tenant, &stubQueue{})
	router.GET("/analyses/:analysis_id", handler.GetAnalysis)

	t.Run("unknown analysis", func(t *testing.T) {
		analysisID := uuid.New()
		mockQuerier.EXPECT().
			GetTenantAnalysis(gomock.Any(), db.GetTenantAnalysisParams{
				AnalysisID: analysisID,
				TenantID:   tenant.TenantID,
			}).
			Return(db.Analysis{}, pgx.ErrNoRows)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analyses/"+analysisID.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Analysis not found")
	})

	t.Run("invalid analysis id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analyses/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid analysis ID format")
	})
}

func TestAnalysisHandler_UploadTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	tenant := db.Tenant{TenantID: uuid.New(), IsActive: true}
	queue := &stubQueue{}
	router, handler := testRouter(mockQuerier, tenant, queue)
	router.POST("/analyses/:analysis_id/transactions", handler.UploadTransactions)

	analysisID := uuid.New()

	mockQuerier.EXPECT().
		GetTenantAnalysis(gomock.Any(), gomock.Any()).
		Return(db.Analysis{AnalysisID: analysisID, TenantID: tenant.TenantID}, nil)
	mockQuerier.EXPECT().
		UpdateAnalysisFileKeys(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateAnalysisFileKeysParams) (db.Analysis, error) {
			require.NotNil(t, arg.SourceFileKey)
			return db.Analysis{AnalysisID: analysisID, SourceFileKey: arg.SourceFileKey}, nil
		})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "sales.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("date,state,amount\n2024-01-15,CA,100.00\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyses/"+analysisID.String()+"/transactions", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []string{"process_csv"}, queue.stages)
}

func TestToNexusSummary(t *testing.T) {
	analysisID := uuid.New()
	results := []db.NexusResult{
		{StateCode: "TX", NexusStatus: db.NexusStatusNexusPhysical},
		{StateCode: "CA", NexusStatus: db.NexusStatusNexusEconomic},
		{StateCode: "WA", NexusStatus: db.NexusStatusCloseToThreshold},
		{StateCode: "FL", NexusStatus: db.NexusStatusNoNexus},
	}

	summary := toNexusSummary(analysisID, results)
	assert.Equal(t, analysisID, summary.AnalysisID)
	assert.Equal(t, 4, summary.StatesAnalyzed)
	assert.Equal(t, 2, summary.StatesWithNexus)
	assert.Equal(t, 1, summary.StatesApproach)
	assert.Len(t, summary.Results, 4)
}

func TestToLiabilitySummary(t *testing.T) {
	analysisID := uuid.New()
	estimates := []db.LiabilityEstimate{
		{
			StateCode:              "TX",
			EstimatedLiabilityLow:  decimal.NewFromInt(1000),
			EstimatedLiabilityMid:  decimal.NewFromInt(1500),
			EstimatedLiabilityHigh: decimal.NewFromInt(2000),
			RiskLevel:              db.RiskLevelHigh,
		},
		{
			StateCode:              "CA",
			EstimatedLiabilityLow:  decimal.NewFromInt(500),
			EstimatedLiabilityMid:  decimal.NewFromInt(750),
			EstimatedLiabilityHigh: decimal.NewFromInt(1000),
			RiskLevel:              db.RiskLevelLow,
		},
	}

	summary := toLiabilitySummary(analysisID, estimates)
	assert.Equal(t, "1500.00", summary.TotalLiabilityLow)
	assert.Equal(t, "2250.00", summary.TotalLiabilityMid)
	assert.Equal(t, "3000.00", summary.TotalLiabilityHigh)
	assert.Equal(t, []string{"TX"}, summary.HighRiskStates)
	assert.Len(t, summary.Estimates, 2)
}

func TestFormatHelpers(t *testing.T) {
	assert.Nil(t, formatDatePtr(nil))
	date := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, formatDatePtr(&date))
	assert.Equal(t, "2024-07-01", *formatDatePtr(&date))

	assert.Nil(t, formatNullDecimal(decimal.NullDecimal{}))
	val := decimal.NewNullDecimal(decimal.RequireFromString("85.5"))
	require.NotNil(t, formatNullDecimal(val))
	assert.Equal(t, "85.5", *formatNullDecimal(val))
}
