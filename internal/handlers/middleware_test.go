package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/logger"
	"github.com/nexusradar/nexusradar-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

func TestHashAPIKey(t *testing.T) {
	// SHA-256 is deterministic and never stores the raw key
	hash := HashAPIKey("nxr_test_key")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashAPIKey("nxr_test_key"))
	assert.NotEqual(t, hash, HashAPIKey("nxr_other_key"))
	assert.NotContains(t, hash, "nxr_")
}

func TestAPIKeyAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	tenantID := uuid.New()

	tests := []struct {
		name       string
		apiKey     string
		setupMocks func()
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing API key",
			apiKey:     "",
			setupMocks: func() {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "No API key provided",
		},
		{
			name:   "unknown API key",
			apiKey: "nxr_bogus",
			setupMocks: func() {
				mockQuerier.EXPECT().
					GetTenantByAPIKeyHash(gomock.Any(), HashAPIKey("nxr_bogus")).
					Return(db.Tenant{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid API key",
		},
		{
			name:   "lookup failure",
			apiKey: "nxr_valid",
			setupMocks: func() {
				mockQuerier.EXPECT().
					GetTenantByAPIKeyHash(gomock.Any(), gomock.Any()).
					Return(db.Tenant{}, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal server error",
		},
		{
			name:   "deactivated tenant",
			apiKey: "nxr_valid",
			setupMocks: func() {
				mockQuerier.EXPECT().
					GetTenantByAPIKeyHash(gomock.Any(), gomock.Any()).
					Return(db.Tenant{TenantID: tenantID, IsActive: false}, nil)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "Tenant is deactivated",
		},
		{
			name:   "active tenant",
			apiKey: "nxr_valid",
			setupMocks: func() {
				mockQuerier.EXPECT().
					GetTenantByAPIKeyHash(gomock.Any(), gomock.Any()).
					Return(db.Tenant{TenantID: tenantID, IsActive: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			router := gin.New()
			router.Use(APIKeyAuth(mockQuerier))
			router.GET("/test", func(c *gin.Context) {
				tenant, ok := tenantFromContext(c)
				require.True(t, ok)
				c.JSON(http.StatusOK, gin.H{"tenant_id": tenant.TenantID})
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), tenantID.String())
			}
		})
	}
}

func TestRequireTenant(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	_, ok := requireTenant(c)
	assert.False(t, ok)
	assert.True(t, c.IsAborted())

	tenantID := uuid.New()
	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Set(tenantContextKey, db.Tenant{TenantID: tenantID, IsActive: true})

	got, ok := requireTenant(c2)
	assert.True(t, ok)
	assert.Equal(t, tenantID, got)
}

func TestShouldSkipLogging(t *testing.T) {
	assert.True(t, shouldSkipLogging("/healthz"))
	assert.True(t, shouldSkipLogging("/readyz"))
	assert.True(t, shouldSkipLogging("/health"))
	assert.False(t, shouldSkipLogging("/api/v1/analyses"))
}
