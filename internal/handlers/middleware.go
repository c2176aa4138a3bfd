package handlers

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/logger"
	"go.uber.org/zap"
)

const tenantContextKey = "tenant"

// RequestLog represents a structured log entry for an HTTP request
type RequestLog struct {
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Query     string    `json:"query"`
	UserAgent string    `json:"user_agent"`
	ClientIP  string    `json:"client_ip"`
	TenantID  string    `json:"tenant_id"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// HashAPIKey returns the stored form of an API key
func HashAPIKey(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:])
}

// APIKeyAuth authenticates requests via the X-API-Key header and stores the
// resolved tenant in the request context
func APIKeyAuth(queries db.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			logger.Log.Debug("Authentication failed",
				zap.String("reason", "No API key provided"),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("client_ip", c.ClientIP()),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No API key provided"})
			c.Abort()
			return
		}

		tenant, err := queries.GetTenantByAPIKeyHash(c.Request.Context(), HashAPIKey(apiKey))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				logger.Log.Debug("Authentication failed",
					zap.String("reason", "Unknown API key"),
					zap.String("path", c.Request.URL.Path),
					zap.String("client_ip", c.ClientIP()),
				)
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			} else {
				logger.Log.Error("Failed to look up API key", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			c.Abort()
			return
		}

		if !tenant.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "Tenant is deactivated"})
			c.Abort()
			return
		}

		c.Set(tenantContextKey, tenant)
		c.Next()
	}
}

// tenantFromContext returns the authenticated tenant set by APIKeyAuth
func tenantFromContext(c *gin.Context) (db.Tenant, bool) {
	value, exists := c.Get(tenantContextKey)
	if !exists {
		return db.Tenant{}, false
	}
	tenant, ok := value.(db.Tenant)
	return tenant, ok
}

// requireTenant returns the authenticated tenant's ID or aborts with 401
func requireTenant(c *gin.Context) (uuid.UUID, bool) {
	tenant, ok := tenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No authentication provided"})
		c.Abort()
		return uuid.Nil, false
	}
	return tenant.TenantID, true
}

// shouldSkipLogging determines if request logging should be skipped for a given path
func shouldSkipLogging(path string) bool {
	// Skip logging for health check endpoints
	if path == "/healthz" || path == "/readyz" || path == "/health" {
		return true
	}
	return false
}

// getRequestBody safely reads and returns the request body
func getRequestBody(c *gin.Context) ([]byte, error) {
	var bodyBytes []byte
	if c.Request.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
		// Restore the request body for subsequent middleware/handlers
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}
	return bodyBytes, nil
}

// LogRequest is a middleware that logs the request body
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip logging for certain paths
		if shouldSkipLogging(c.Request.URL.Path) {
			c.Next()
			return
		}

		bodyBytes, err := getRequestBody(c)
		if err != nil {
			logger.Log.Error("Failed to read request body", zap.Error(err))
			c.Next()
			return
		}

		requestLog := RequestLog{
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Query:     c.Request.URL.RawQuery,
			UserAgent: c.Request.UserAgent(),
			ClientIP:  c.ClientIP(),
			TenantID:  c.GetString("tenant_id"),
			Body:      string(bodyBytes),
			Timestamp: time.Now().UTC(),
		}

		logger.Log.Debug("Request received",
			zap.String("method", requestLog.Method),
			zap.String("path", requestLog.Path),
			zap.String("query", requestLog.Query),
			zap.String("user_agent", requestLog.UserAgent),
			zap.String("client_ip", requestLog.ClientIP),
			zap.String("body", requestLog.Body),
			zap.Time("timestamp", requestLog.Timestamp),
		)

		c.Next()
	}
}
