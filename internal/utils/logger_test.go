package utils

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerMiddleware_CarriesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("request_id", "req-1"); c.Next() })
	router.Use(ContextLogger(logger), LoggerMiddleware(logger))
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "/missing", line["path"])
	assert.Equal(t, float64(http.StatusNotFound), line["status"])
}

func TestFromContext_Fallback(t *testing.T) {
	fallback := DiscardLogger()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, fallback, FromContext(c, fallback))
}
