package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log.Logger = zerolog.New(buf)

	engine := gin.New()
	engine.Use(LoggingMiddleware())
	engine.Use(gin.CustomRecovery(HandlePanics()))
	return engine
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	engine := newTestEngine(&buf)
	engine.GET("/blog-posts", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog-posts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/blog-posts"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestHandlePanics(t *testing.T) {
	tests := []struct {
		name      string
		recovered any
		wantLog   string
	}{
		{name: "error value", recovered: errors.New("store exploded"), wantLog: "store exploded"},
		{name: "string value", recovered: "something odd", wantLog: "something odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			engine := newTestEngine(&buf)
			engine.GET("/panic", func(c *gin.Context) {
				panic(tt.recovered)
			})

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), `"status":500`)
		})
	}
}
