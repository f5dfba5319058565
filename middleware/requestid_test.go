package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krugerlabs/taskdash/middleware"
)

func TestRequestID(t *testing.T) {
	t.Run("generates a UUID and exposes it", func(t *testing.T) {
		var fromContext string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromContext, _ = middleware.GetRequestID(r.Context())
		})

		w := httptest.NewRecorder()
		middleware.RequestID()(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, fromContext)
		_, err := uuid.Parse(fromContext)
		assert.NoError(t, err)
		assert.Equal(t, fromContext, w.Header().Get("X-Request-ID"))
	})

	t.Run("reuses incoming ID when configured", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
		mw := middleware.RequestIDWithConfig(middleware.RequestIDConfig{UseExisting: true})

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Request-ID", "incoming-id")
		w := httptest.NewRecorder()
		mw(next).ServeHTTP(w, r)

		assert.Equal(t, "incoming-id", w.Header().Get("X-Request-ID"))
	})

	t.Run("absent from untouched context", func(t *testing.T) {
		_, ok := middleware.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}
