package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"organizer/version"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, ping Pinger) (*httptest.ResponseRecorder, OkResponse) {
	t.Helper()

	e := echo.New()
	Register(e.Group(""), ping)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp OkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHandler_GET(t *testing.T) {
	t.Run("reports ok when the database answers", func(t *testing.T) {
		rec, resp := serve(t, func(ctx context.Context) error { return nil })

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Ok)
		assert.Equal(t, version.Version, resp.Version)
		assert.Equal(t, "ok", resp.Database)
	})

	t.Run("reports 503 when the database is down", func(t *testing.T) {
		rec, resp := serve(t, func(ctx context.Context) error { return errors.New("connection refused") })

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.False(t, resp.Ok)
		assert.Equal(t, "unreachable", resp.Database)
	})
}
