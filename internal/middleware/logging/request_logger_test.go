package loggingmw

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"bistro-serving/internal/logging"
)

func TestRequestLoggerInjectsContextLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/get-menu", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestLogger(base)(func(c echo.Context) error {
		logging.FromContext(c.Request().Context()).Info("inside handler")
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	out := buf.String()
	require.Contains(t, out, "inside handler")
	require.Contains(t, out, "req-123")
	require.Contains(t, out, `"method":"GET"`)
	require.Contains(t, out, "request completed")
}

func TestRequestLoggerReportsHandlerError(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/get-users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestLogger(base)(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
	})

	require.NoError(t, handler(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, buf.String(), `"status":401`)
}
