package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"bistro-serving/internal/token"
)

func TestCreateToken(t *testing.T) {
	svc := token.NewService([]byte("test-secret"))
	h := &TokenHandler{Tokens: svc}

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/jwt", map[string]string{"email": "a@x.com"})
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])

	email, err := svc.Verify(resp["token"])
	require.NoError(t, err)
	require.Equal(t, "a@x.com", email)
}

func TestCreateTokenMissingEmail(t *testing.T) {
	h := &TokenHandler{Tokens: token.NewService([]byte("test-secret"))}

	c, _ := newJSONContext(t, http.MethodPost, "/api/v1/jwt", map[string]string{})
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}
