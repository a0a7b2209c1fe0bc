package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro-serving/internal/token"
)

type TokenHandler struct {
	Tokens *token.Service
}

func (h *TokenHandler) Create(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	t, err := h.Tokens.Issue(req.Email)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"token": t})
}
