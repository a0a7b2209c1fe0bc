package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro-serving/internal/models"
)

type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
}

type ReviewHandler struct {
	Store ReviewStore
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	reviews, err := h.Store.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, reviews)
}
