package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro-serving/internal/models"
)

type StatsStore interface {
	AdminStats(ctx context.Context) (models.AdminStats, error)
	OrderStats(ctx context.Context) ([]models.CategoryStat, error)
}

type StatsHandler struct {
	Store StatsStore
}

func (h *StatsHandler) AdminStats(c echo.Context) error {
	stats, err := h.Store.AdminStats(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) OrderStats(c echo.Context) error {
	stats, err := h.Store.OrderStats(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, stats)
}
