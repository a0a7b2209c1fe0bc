package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro-serving/internal/logging"
	"bistro-serving/internal/models"
)

type MenuStore interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type MenuIndex interface {
	IndexItem(ctx context.Context, item models.MenuItem) error
	RemoveItem(ctx context.Context, id string) error
}

type MenuHandler struct {
	Store    MenuStore
	Index    MenuIndex
	Producer EventPublisher
}

func (h *MenuHandler) GetMenu(c echo.Context) error {
	items, err := h.Store.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) CreateMenu(c echo.Context) error {
	var req struct {
		Name     string  `json:"name"`
		Recipe   string  `json:"recipe"`
		Image    string  `json:"image"`
		Category string  `json:"category"`
		Price    float64 `json:"price"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	ctx := c.Request().Context()
	item, err := h.Store.Insert(ctx, models.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	if h.Index != nil {
		if err := h.Index.IndexItem(ctx, item); err != nil {
			logging.FromContext(ctx).Error("menu index error", "err", err)
		}
	}

	publish(c, h.Producer, "menu_events", item.ID.Hex(), map[string]interface{}{
		"type":       "menu_item_created",
		"menuItemID": item.ID.Hex(),
		"name":       item.Name,
		"category":   item.Category,
	})

	return c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) DeleteMenu(c echo.Context) error {
	id := c.Param("id")

	ctx := c.Request().Context()
	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	if h.Index != nil && deleted > 0 {
		if err := h.Index.RemoveItem(ctx, id); err != nil {
			logging.FromContext(ctx).Error("menu index error", "err", err)
		}
	}

	publish(c, h.Producer, "menu_events", id, map[string]interface{}{
		"type":       "menu_item_deleted",
		"menuItemID": id,
	})

	return c.JSON(http.StatusOK, echo.Map{"deleted_count": deleted})
}
