package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro-serving/internal/models"
)

type CartStore interface {
	Insert(ctx context.Context, item models.CartItem) (models.CartItem, error)
	ListByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type CartHandler struct {
	Store    CartStore
	Producer EventPublisher
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req struct {
		MenuID string  `json:"menu_id"`
		Email  string  `json:"email"`
		Name   string  `json:"name"`
		Image  string  `json:"image"`
		Price  float64 `json:"price"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	item, err := h.Store.Insert(c.Request().Context(), models.CartItem{
		MenuID: req.MenuID,
		Email:  req.Email,
		Name:   req.Name,
		Image:  req.Image,
		Price:  req.Price,
	})
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	publish(c, h.Producer, "cart_events", item.Email, map[string]interface{}{
		"type":       "cart_item_added",
		"cartItemID": item.ID.Hex(),
		"email":      item.Email,
	})

	return c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) GetCart(c echo.Context) error {
	email := c.QueryParam("email")

	items, err := h.Store.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) DeleteItem(c echo.Context) error {
	id := c.Param("id")

	deleted, err := h.Store.Delete(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	publish(c, h.Producer, "cart_events", id, map[string]interface{}{
		"type":       "cart_item_deleted",
		"cartItemID": id,
	})

	return c.JSON(http.StatusOK, echo.Map{"deleted_count": deleted})
}
