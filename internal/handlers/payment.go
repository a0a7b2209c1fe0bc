package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro-serving/internal/logging"
	"bistro-serving/internal/models"
)

type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (models.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
	MarkCartCleared(ctx context.Context, id primitive.ObjectID) error
}

type CartCleaner interface {
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

type PaymentHandler struct {
	Store    PaymentStore
	Carts    CartCleaner
	Intents  IntentCreator
	Producer EventPublisher
}

// amountFromPrice converts a JSON price value to minor currency units. A
// non-numeric or non-positive price falls back to the minimal chargeable
// amount.
func amountFromPrice(v interface{}) int64 {
	price, ok := v.(float64)
	if !ok || price <= 0 {
		return 1
	}

	amount := int64(math.Round(price * 100))
	if amount < 1 {
		return 1
	}
	return amount
}

func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req map[string]interface{}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	amount := amountFromPrice(req["price"])

	secret, err := h.Intents.CreateIntent(c.Request().Context(), amount)
	if err != nil {
		return errorResponse(c, http.StatusBadGateway, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"clientSecret": secret})
}

func (h *PaymentHandler) GetPayments(c echo.Context) error {
	email := c.Param("email")

	payments, err := h.Store.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, payments)
}

// RecordPayment inserts the payment record, then removes the paid-for cart
// items and flips cart_cleared on the payment. The two writes are not one
// transaction; an interrupted cleanup leaves cart_cleared=false so it can be
// retried idempotently.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req struct {
		Email         string   `json:"email"`
		Price         float64  `json:"price"`
		TransactionID string   `json:"transaction_id"`
		CartIDs       []string `json:"cart_ids"`
		MenuItemIDs   []string `json:"menu_item_ids"`
		Status        string   `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	ctx := c.Request().Context()
	payment, err := h.Store.Insert(ctx, models.Payment{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		CartIDs:       req.CartIDs,
		MenuItemIDs:   req.MenuItemIDs,
		Status:        req.Status,
		Date:          time.Now().UTC(),
	})
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	var deleted int64
	if deleted, err = h.Carts.DeleteMany(ctx, req.CartIDs); err != nil {
		logging.FromContext(ctx).Error("cart cleanup error", "paymentID", payment.ID.Hex(), "err", err)
	} else {
		if err := h.Store.MarkCartCleared(ctx, payment.ID); err != nil {
			logging.FromContext(ctx).Error("cart cleared mark error", "paymentID", payment.ID.Hex(), "err", err)
		} else {
			payment.CartCleared = true
		}
	}

	publish(c, h.Producer, "payment_events", payment.Email, map[string]interface{}{
		"type":      "payment_recorded",
		"paymentID": payment.ID.Hex(),
		"email":     payment.Email,
		"price":     payment.Price,
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"payment":       payment,
		"deleted_count": deleted,
	})
}
