package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro-serving/internal/middleware/auth"
	"bistro-serving/internal/models"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) (int64, error)
	Promote(ctx context.Context, id string) (int64, error)
}

type UserHandler struct {
	Store    UserStore
	Producer EventPublisher
}

// CreateUser inserts a user unless one already exists for the email.
// Uniqueness is a lookup-before-insert, not a store constraint.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	ctx := c.Request().Context()
	existing, err := h.Store.FindByEmail(ctx, req.Email)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if existing != nil {
		return c.JSON(http.StatusOK, echo.Map{"message": "user already exist"})
	}

	user, err := h.Store.Insert(ctx, models.User{Name: req.Name, Email: req.Email})
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	publish(c, h.Producer, "user_events", user.Email, map[string]interface{}{
		"type":   "user_created",
		"userID": user.ID.Hex(),
		"email":  user.Email,
	})

	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.Store.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, users)
}

// CheckAdmin answers whether the given user holds the admin role. The path
// email must match the token email, regardless of role.
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	email := c.Param("email")

	authEmail, ok := auth.Email(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
	}
	if email != authEmail {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}

	user, err := h.Store.FindByEmail(c.Request().Context(), email)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	admin := user != nil && user.Role == "admin"
	return c.JSON(http.StatusOK, echo.Map{"admin": admin})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id := c.Param("id")

	deleted, err := h.Store.Delete(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	publish(c, h.Producer, "user_events", id, map[string]interface{}{
		"type":   "user_deleted",
		"userID": id,
	})

	return c.JSON(http.StatusOK, echo.Map{"deleted_count": deleted})
}

func (h *UserHandler) PromoteAdmin(c echo.Context) error {
	id := c.Param("id")

	modified, err := h.Store.Promote(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	publish(c, h.Producer, "user_events", id, map[string]interface{}{
		"type":   "user_promoted",
		"userID": id,
	})

	return c.JSON(http.StatusOK, echo.Map{"modified_count": modified})
}
