package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro-serving/internal/handlers"
	"bistro-serving/internal/middleware/auth"
	"bistro-serving/internal/token"
)

type Deps struct {
	Tokens         *token.Service
	Roles          auth.RoleStore
	TokenHandler   *handlers.TokenHandler
	MenuHandler    *handlers.MenuHandler
	ReviewHandler  *handlers.ReviewHandler
	CartHandler    *handlers.CartHandler
	UserHandler    *handlers.UserHandler
	PaymentHandler *handlers.PaymentHandler
	StatsHandler   *handlers.StatsHandler
	SearchHandler  *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "bistro serving is running well")
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	requireAuth := auth.RequireAuth(d.Tokens)
	requireAdmin := auth.RequireAdmin(d.Roles)

	v1 := e.Group("/api/v1")

	v1.POST("/jwt", d.TokenHandler.Create)

	v1.GET("/get-menu", d.MenuHandler.GetMenu)
	v1.POST("/create/menu", d.MenuHandler.CreateMenu, requireAuth, requireAdmin)
	v1.DELETE("/delete/:id", d.MenuHandler.DeleteMenu, requireAuth, requireAdmin)
	v1.GET("/search-menu", d.SearchHandler.Search)

	v1.GET("/get-review", d.ReviewHandler.GetReviews)

	v1.POST("/create/food-item", d.CartHandler.AddItem)
	v1.GET("/get-cart", d.CartHandler.GetCart)
	v1.DELETE("/delete-item/:id", d.CartHandler.DeleteItem)

	v1.POST("/create/user", d.UserHandler.CreateUser)
	v1.GET("/get-users", d.UserHandler.GetUsers, requireAuth, requireAdmin)
	v1.GET("/users/admin/:email", d.UserHandler.CheckAdmin, requireAuth)
	v1.DELETE("/delete-user/:id", d.UserHandler.DeleteUser, requireAuth, requireAdmin)
	v1.PATCH("/admin/:id", d.UserHandler.PromoteAdmin, requireAuth, requireAdmin)

	v1.POST("/create-payment-intent", d.PaymentHandler.CreateIntent)
	v1.GET("/get-payments/:email", d.PaymentHandler.GetPayments)
	v1.POST("/payments", d.PaymentHandler.RecordPayment)

	v1.GET("/admin-stats", d.StatsHandler.AdminStats, requireAuth, requireAdmin)
	v1.GET("/order-stats", d.StatsHandler.OrderStats, requireAuth, requireAdmin)
}
