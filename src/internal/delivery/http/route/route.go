package route

import (
	"greendrop-service/src/internal/delivery/http"
	"greendrop-service/src/internal/delivery/http/middleware"
	"greendrop-service/src/internal/entity"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App               *fiber.App
	OrderController   *http.OrderController
	PaymentController *http.PaymentController
	ConnectController *http.ConnectController
	ReviewController  *http.ReviewController
	ShopController    *http.ShopController
	UserController    *http.UserController
	AdminController   *http.AdminController
	AuthMiddleware    fiber.Handler
	RateLimiter       *middleware.RateLimiter
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	if c.RateLimiter != nil {
		c.App.Use(c.RateLimiter.Handle)
	}
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	c.SetupPublicRoute()
	c.SetupAuthRoute()
}

// SetupPublicRoute registers endpoints reachable without a bearer
// token. The webhook authenticates with its signature header instead.
func (c *RouteConfig) SetupPublicRoute() {
	c.App.Post("/api/payments/webhook", c.PaymentController.Webhook)
	c.App.Get("/api/shops/nearby", c.ShopController.Nearby)
	c.App.Get("/api/shops/:id/reviews", c.ReviewController.ListReviews)
	c.App.Get("/api/zones", c.AdminController.ListZones)
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)

	c.App.Get("/api/users/profile", c.UserController.GetProfile)
	c.App.Get("/api/notifications/my", c.UserController.ListMyNotifications)

	c.App.Post("/api/orders", c.OrderController.CreateOrder)
	c.App.Get("/api/orders/my", c.OrderController.ListMyOrders)
	c.App.Get("/api/orders/:id", c.OrderController.GetOrder)
	c.App.Patch("/api/orders/:id", c.OrderController.UpdateStatus)

	c.App.Post("/api/payments/create-intent", c.PaymentController.CreateIntent)
	c.App.Post("/api/payments/connect/onboard", c.ConnectController.OnboardShop)
	c.App.Post("/api/payments/connect/driver-onboard", c.ConnectController.OnboardDriver)
	c.App.Get("/api/payments/connect/dashboard", c.ConnectController.Dashboard)
	c.App.Get("/api/payments/connect/driver-dashboard", c.ConnectController.DriverDashboard)

	c.App.Post("/api/reviews", c.ReviewController.CreateReview)
	c.App.Post("/api/disputes", c.ReviewController.CreateDispute)

	admin := c.App.Group("/api/admin", middleware.RequireRole(entity.RoleAdmin))
	admin.Get("/orders", c.OrderController.ListOrders)
	admin.Get("/disputes", c.ReviewController.ListDisputes)
	admin.Patch("/disputes/:id", c.ReviewController.ResolveDispute)
	admin.Get("/drivers", c.AdminController.ListDrivers)
	admin.Patch("/drivers/:id/verification", c.AdminController.VerifyDriver)
	admin.Get("/zones", c.AdminController.ListZones)
	admin.Post("/zones", c.AdminController.CreateZone)
	admin.Put("/zones/:id", c.AdminController.UpdateZone)
	admin.Delete("/zones/:id", c.AdminController.DeleteZone)
}
