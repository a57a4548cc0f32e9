package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/adsite-service/internal/api/http/handlers"
	"github.com/spec-kit/adsite-service/internal/auth"
	"github.com/spec-kit/adsite-service/internal/config"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Catalog        *handlers.CatalogHandler
	Profile        *handlers.ProfileHandler
	Orders         *handlers.OrdersHandler
	Support        *handlers.SupportHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
	Media          config.MediaConfig
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	// Uploaded images: service, news and order photos plus site branding.
	app.Static(cfg.Media.URLPrefix, cfg.Media.Root)

	// Public read surface.
	app.Get("/", cfg.Catalog.Home)
	app.Get("/catalog/", cfg.Catalog.ListServices)
	app.Get("/catalog/:id/", cfg.Catalog.GetService)
	app.Get("/news/", cfg.Catalog.ListNews)
	app.Get("/news/:id/", cfg.Catalog.GetNews)
	app.Get("/contacts/", cfg.Catalog.ListContacts)
	app.Get("/settings/", cfg.Catalog.Settings)
	app.Get("/search/", cfg.Catalog.Search)

	// Auth.
	app.Post("/register/", cfg.Users.Register)
	app.Post("/login/", cfg.Users.Login)
	app.Post("/logout/", cfg.Users.Logout)
	app.Post("/password/change", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Users.ChangePassword)

	// Order form is public; creating goes through optional auth so guests get
	// the interstitial payload instead of a bare denial.
	app.Get("/order/", cfg.Orders.GetForm)
	app.Post("/order/", cfg.AuthMiddleware.HandleOptional, cfg.Orders.Create)
	app.Get("/order/:id/", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Orders.GetOwn)

	// Signed-in profile: own orders plus own support thread.
	profile := app.Group("/profile", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	profile.Get("/", cfg.Profile.Get)
	profile.Post("/", cfg.Profile.PostMessage)

	// Staff-only surface behind the single role gate.
	staff := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireStaff())
	staff.Get("/admin-support/", cfg.Support.ListThreads)
	staff.Get("/admin-support/unread-count/", cfg.Support.UnreadCount)
	staff.Get("/admin-chat/:userId/", cfg.Support.ViewThread)
	staff.Post("/admin-chat/:userId/", cfg.Support.Reply)
	staff.Get("/admin-order/:orderId/", cfg.Admin.GetOrder)
	staff.Get("/admin-users/", cfg.Admin.ListUsers)
	staff.Get("/admin-user/:userId/", cfg.Admin.GetUser)
}
