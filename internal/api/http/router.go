package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xalt/xolt-api/internal/api/http/handlers"
	"github.com/xalt/xolt-api/internal/auth"
	"github.com/xalt/xolt-api/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Products       *handlers.ProductsHandler
	Todos          *handlers.TodosHandler
	Upload         *handlers.UploadHandler
	AuthMiddleware *auth.Middleware
	UploadDir      string
}

// RegisterRoutes wires HTTP routes. The identity binder runs on every
// /api route before any guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Static("/uploads", cfg.UploadDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Xolt API!"})
	})
	app.Get("/health", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api", cfg.AuthMiddleware.Bind)

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/forgot-password", cfg.Auth.ForgotPassword)
	authGroup.Post("/reset-password", cfg.Auth.ResetPassword)

	api.Post("/bootstrap/admin", cfg.Users.Bootstrap)

	users := api.Group("/users")
	users.Get("/", auth.RequireRole(domain.RoleSuperAdmin), cfg.Users.List)
	users.Post("/", auth.RequireRole(domain.RoleSuperAdmin), cfg.Users.Create)
	users.Get("/:id", auth.RequireAuthenticated(), cfg.Users.Get)
	users.Put("/:id", auth.RequireAuthenticated(), cfg.Users.Update)
	users.Delete("/:id", auth.RequireRole(domain.RoleSuperAdmin), cfg.Users.Delete)

	products := api.Group("/products", auth.RequireAuthenticated())
	products.Get("/", cfg.Products.List)
	products.Post("/", cfg.Products.Create)
	products.Get("/:id", cfg.Products.Get)
	products.Put("/:id", cfg.Products.Update)
	products.Delete("/:id", cfg.Products.Delete)

	todos := api.Group("/todos")
	todos.Get("/", cfg.Todos.List)
	todos.Post("/", cfg.Todos.Create)
	todos.Get("/:id", cfg.Todos.Get)
	todos.Put("/:id", cfg.Todos.Update)
	todos.Delete("/:id", cfg.Todos.Delete)

	upload := api.Group("/upload")
	upload.Post("/image", cfg.Upload.Image)
}
