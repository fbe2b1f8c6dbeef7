package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/canasta/internal/config"
	"github.com/example/canasta/internal/handlers"
	"github.com/example/canasta/internal/middleware"
	"github.com/example/canasta/internal/store"
)

// Register wires up all HTTP routes.
//
// Only login is reachable without a session; logout degrades to a
// no-session payload. Everything else sits behind the auth gate, and user
// management additionally behind the admin gate.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	st := store.New(db)

	authHandler := handlers.NewAuthHandler(st, cfg)
	userHandler := handlers.NewUserHandler(st)
	catalogHandler := handlers.NewCatalogHandler(st)
	productHandler := handlers.NewProductHandler(st)

	api := app.Group("/api")

	// Public surface
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", middleware.OptionalAuth(cfg, st), authHandler.Logout)

	// Authenticated surface
	protected := api.Group("", middleware.RequireAuth(cfg, st))

	protected.Get("/auth/me", authHandler.Me)

	// Admin surface
	protected.Post("/auth/register", middleware.RequireAdmin(), authHandler.Register)
	users := protected.Group("/users", middleware.RequireAdmin())
	users.Get("/", userHandler.ListUsers)
	users.Put("/:id", userHandler.UpdateUser)

	// Catalog
	categories := protected.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/:id", catalogHandler.GetCategory)
	categories.Put("/:id", catalogHandler.UpdateCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)

	units := protected.Group("/units")
	units.Get("/", catalogHandler.ListUnits)
	units.Post("/", catalogHandler.CreateUnit)
	units.Get("/:id", catalogHandler.GetUnit)
	units.Put("/:id", catalogHandler.UpdateUnit)
	units.Delete("/:id", catalogHandler.DeleteUnit)

	presentations := protected.Group("/presentations")
	presentations.Get("/", catalogHandler.ListPresentations)
	presentations.Post("/", catalogHandler.CreatePresentation)
	presentations.Get("/:id", catalogHandler.GetPresentation)
	presentations.Put("/:id", catalogHandler.UpdatePresentation)
	presentations.Delete("/:id", catalogHandler.DeletePresentation)

	brands := protected.Group("/brands")
	brands.Get("/", catalogHandler.ListBrands)
	brands.Post("/", catalogHandler.CreateBrand)
	brands.Get("/:id", catalogHandler.GetBrand)
	brands.Put("/:id", catalogHandler.UpdateBrand)
	brands.Delete("/:id", catalogHandler.DeleteBrand)

	productHandler.RegisterProductRoutes(
		protected.Group("/products"),
		protected.Group("/variants"),
		protected.Group("/equivalents"),
	)
}
