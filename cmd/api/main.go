package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"vitrine_backend/internal/controller"
	"vitrine_backend/internal/middleware"
	"vitrine_backend/internal/model"
	"vitrine_backend/pkg/config"
	"vitrine_backend/pkg/cron"
	"vitrine_backend/pkg/database"
	"vitrine_backend/pkg/seed"
	"vitrine_backend/pkg/utils/jwt"
	"vitrine_backend/pkg/utils/storage"
)

func setupRoutes(app *fiber.App, cfg *config.Config) {
	// Public storefront
	app.Get("/", controller.Home)
	app.Get("/imoveis/:id", controller.PropertyDetails)

	api := app.Group("/api")

	if !cfg.Configured() {
		api.Use(controller.ServiceNotConfigured)
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", controller.Login)
	auth.Get("/session", controller.GetSession)
	auth.Post("/logout", controller.Logout)

	// Protected admin console routes
	protected := api.Group("/", middleware.AuthMiddleware())

	properties := protected.Group("/properties")
	properties.Get("/", controller.ListProperties)
	properties.Post("/", controller.CreateProperty)
	properties.Put("/:id", controller.UpdateProperty)
	properties.Delete("/:id", controller.DeleteProperty)

	leads := protected.Group("/leads")
	leads.Get("/", controller.ListLeads)
	leads.Post("/", controller.CreateLead)
	leads.Put("/:id", controller.UpdateLead)
	leads.Delete("/:id", controller.DeleteLead)
}

func main() {
	cfg := config.Load()

	jwt.SetSecret(cfg.Auth.JWTSecret)

	if cfg.Configured() {
		database.InitDB(cfg.DatabaseURL)
		err := database.MigrateDatabase(
			&model.User{},
			&model.Property{},
			&model.Lead{},
		)
		if err != nil {
			log.Printf("Migration warning: %v", err)
		}

		seed.SeedAdminUser(database.GetDB(), cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
	} else {
		log.Println("DATABASE_URL is not set, serving showcase data only")
	}

	if cfg.Storage.Configured() {
		if err := storage.InitStorage(cfg.Storage); err != nil {
			log.Printf("Could not initialize object storage: %v", err)
		} else {
			cron.InitStorageGCCron()
		}
	} else {
		log.Println("Object storage is not configured, image uploads are disabled")
	}

	engine := html.New("./web/views", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app, cfg)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
