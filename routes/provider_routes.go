package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mhr996/school-dash-sub003/handlers"
	"github.com/mhr996/school-dash-sub003/middleware"
)

func ProviderRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	providers := api.Group("/providers", middleware.Protected())
	providers.Get("", handlers.ListProviders)
	providers.Get("/directory", handlers.GetProviderDirectory)
	providers.Get("/:providerId", handlers.GetProvider)
	providers.Post("", handlers.CreateProvider)
	providers.Put("/:providerId", handlers.UpdateProvider)
	providers.Delete("/:providerId", middleware.AdminRequired(), handlers.DeleteProvider)
}
