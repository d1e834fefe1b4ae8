package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mhr996/school-dash-sub003/handlers"
	"github.com/mhr996/school-dash-sub003/middleware"
)

func PayoutRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payouts := api.Group("/payouts", middleware.Protected())
	payouts.Get("", handlers.ListPayouts)
	payouts.Get("/:payoutId", handlers.GetPayout)
	payouts.Post("", middleware.AdminRequired(), handlers.CreatePayout)

	api.Get("/providers/:kind/:providerId/balance", middleware.Protected(), handlers.GetProviderBalance)
}
