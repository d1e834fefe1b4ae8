package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mhr996/school-dash-sub003/handlers"
	"github.com/mhr996/school-dash-sub003/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/dashboard-analytics", handlers.GetDashboardAnalytics)

	reports := admin.Group("/reports")
	reports.Get("/payouts", handlers.GeneratePayoutReport)

	uploads := admin.Group("/uploads")
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
