package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mhr996/school-dash-sub003/handlers"
	"github.com/mhr996/school-dash-sub003/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.LoginUser)
	auth.Post("/forgot-password", handlers.ForgotPassword)
	auth.Post("/reset-password", handlers.ResetPassword)

	auth.Get("/me", middleware.Protected(), handlers.GetMe)
	auth.Post("/register", middleware.Protected(), middleware.AdminRequired(), handlers.RegisterUser)
}
