package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mhr996/school-dash-sub003/handlers"
	"github.com/mhr996/school-dash-sub003/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	trips := api.Group("/trips", middleware.Protected())
	trips.Get("", handlers.ListTrips)
	trips.Get("/:tripId", handlers.GetTrip)
	trips.Post("", handlers.CreateTrip)
	trips.Put("/:tripId", handlers.UpdateTrip)

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Get("", handlers.ListBookings)
	bookings.Get("/:bookingId", handlers.GetBooking)
	bookings.Post("", handlers.CreateBooking)
	bookings.Put("/:bookingId/status", handlers.UpdateBookingStatus)
}
