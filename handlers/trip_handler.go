package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mhr996/school-dash-sub003/database"
	"github.com/mhr996/school-dash-sub003/models"
)

type TripRequest struct {
	Title       string  `json:"title" validate:"required,min=2"`
	Destination string  `json:"destination" validate:"required,min=2"`
	SchoolName  string  `json:"school_name" validate:"required,min=2"`
	TripDate    string  `json:"trip_date" validate:"required,datetime=2006-01-02"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=planned confirmed completed cancelled"`
	Notes       *string `json:"notes,omitempty"`
}

func CreateTrip(c *fiber.Ctx) error {
	var req TripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tripDate, _ := time.Parse("2006-01-02", req.TripDate)

	trip := models.Trip{
		Title:       req.Title,
		Destination: req.Destination,
		SchoolName:  req.SchoolName,
		TripDate:    tripDate,
		Notes:       req.Notes,
	}
	if req.Status != "" {
		trip.Status = req.Status
	}

	if err := database.DB.Create(&trip).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create trip"})
	}

	return c.Status(fiber.StatusCreated).JSON(trip)
}

func ListTrips(c *fiber.Ctx) error {
	query := database.DB.Order("trip_date desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if school := c.Query("school"); school != "" {
		query = query.Where("school_name = ?", school)
	}

	var trips []models.Trip
	if err := query.Find(&trips).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve trips"})
	}

	return c.JSON(trips)
}

func GetTrip(c *fiber.Ctx) error {
	tripID := c.Params("tripId")

	var trip models.Trip
	if err := database.DB.First(&trip, "id = ?", tripID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	var bookings []models.Booking
	database.DB.Where("trip_id = ?", trip.ID).Find(&bookings)

	return c.JSON(fiber.Map{
		"trip":     trip,
		"bookings": bookings,
	})
}

func UpdateTrip(c *fiber.Ctx) error {
	tripID := c.Params("tripId")

	var trip models.Trip
	if err := database.DB.First(&trip, "id = ?", tripID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	var req TripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tripDate, _ := time.Parse("2006-01-02", req.TripDate)

	trip.Title = req.Title
	trip.Destination = req.Destination
	trip.SchoolName = req.SchoolName
	trip.TripDate = tripDate
	trip.Notes = req.Notes
	if req.Status != "" {
		trip.Status = req.Status
	}
	database.DB.Save(&trip)

	return c.JSON(trip)
}
