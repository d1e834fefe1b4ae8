package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mhr996/school-dash-sub003/database"
	"github.com/mhr996/school-dash-sub003/models"
	"github.com/mhr996/school-dash-sub003/utils"
	"github.com/mhr996/school-dash-sub003/websocket"
	"gorm.io/gorm"
)

type CreateBookingRequest struct {
	ProviderKind string   `json:"provider_kind" validate:"required,oneof=guide paramedic security_company travel_company entertainment_company education_program"`
	ProviderID   string   `json:"provider_id" validate:"required,uuid"`
	TripID       *string  `json:"trip_id,omitempty" validate:"omitempty,uuid"`
	TripDate     *string  `json:"trip_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Quantity     int      `json:"quantity" validate:"gte=0"`
	Days         int      `json:"days" validate:"gte=0"`
	RateType     string   `json:"rate_type,omitempty" validate:"omitempty,oneof=hourly daily regional overnight"`
	TotalAmount  *float64 `json:"total_amount,omitempty" validate:"omitempty,gte=0"`
	Notes        *string  `json:"notes,omitempty"`
}

// CreateBooking records an engagement of a provider. The provider's current
// rates are copied onto the booking so later rate changes never reprice past
// work.
func CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	providerID, _ := uuid.Parse(req.ProviderID)

	var provider models.ServiceProvider
	if err := database.DB.Preload("RateProfile").First(&provider, "id = ? AND kind = ?", providerID, req.ProviderKind).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	var tripID *uuid.UUID
	if req.TripID != nil {
		parsed, _ := uuid.Parse(*req.TripID)
		var trip models.Trip
		if err := database.DB.First(&trip, "id = ?", parsed).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
		}
		tripID = &parsed
	}

	var tripDate *time.Time
	if req.TripDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.TripDate)
		tripDate = &parsed
	}

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		reference, err := utils.GenerateUniqueBookingReference(tx)
		if err != nil {
			return err
		}

		booking = models.Booking{
			BookingReference: reference,
			ProviderKind:     provider.Kind,
			ProviderID:       provider.ID,
			TripID:           tripID,
			TripDate:         tripDate,
			Quantity:         req.Quantity,
			Days:             req.Days,
			RateType:         req.RateType,
			TotalAmount:      req.TotalAmount,
			Notes:            req.Notes,
			Status:           "pending",
		}
		if provider.RateProfile != nil {
			booking.HourlyRate = &provider.RateProfile.HourlyRate
			booking.DailyRate = &provider.RateProfile.DailyRate
			booking.RegionalRate = &provider.RateProfile.RegionalRate
			booking.OvernightRate = &provider.RateProfile.OvernightRate
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	go websocket.Publish(websocket.EventBookingCreated, booking)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func ListBookings(c *fiber.Ctx) error {
	query := database.DB.Preload("Trip").Order("created_at desc")

	if kind := c.Query("provider_kind"); kind != "" {
		query = query.Where("provider_kind = ?", kind)
	}
	if providerID := c.Query("provider_id"); providerID != "" {
		query = query.Where("provider_id = ?", providerID)
	}
	if tripID := c.Query("trip_id"); tripID != "" {
		query = query.Where("trip_id = ?", tripID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve bookings"})
	}

	return c.JSON(bookings)
}

func GetBooking(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("Trip").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	return c.JSON(fiber.Map{
		"booking":       booking,
		"earned_amount": booking.EarnedAmount(),
	})
}

// UpdateBookingStatus is the only mutation a booking supports after creation.
func UpdateBookingStatus(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	type StatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	}
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	booking.Status = req.Status
	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking status"})
	}

	go websocket.Publish(websocket.EventBookingUpdated, booking)

	return c.JSON(booking)
}
