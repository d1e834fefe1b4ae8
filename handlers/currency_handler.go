package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mhr996/school-dash-sub003/services"
)

func GetConversionRate(c *fiber.Ctx) error {
	rates, err := services.FetchRates()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch exchange rates"})
	}

	currency := c.Query("currency", "USD")
	rate, ok := rates[currency]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Rate not available for requested currency"})
	}

	return c.JSON(fiber.Map{"base": "ILS", "currency": currency, "rate": rate})
}
