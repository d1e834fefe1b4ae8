package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mhr996/school-dash-sub003/database"
	"github.com/mhr996/school-dash-sub003/models"
)

type DashboardAnalyticsResponse struct {
	ProviderCounts     map[string]int64 `json:"provider_counts"`
	TotalTrips         int64            `json:"total_trips"`
	BookingsLast30Days int64            `json:"bookings_last_30_days"`
	TotalEarned        float64          `json:"total_earned"`
	TotalPaidOut       float64          `json:"total_paid_out"`
	RecentPayouts      []models.Payout  `json:"recent_payouts"`
}

func GetDashboardAnalytics(c *fiber.Ctx) error {
	response := DashboardAnalyticsResponse{
		ProviderCounts: make(map[string]int64),
	}

	for _, kind := range models.AllProviderKinds() {
		var count int64
		database.DB.Model(&models.ServiceProvider{}).Where("kind = ? AND status = ?", kind, "active").Count(&count)
		response.ProviderCounts[string(kind)] = count
	}

	database.DB.Model(&models.Trip{}).Count(&response.TotalTrips)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&models.Booking{}).Where("created_at > ?", thirtyDaysAgo).Count(&response.BookingsLast30Days)

	// Earned across all bookings: flat amounts plus per-rate calculations.
	var bookings []models.Booking
	database.DB.Find(&bookings)
	for i := range bookings {
		response.TotalEarned += bookings[i].EarnedAmount()
	}

	var totalPaidOut float64
	database.DB.Model(&models.Payout{}).Select("COALESCE(SUM(amount), 0)").Row().Scan(&totalPaidOut)
	response.TotalPaidOut = totalPaidOut

	database.DB.Order("created_at desc").Limit(5).Find(&response.RecentPayouts)

	return c.JSON(response)
}

func GeneratePayoutReport(c *fiber.Ctx) error {
	startDateStr := c.Query("start_date", time.Now().AddDate(0, -1, 0).Format("2006-01-02"))
	endDateStr := c.Query("end_date", time.Now().Format("2006-01-02"))

	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_date format. Use YYYY-MM-DD."})
	}
	endDate, err := time.Parse("2006-01-02", endDateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date format. Use YYYY-MM-DD."})
	}
	endDate = endDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	var payouts []models.Payout
	database.DB.
		Where("payment_date BETWEEN ? AND ?", startDate, endDate).
		Order("payment_date desc").
		Find(&payouts)

	providerNames := make(map[string]string)

	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	headers := []string{"Payout ID", "Date", "Provider", "Provider Kind", "Amount", "Method", "Reference"}
	if err := w.Write(headers); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV header"})
	}

	for _, p := range payouts {
		name, ok := providerNames[p.ProviderID.String()]
		if !ok {
			var provider models.ServiceProvider
			if err := database.DB.First(&provider, "id = ?", p.ProviderID).Error; err == nil {
				name = provider.Name
			}
			providerNames[p.ProviderID.String()] = name
		}

		reference := ""
		if p.ReferenceNumber != nil {
			reference = *p.ReferenceNumber
		}

		record := []string{
			p.ID.String(),
			p.PaymentDate.Format("2006-01-02"),
			name,
			string(p.ProviderKind),
			fmt.Sprintf("%.2f", p.Amount),
			p.Method,
			reference,
		}
		if err := w.Write(record); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV record"})
		}
	}
	w.Flush()

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"payouts_%s_to_%s.csv\"", startDate.Format("2006-01-02"), endDate.Format("2006-01-02")))

	return c.Send(b.Bytes())
}
