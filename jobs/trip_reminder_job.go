package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/mhr996/school-dash-sub003/database"
	"github.com/mhr996/school-dash-sub003/models"
	"github.com/mhr996/school-dash-sub003/notifications"
)

// SendTripReminders emails every provider with a confirmed booking on a trip
// departing tomorrow.
func SendTripReminders() {
	log.Println("Running job: SendTripReminders...")

	tomorrow := time.Now().AddDate(0, 0, 1)
	dayStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var upcomingBookings []models.Booking
	err := database.DB.
		Preload("Trip").
		Where("status = ? AND trip_date >= ? AND trip_date < ?", "confirmed", dayStart, dayEnd).
		Find(&upcomingBookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming trips: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		var provider models.ServiceProvider
		if err := database.DB.First(&provider, "id = ?", booking.ProviderID).Error; err != nil {
			log.Printf("Provider %s not found for booking %s", booking.ProviderID, booking.ID)
			continue
		}
		if provider.Email == nil {
			continue
		}

		destination := ""
		if booking.Trip != nil {
			destination = booking.Trip.Destination
		}

		log.Printf("Sending trip reminder for booking %s", booking.BookingReference)

		emailSubject := "Reminder: Your Trip Engagement is Tomorrow"
		emailBody := fmt.Sprintf(
			"<h1>Trip Reminder</h1><p>Hello %s,</p><p>This is a reminder that you are booked for a trip tomorrow (booking %s, destination %s).</p>",
			provider.Name,
			booking.BookingReference,
			destination,
		)

		go notifications.SendEmail(provider.Name, *provider.Email, emailSubject, emailBody)
	}
}
