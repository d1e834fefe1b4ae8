package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RateTypeHourly    = "hourly"
	RateTypeDaily     = "daily"
	RateTypeRegional  = "regional"
	RateTypeOvernight = "overnight"
)

// Booking is one engagement of a provider on a trip. Rows are append-only:
// only Status changes after creation.
type Booking struct {
	ID               uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingReference string       `gorm:"size:20;not null;unique" json:"booking_reference"`
	ProviderKind     ProviderKind `gorm:"size:30;not null;index:idx_bookings_provider" json:"provider_kind"`
	ProviderID       uuid.UUID    `gorm:"type:uuid;not null;index:idx_bookings_provider" json:"provider_id"`
	TripID           *uuid.UUID   `json:"trip_id"`
	TripDate         *time.Time   `json:"trip_date"`

	Quantity int    `gorm:"not null;default:0" json:"quantity"`
	Days     int    `gorm:"not null;default:0" json:"days"`
	RateType string `gorm:"size:20" json:"rate_type"`

	HourlyRate    *float64 `gorm:"type:numeric(10,2)" json:"hourly_rate"`
	DailyRate     *float64 `gorm:"type:numeric(10,2)" json:"daily_rate"`
	RegionalRate  *float64 `gorm:"type:numeric(10,2)" json:"regional_rate"`
	OvernightRate *float64 `gorm:"type:numeric(10,2)" json:"overnight_rate"`

	// TotalAmount, when set, overrides the rate calculation entirely.
	TotalAmount *float64 `gorm:"type:numeric(10,2)" json:"total_amount"`

	Status string  `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes  *string `gorm:"type:text" json:"notes"`

	Trip *Trip `gorm:"foreignkey:TripID" json:"trip,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EarnedAmount is what the booked provider earns from this booking: the flat
// total when one is stored, otherwise the selected rate times quantity times
// days. Missing fields contribute zero rather than erroring.
func (b *Booking) EarnedAmount() float64 {
	if b.TotalAmount != nil {
		return *b.TotalAmount
	}

	var rate float64
	switch b.RateType {
	case RateTypeHourly:
		if b.HourlyRate != nil {
			rate = *b.HourlyRate
		}
	case RateTypeDaily:
		if b.DailyRate != nil {
			rate = *b.DailyRate
		}
	case RateTypeRegional:
		if b.RegionalRate != nil {
			rate = *b.RegionalRate
		}
	case RateTypeOvernight:
		if b.OvernightRate != nil {
			rate = *b.OvernightRate
		}
	}

	return rate * float64(b.Quantity) * float64(b.Days)
}
