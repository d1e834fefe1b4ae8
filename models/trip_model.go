package models

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Destination string    `gorm:"size:255;not null" json:"destination"`
	SchoolName  string    `gorm:"size:255;not null" json:"school_name"`
	TripDate    time.Time `gorm:"not null" json:"trip_date"`
	Status      string    `gorm:"size:20;not null;default:'planned'" json:"status"`
	Notes       *string   `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
