package models

import (
	"time"

	"github.com/google/uuid"
)

type PayoutReceipt struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PayoutID    uuid.UUID `gorm:"type:uuid;not null;unique" json:"payout_id"`
	ReceiptURL  string    `gorm:"size:255;not null" json:"receipt_url"`
	GeneratedAt time.Time `gorm:"not null" json:"generated_at"`

	Payout Payout `gorm:"foreignkey:PayoutID" json:"-"`
}
