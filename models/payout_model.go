package models

import (
	"time"

	"github.com/google/uuid"
)

// Payout is one disbursement already made to a provider. Rows are immutable
// once created; there is no edit or delete path.
type Payout struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProviderKind ProviderKind `gorm:"size:30;not null;index:idx_payouts_provider" json:"provider_kind"`
	ProviderID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_payouts_provider" json:"provider_id"`
	Amount       float64      `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method       string       `gorm:"size:20;not null" json:"method"`
	PaymentDate  time.Time    `gorm:"not null" json:"payment_date"`

	ReferenceNumber *string `gorm:"size:100" json:"reference_number"`
	Notes           *string `gorm:"type:text" json:"notes"`

	BankName      *string `gorm:"size:255" json:"bank_name"`
	AccountHolder *string `gorm:"size:255" json:"account_holder"`
	AccountNumber *string `gorm:"size:100" json:"account_number"`
	CheckNumber   *string `gorm:"size:100" json:"check_number"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedBy   User      `gorm:"foreignkey:CreatedByID" json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
