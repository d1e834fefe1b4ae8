package models

import (
	"time"

	"github.com/google/uuid"
)

type ProviderKind string

const (
	ProviderKindGuide                ProviderKind = "guide"
	ProviderKindParamedic            ProviderKind = "paramedic"
	ProviderKindSecurityCompany      ProviderKind = "security_company"
	ProviderKindTravelCompany        ProviderKind = "travel_company"
	ProviderKindEntertainmentCompany ProviderKind = "entertainment_company"
	ProviderKindEducationProgram     ProviderKind = "education_program"
)

func AllProviderKinds() []ProviderKind {
	return []ProviderKind{
		ProviderKindGuide,
		ProviderKindParamedic,
		ProviderKindSecurityCompany,
		ProviderKindTravelCompany,
		ProviderKindEntertainmentCompany,
		ProviderKindEducationProgram,
	}
}

// ServiceProvider is the common record shared by every provider kind.
// Kind-specific fields live in the has-one profile rows below: individual
// providers (guides, paramedics) carry a RateProfile, the company kinds
// carry a CompanyProfile.
type ServiceProvider struct {
	ID      uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Kind    ProviderKind `gorm:"size:30;not null;index" json:"kind"`
	Name    string       `gorm:"size:255;not null" json:"name"`
	Email   *string      `gorm:"size:255" json:"email"`
	Phone   *string      `gorm:"size:50" json:"phone"`
	Address *string      `gorm:"size:255" json:"address"`
	Status  string       `gorm:"size:20;not null;default:'active'" json:"status"`

	RateProfile    *RateProfile    `gorm:"foreignkey:ProviderID" json:"rate_profile,omitempty"`
	CompanyProfile *CompanyProfile `gorm:"foreignkey:ProviderID" json:"company_profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RateProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProviderID    uuid.UUID `gorm:"type:uuid;not null;unique" json:"provider_id"`
	HourlyRate    float64   `gorm:"type:numeric(10,2);default:0" json:"hourly_rate"`
	DailyRate     float64   `gorm:"type:numeric(10,2);default:0" json:"daily_rate"`
	RegionalRate  float64   `gorm:"type:numeric(10,2);default:0" json:"regional_rate"`
	OvernightRate float64   `gorm:"type:numeric(10,2);default:0" json:"overnight_rate"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type CompanyProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProviderID    uuid.UUID `gorm:"type:uuid;not null;unique" json:"provider_id"`
	LicenseNumber *string   `gorm:"size:100" json:"license_number"`
	VehicleCount  int       `gorm:"default:0" json:"vehicle_count"`
	ServiceArea   *string   `gorm:"size:255" json:"service_area"`
	ContactPerson *string   `gorm:"size:255" json:"contact_person"`
	LogoURL       *string   `gorm:"size:255" json:"logo_url"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
