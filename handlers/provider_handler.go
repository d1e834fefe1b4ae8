package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mhr996/school-dash-sub003/database"
	"github.com/mhr996/school-dash-sub003/models"
	"gorm.io/gorm"
)

type RateProfileRequest struct {
	HourlyRate    float64 `json:"hourly_rate" validate:"gte=0"`
	DailyRate     float64 `json:"daily_rate" validate:"gte=0"`
	RegionalRate  float64 `json:"regional_rate" validate:"gte=0"`
	OvernightRate float64 `json:"overnight_rate" validate:"gte=0"`
}

type CompanyProfileRequest struct {
	LicenseNumber *string `json:"license_number,omitempty"`
	VehicleCount  int     `json:"vehicle_count,omitempty" validate:"gte=0"`
	ServiceArea   *string `json:"service_area,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	LogoURL       *string `json:"logo_url,omitempty"`
}

type CreateProviderRequest struct {
	Kind    string  `json:"kind" validate:"required,oneof=guide paramedic security_company travel_company entertainment_company education_program"`
	Name    string  `json:"name" validate:"required,min=2"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`

	RateProfile    *RateProfileRequest    `json:"rate_profile,omitempty"`
	CompanyProfile *CompanyProfileRequest `json:"company_profile,omitempty"`
}

func providerKindHasRates(kind models.ProviderKind) bool {
	return kind == models.ProviderKindGuide || kind == models.ProviderKindParamedic
}

func CreateProvider(c *fiber.Ctx) error {
	var req CreateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	kind := models.ProviderKind(req.Kind)
	if providerKindHasRates(kind) && req.CompanyProfile != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Individual providers carry a rate profile, not a company profile"})
	}
	if !providerKindHasRates(kind) && req.RateProfile != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Company providers carry a company profile, not a rate profile"})
	}

	var provider models.ServiceProvider
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		provider = models.ServiceProvider{
			Kind:    kind,
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		}
		if err := tx.Create(&provider).Error; err != nil {
			return err
		}

		if providerKindHasRates(kind) {
			rates := models.RateProfile{ProviderID: provider.ID}
			if req.RateProfile != nil {
				rates.HourlyRate = req.RateProfile.HourlyRate
				rates.DailyRate = req.RateProfile.DailyRate
				rates.RegionalRate = req.RateProfile.RegionalRate
				rates.OvernightRate = req.RateProfile.OvernightRate
			}
			if err := tx.Create(&rates).Error; err != nil {
				return err
			}
			provider.RateProfile = &rates
		} else {
			company := models.CompanyProfile{ProviderID: provider.ID}
			if req.CompanyProfile != nil {
				company.LicenseNumber = req.CompanyProfile.LicenseNumber
				company.VehicleCount = req.CompanyProfile.VehicleCount
				company.ServiceArea = req.CompanyProfile.ServiceArea
				company.ContactPerson = req.CompanyProfile.ContactPerson
				company.LogoURL = req.CompanyProfile.LogoURL
			}
			if err := tx.Create(&company).Error; err != nil {
				return err
			}
			provider.CompanyProfile = &company
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create provider"})
	}

	return c.Status(fiber.StatusCreated).JSON(provider)
}

func ListProviders(c *fiber.Ctx) error {
	query := database.DB.Preload("RateProfile").Preload("CompanyProfile")

	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var providers []models.ServiceProvider
	if err := query.Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve providers"})
	}

	return c.JSON(providers)
}

func GetProvider(c *fiber.Ctx) error {
	providerID := c.Params("providerId")

	var provider models.ServiceProvider
	if err := database.DB.Preload("RateProfile").Preload("CompanyProfile").First(&provider, "id = ?", providerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	return c.JSON(provider)
}

type UpdateProviderRequest struct {
	Name    string  `json:"name" validate:"required,min=2"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Status  string  `json:"status" validate:"required,oneof=active inactive"`

	RateProfile    *RateProfileRequest    `json:"rate_profile,omitempty"`
	CompanyProfile *CompanyProfileRequest `json:"company_profile,omitempty"`
}

func UpdateProvider(c *fiber.Ctx) error {
	providerID := c.Params("providerId")

	var req UpdateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var provider models.ServiceProvider
	if err := database.DB.Preload("RateProfile").Preload("CompanyProfile").First(&provider, "id = ?", providerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		provider.Name = req.Name
		provider.Email = req.Email
		provider.Phone = req.Phone
		provider.Address = req.Address
		provider.Status = req.Status
		if err := tx.Save(&provider).Error; err != nil {
			return err
		}

		if req.RateProfile != nil && provider.RateProfile != nil {
			provider.RateProfile.HourlyRate = req.RateProfile.HourlyRate
			provider.RateProfile.DailyRate = req.RateProfile.DailyRate
			provider.RateProfile.RegionalRate = req.RateProfile.RegionalRate
			provider.RateProfile.OvernightRate = req.RateProfile.OvernightRate
			if err := tx.Save(provider.RateProfile).Error; err != nil {
				return err
			}
		}
		if req.CompanyProfile != nil && provider.CompanyProfile != nil {
			provider.CompanyProfile.LicenseNumber = req.CompanyProfile.LicenseNumber
			provider.CompanyProfile.VehicleCount = req.CompanyProfile.VehicleCount
			provider.CompanyProfile.ServiceArea = req.CompanyProfile.ServiceArea
			provider.CompanyProfile.ContactPerson = req.CompanyProfile.ContactPerson
			provider.CompanyProfile.LogoURL = req.CompanyProfile.LogoURL
			if err := tx.Save(provider.CompanyProfile).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update provider"})
	}

	return c.JSON(provider)
}

// DeleteProvider removes a provider with no ledger history. Providers with
// bookings or payouts are deactivated instead, since those rows are
// append-only and must keep resolving.
func DeleteProvider(c *fiber.Ctx) error {
	providerID, err := uuid.Parse(c.Params("providerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid provider id"})
	}

	var provider models.ServiceProvider
	if err := database.DB.First(&provider, "id = ?", providerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	var bookingCount, payoutCount int64
	database.DB.Model(&models.Booking{}).Where("provider_kind = ? AND provider_id = ?", provider.Kind, provider.ID).Count(&bookingCount)
	database.DB.Model(&models.Payout{}).Where("provider_kind = ? AND provider_id = ?", provider.Kind, provider.ID).Count(&payoutCount)

	if bookingCount > 0 || payoutCount > 0 {
		provider.Status = "inactive"
		database.DB.Save(&provider)
		return c.JSON(fiber.Map{"message": "Provider has ledger history and was deactivated instead of deleted"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("provider_id = ?", provider.ID).Delete(&models.RateProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("provider_id = ?", provider.ID).Delete(&models.CompanyProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&provider).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete provider"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetProviderDirectory lists every provider of a kind with its computed
// balance, used to pick a payee before recording a new payout.
func GetProviderDirectory(c *fiber.Ctx) error {
	kind := models.ProviderKind(c.Query("kind"))
	if kind == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "kind query parameter is required"})
	}
	if !isKnownProviderKind(kind) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown provider kind"})
	}

	balances, err := balanceService().DirectoryWithBalances(c.Context(), kind)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute provider balances"})
	}

	return c.JSON(balances)
}

func isKnownProviderKind(kind models.ProviderKind) bool {
	for _, known := range models.AllProviderKinds() {
		if kind == known {
			return true
		}
	}
	return false
}
