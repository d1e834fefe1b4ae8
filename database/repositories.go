package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/mhr996/school-dash-sub003/models"
	"gorm.io/gorm"
)

// GORM-backed implementations of the repository interfaces consumed by the
// balance service. Each one reads through the shared connection unless a
// specific *gorm.DB is supplied.

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	if db == nil {
		db = DB
	}
	return &BookingRepository{db: db}
}

func (r *BookingRepository) ListByProvider(ctx context.Context, kind models.ProviderKind, providerID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("provider_kind = ? AND provider_id = ?", kind, providerID).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

type PayoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	if db == nil {
		db = DB
	}
	return &PayoutRepository{db: db}
}

func (r *PayoutRepository) ListByProvider(ctx context.Context, kind models.ProviderKind, providerID uuid.UUID) ([]models.Payout, error) {
	var payouts []models.Payout
	err := r.db.WithContext(ctx).
		Where("provider_kind = ? AND provider_id = ?", kind, providerID).
		Order("payment_date desc").
		Find(&payouts).Error
	if err != nil {
		return nil, err
	}
	return payouts, nil
}

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	if db == nil {
		db = DB
	}
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) ListByKind(ctx context.Context, kind models.ProviderKind) ([]models.ServiceProvider, error) {
	var providers []models.ServiceProvider
	err := r.db.WithContext(ctx).
		Preload("RateProfile").
		Preload("CompanyProfile").
		Where("kind = ?", kind).
		Find(&providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}
