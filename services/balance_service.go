package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/mhr996/school-dash-sub003/models"
)

// The balance service computes provider balances as a pure projection over the
// booking and payout ledgers. Nothing here is persisted: a balance is always
// recomputed from source rows, so it cannot drift from the ledger.

type BookingRepository interface {
	ListByProvider(ctx context.Context, kind models.ProviderKind, providerID uuid.UUID) ([]models.Booking, error)
}

type PayoutRepository interface {
	ListByProvider(ctx context.Context, kind models.ProviderKind, providerID uuid.UUID) ([]models.Payout, error)
}

type ProviderRepository interface {
	ListByKind(ctx context.Context, kind models.ProviderKind) ([]models.ServiceProvider, error)
}

type EarningsSummary struct {
	Bookings     []models.Booking `json:"bookings"`
	TotalEarned  float64          `json:"total_earned"`
	BookingCount int              `json:"booking_count"`
}

type PayoutSummary struct {
	Payouts      []models.Payout `json:"payouts"`
	TotalPaidOut float64         `json:"total_paid_out"`
	PayoutCount  int             `json:"payout_count"`
}

type ProviderBalance struct {
	ProviderID   uuid.UUID           `json:"provider_id"`
	ProviderName string              `json:"provider_name"`
	ProviderKind models.ProviderKind `json:"provider_kind"`
	TotalEarned  float64             `json:"total_earned"`
	BookingCount int                 `json:"booking_count"`
	TotalPaidOut float64             `json:"total_paid_out"`
	PayoutCount  int                 `json:"payout_count"`
	NetBalance   float64             `json:"net_balance"`
}

type BalanceService struct {
	bookings  BookingRepository
	payouts   PayoutRepository
	providers ProviderRepository
}

func NewBalanceService(bookings BookingRepository, payouts PayoutRepository, providers ProviderRepository) *BalanceService {
	return &BalanceService{
		bookings:  bookings,
		payouts:   payouts,
		providers: providers,
	}
}

// ProviderEarnings sums what a provider has earned across every booking
// attributed to them, regardless of status. On a fetch failure it logs and
// returns the zero summary alongside the error so callers can choose between
// surfacing it and degrading to an empty result.
func (s *BalanceService) ProviderEarnings(ctx context.Context, kind models.ProviderKind, providerID uuid.UUID) (EarningsSummary, error) {
	bookings, err := s.bookings.ListByProvider(ctx, kind, providerID)
	if err != nil {
		log.Printf("🔥 Failed to fetch bookings for %s %s: %v", kind, providerID, err)
		return EarningsSummary{}, err
	}

	summary := EarningsSummary{
		Bookings:     bookings,
		BookingCount: len(bookings),
	}
	for i := range bookings {
		summary.TotalEarned += bookings[i].EarnedAmount()
	}
	return summary, nil
}

// ProviderPayouts sums every recorded disbursement to a provider, newest
// first for display.
func (s *BalanceService) ProviderPayouts(ctx context.Context, kind models.ProviderKind, providerID uuid.UUID) (PayoutSummary, error) {
	payouts, err := s.payouts.ListByProvider(ctx, kind, providerID)
	if err != nil {
		log.Printf("🔥 Failed to fetch payouts for %s %s: %v", kind, providerID, err)
		return PayoutSummary{}, err
	}

	summary := PayoutSummary{
		Payouts:     payouts,
		PayoutCount: len(payouts),
	}
	for _, p := range payouts {
		summary.TotalPaidOut += p.Amount
	}
	return summary, nil
}

// ComputeBalance derives the net position from the two running totals. The
// result is signed and never clamped: positive means the provider is owed
// money, negative means they have been overpaid.
func ComputeBalance(totalEarned, totalPaidOut float64, bookingCount, payoutCount int) ProviderBalance {
	return ProviderBalance{
		TotalEarned:  totalEarned,
		BookingCount: bookingCount,
		TotalPaidOut: totalPaidOut,
		PayoutCount:  payoutCount,
		NetBalance:   totalEarned - totalPaidOut,
	}
}

// ProviderBalanceFor combines earnings, payouts and the reducer for a single
// provider.
func (s *BalanceService) ProviderBalanceFor(ctx context.Context, provider models.ServiceProvider) (ProviderBalance, error) {
	earnings, err := s.ProviderEarnings(ctx, provider.Kind, provider.ID)
	if err != nil {
		return ProviderBalance{}, err
	}
	payouts, err := s.ProviderPayouts(ctx, provider.Kind, provider.ID)
	if err != nil {
		return ProviderBalance{}, err
	}

	balance := ComputeBalance(earnings.TotalEarned, payouts.TotalPaidOut, earnings.BookingCount, payouts.PayoutCount)
	balance.ProviderID = provider.ID
	balance.ProviderName = provider.Name
	balance.ProviderKind = provider.Kind
	return balance, nil
}

// DirectoryWithBalances lists every provider of a kind with its computed
// balance attached, so an operator can browse outstanding balances before
// issuing a payout. A failure fetching one provider's ledger does not abort
// the scan: that provider is returned with a zero balance and the rest are
// computed normally. The list is returned in whatever order the repository
// produced; ordering is left to the caller.
func (s *BalanceService) DirectoryWithBalances(ctx context.Context, kind models.ProviderKind) ([]ProviderBalance, error) {
	providers, err := s.providers.ListByKind(ctx, kind)
	if err != nil {
		log.Printf("🔥 Failed to list providers of kind %s: %v", kind, err)
		return nil, err
	}

	balances := make([]ProviderBalance, 0, len(providers))
	for _, provider := range providers {
		balance, err := s.ProviderBalanceFor(ctx, provider)
		if err != nil {
			log.Printf("Skipping balance for provider %s (%s): %v", provider.Name, provider.ID, err)
			balance = ProviderBalance{
				ProviderID:   provider.ID,
				ProviderName: provider.Name,
				ProviderKind: provider.Kind,
			}
		}
		balances = append(balances, balance)
	}
	return balances, nil
}
