package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mhr996/school-dash-sub003/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type providerKey struct {
	kind models.ProviderKind
	id   uuid.UUID
}

type fakeBookingRepo struct {
	bookings map[providerKey][]models.Booking
	failFor  map[providerKey]error
}

func (f *fakeBookingRepo) ListByProvider(_ context.Context, kind models.ProviderKind, providerID uuid.UUID) ([]models.Booking, error) {
	key := providerKey{kind, providerID}
	if err, ok := f.failFor[key]; ok {
		return nil, err
	}
	return f.bookings[key], nil
}

type fakePayoutRepo struct {
	payouts map[providerKey][]models.Payout
	failFor map[providerKey]error
}

func (f *fakePayoutRepo) ListByProvider(_ context.Context, kind models.ProviderKind, providerID uuid.UUID) ([]models.Payout, error) {
	key := providerKey{kind, providerID}
	if err, ok := f.failFor[key]; ok {
		return nil, err
	}
	return f.payouts[key], nil
}

type fakeProviderRepo struct {
	providers map[models.ProviderKind][]models.ServiceProvider
	err       error
}

func (f *fakeProviderRepo) ListByKind(_ context.Context, kind models.ProviderKind) ([]models.ServiceProvider, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.providers[kind], nil
}

func newTestService() (*BalanceService, *fakeBookingRepo, *fakePayoutRepo, *fakeProviderRepo) {
	bookings := &fakeBookingRepo{
		bookings: make(map[providerKey][]models.Booking),
		failFor:  make(map[providerKey]error),
	}
	payouts := &fakePayoutRepo{
		payouts: make(map[providerKey][]models.Payout),
		failFor: make(map[providerKey]error),
	}
	providers := &fakeProviderRepo{
		providers: make(map[models.ProviderKind][]models.ServiceProvider),
	}
	return NewBalanceService(bookings, payouts, providers), bookings, payouts, providers
}

func float64Ptr(v float64) *float64 { return &v }

func dailyBooking(rate float64, quantity, days int) models.Booking {
	return models.Booking{
		ID:        uuid.New(),
		RateType:  models.RateTypeDaily,
		DailyRate: float64Ptr(rate),
		Quantity:  quantity,
		Days:      days,
	}
}

func TestProviderEarnings_DailyRate(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	guideID := uuid.New()
	key := providerKey{models.ProviderKindGuide, guideID}

	bookings.bookings[key] = []models.Booking{dailyBooking(400, 1, 2)}

	summary, err := svc.ProviderEarnings(context.Background(), models.ProviderKindGuide, guideID)
	require.NoError(t, err)
	assert.Equal(t, 800.0, summary.TotalEarned)
	assert.Equal(t, 1, summary.BookingCount)
}

func TestProviderEarnings_FlatAmountOverridesRates(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	guideID := uuid.New()
	key := providerKey{models.ProviderKindGuide, guideID}

	booking := dailyBooking(400, 1, 2)
	booking.TotalAmount = float64Ptr(950)
	bookings.bookings[key] = []models.Booking{booking}

	summary, err := svc.ProviderEarnings(context.Background(), models.ProviderKindGuide, guideID)
	require.NoError(t, err)
	assert.Equal(t, 950.0, summary.TotalEarned)
}

func TestProviderEarnings_MissingRateContributesZero(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	guideID := uuid.New()
	key := providerKey{models.ProviderKindGuide, guideID}

	bookings.bookings[key] = []models.Booking{
		{ID: uuid.New(), RateType: models.RateTypeHourly, Quantity: 3, Days: 1},
		dailyBooking(400, 1, 2),
	}

	summary, err := svc.ProviderEarnings(context.Background(), models.ProviderKindGuide, guideID)
	require.NoError(t, err)
	assert.Equal(t, 800.0, summary.TotalEarned)
	assert.Equal(t, 2, summary.BookingCount)
}

func TestProviderEarnings_FetchFailureReturnsZeroSummary(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	guideID := uuid.New()
	bookings.failFor[providerKey{models.ProviderKindGuide, guideID}] = errors.New("connection refused")

	summary, err := svc.ProviderEarnings(context.Background(), models.ProviderKindGuide, guideID)
	require.Error(t, err)
	assert.Zero(t, summary.TotalEarned)
	assert.Zero(t, summary.BookingCount)
	assert.Empty(t, summary.Bookings)
}

func TestComputeBalance(t *testing.T) {
	balance := ComputeBalance(1400, 500, 2, 1)
	assert.Equal(t, 900.0, balance.NetBalance)
	assert.Equal(t, 1400.0, balance.TotalEarned)
	assert.Equal(t, 500.0, balance.TotalPaidOut)
	assert.Equal(t, 2, balance.BookingCount)
	assert.Equal(t, 1, balance.PayoutCount)
}

func TestComputeBalance_NegativeNotClamped(t *testing.T) {
	balance := ComputeBalance(0, 300, 0, 1)
	assert.Equal(t, -300.0, balance.NetBalance)
}

func TestProviderBalanceFor_EmptyLedgers(t *testing.T) {
	svc, _, _, _ := newTestService()
	provider := models.ServiceProvider{
		ID:   uuid.New(),
		Kind: models.ProviderKindParamedic,
		Name: "North District Medics",
	}

	balance, err := svc.ProviderBalanceFor(context.Background(), provider)
	require.NoError(t, err)
	assert.Zero(t, balance.TotalEarned)
	assert.Zero(t, balance.TotalPaidOut)
	assert.Zero(t, balance.NetBalance)
	assert.Zero(t, balance.BookingCount)
	assert.Zero(t, balance.PayoutCount)
	assert.Equal(t, provider.ID, balance.ProviderID)
	assert.Equal(t, "North District Medics", balance.ProviderName)
}

func TestProviderBalanceFor_EarningsMinusPayouts(t *testing.T) {
	svc, bookings, payouts, _ := newTestService()
	guideID := uuid.New()
	key := providerKey{models.ProviderKindGuide, guideID}

	bookings.bookings[key] = []models.Booking{
		dailyBooking(400, 1, 2),
		{ID: uuid.New(), TotalAmount: float64Ptr(600)},
	}
	payouts.payouts[key] = []models.Payout{
		{ID: uuid.New(), Amount: 500},
	}

	provider := models.ServiceProvider{ID: guideID, Kind: models.ProviderKindGuide, Name: "Avi Cohen"}
	balance, err := svc.ProviderBalanceFor(context.Background(), provider)
	require.NoError(t, err)
	assert.Equal(t, 1400.0, balance.TotalEarned)
	assert.Equal(t, 500.0, balance.TotalPaidOut)
	assert.Equal(t, 900.0, balance.NetBalance)
}

func TestProviderBalanceFor_PayoutWithNoBookings(t *testing.T) {
	svc, _, payouts, _ := newTestService()
	companyID := uuid.New()
	key := providerKey{models.ProviderKindTravelCompany, companyID}
	payouts.payouts[key] = []models.Payout{{ID: uuid.New(), Amount: 300}}

	provider := models.ServiceProvider{ID: companyID, Kind: models.ProviderKindTravelCompany, Name: "Galil Tours"}
	balance, err := svc.ProviderBalanceFor(context.Background(), provider)
	require.NoError(t, err)
	assert.Zero(t, balance.TotalEarned)
	assert.Equal(t, 300.0, balance.TotalPaidOut)
	assert.Equal(t, -300.0, balance.NetBalance)
}

func TestProviderBalanceFor_Idempotent(t *testing.T) {
	svc, bookings, payouts, _ := newTestService()
	guideID := uuid.New()
	key := providerKey{models.ProviderKindGuide, guideID}
	bookings.bookings[key] = []models.Booking{dailyBooking(250, 2, 3)}
	payouts.payouts[key] = []models.Payout{{ID: uuid.New(), Amount: 1000}}

	provider := models.ServiceProvider{ID: guideID, Kind: models.ProviderKindGuide, Name: "Avi Cohen"}

	first, err := svc.ProviderBalanceFor(context.Background(), provider)
	require.NoError(t, err)
	second, err := svc.ProviderBalanceFor(context.Background(), provider)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDirectoryWithBalances_PartialFailure(t *testing.T) {
	svc, bookings, payouts, providers := newTestService()

	p1 := models.ServiceProvider{ID: uuid.New(), Kind: models.ProviderKindGuide, Name: "Guide One"}
	p2 := models.ServiceProvider{ID: uuid.New(), Kind: models.ProviderKindGuide, Name: "Guide Two"}
	p3 := models.ServiceProvider{ID: uuid.New(), Kind: models.ProviderKindGuide, Name: "Guide Three"}
	providers.providers[models.ProviderKindGuide] = []models.ServiceProvider{p1, p2, p3}

	bookings.bookings[providerKey{models.ProviderKindGuide, p1.ID}] = []models.Booking{dailyBooking(400, 1, 2)}
	bookings.failFor[providerKey{models.ProviderKindGuide, p2.ID}] = errors.New("timeout")
	bookings.bookings[providerKey{models.ProviderKindGuide, p3.ID}] = []models.Booking{{ID: uuid.New(), TotalAmount: float64Ptr(600)}}
	payouts.payouts[providerKey{models.ProviderKindGuide, p3.ID}] = []models.Payout{{ID: uuid.New(), Amount: 100}}

	balances, err := svc.DirectoryWithBalances(context.Background(), models.ProviderKindGuide)
	require.NoError(t, err)
	require.Len(t, balances, 3)

	assert.Equal(t, 800.0, balances[0].NetBalance)

	assert.Equal(t, p2.ID, balances[1].ProviderID)
	assert.Equal(t, "Guide Two", balances[1].ProviderName)
	assert.Zero(t, balances[1].NetBalance)
	assert.Zero(t, balances[1].BookingCount)

	assert.Equal(t, 500.0, balances[2].NetBalance)
}

func TestDirectoryWithBalances_ListFailure(t *testing.T) {
	svc, _, _, providers := newTestService()
	providers.err = errors.New("connection refused")

	balances, err := svc.DirectoryWithBalances(context.Background(), models.ProviderKindGuide)
	require.Error(t, err)
	assert.Nil(t, balances)
}

func TestDirectoryWithBalances_EmptyDirectory(t *testing.T) {
	svc, _, _, _ := newTestService()

	balances, err := svc.DirectoryWithBalances(context.Background(), models.ProviderKindSecurityCompany)
	require.NoError(t, err)
	assert.Empty(t, balances)
}
