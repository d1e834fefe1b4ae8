package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestEarnedAmount_RateSelection(t *testing.T) {
	base := Booking{
		Quantity:      2,
		Days:          3,
		HourlyRate:    ptr(50),
		DailyRate:     ptr(400),
		RegionalRate:  ptr(600),
		OvernightRate: ptr(900),
	}

	cases := []struct {
		rateType string
		want     float64
	}{
		{RateTypeHourly, 300},
		{RateTypeDaily, 2400},
		{RateTypeRegional, 3600},
		{RateTypeOvernight, 5400},
	}

	for _, tc := range cases {
		b := base
		b.RateType = tc.rateType
		assert.Equal(t, tc.want, b.EarnedAmount(), "rate type %s", tc.rateType)
	}
}

func TestEarnedAmount_FlatAmountWins(t *testing.T) {
	b := Booking{
		Quantity:    1,
		Days:        2,
		RateType:    RateTypeDaily,
		DailyRate:   ptr(400),
		TotalAmount: ptr(1000),
	}
	assert.Equal(t, 1000.0, b.EarnedAmount())
}

func TestEarnedAmount_MissingFieldsYieldZero(t *testing.T) {
	assert.Zero(t, (&Booking{}).EarnedAmount())
	assert.Zero(t, (&Booking{RateType: RateTypeDaily, Quantity: 1, Days: 2}).EarnedAmount())
	assert.Zero(t, (&Booking{RateType: "unknown", DailyRate: ptr(400), Quantity: 1, Days: 2}).EarnedAmount())
	assert.Zero(t, (&Booking{RateType: RateTypeDaily, DailyRate: ptr(400), Days: 2}).EarnedAmount())
}
