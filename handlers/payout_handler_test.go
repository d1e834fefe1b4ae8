package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestValidatePayoutDetails(t *testing.T) {
	base := CreatePayoutRequest{
		ProviderKind: "guide",
		Amount:       500,
		PaymentDate:  "2026-01-15",
	}

	cash := base
	cash.Method = "cash"
	assert.NoError(t, validatePayoutDetails(cash))

	card := base
	card.Method = "credit_card"
	assert.NoError(t, validatePayoutDetails(card))

	bank := base
	bank.Method = "bank_transfer"
	assert.Error(t, validatePayoutDetails(bank))
	bank.BankName = strPtr("Leumi")
	assert.Error(t, validatePayoutDetails(bank))
	bank.AccountHolder = strPtr("Avi Cohen")
	assert.NoError(t, validatePayoutDetails(bank))

	check := base
	check.Method = "check"
	assert.Error(t, validatePayoutDetails(check))
	check.CheckNumber = strPtr("000412")
	assert.NoError(t, validatePayoutDetails(check))

	emptyCheck := base
	emptyCheck.Method = "check"
	emptyCheck.CheckNumber = strPtr("")
	assert.Error(t, validatePayoutDetails(emptyCheck))
}
