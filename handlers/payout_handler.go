package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mhr996/school-dash-sub003/database"
	"github.com/mhr996/school-dash-sub003/models"
	"github.com/mhr996/school-dash-sub003/notifications"
	"github.com/mhr996/school-dash-sub003/services"
	"github.com/mhr996/school-dash-sub003/websocket"
)

func balanceService() *services.BalanceService {
	return services.NewBalanceService(
		database.NewBookingRepository(nil),
		database.NewPayoutRepository(nil),
		database.NewProviderRepository(nil),
	)
}

type CreatePayoutRequest struct {
	ProviderKind string  `json:"provider_kind" validate:"required,oneof=guide paramedic security_company travel_company entertainment_company education_program"`
	ProviderID   string  `json:"provider_id" validate:"required,uuid"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Method       string  `json:"method" validate:"required,oneof=cash bank_transfer credit_card check"`
	PaymentDate  string  `json:"payment_date" validate:"required,datetime=2006-01-02"`

	ReferenceNumber *string `json:"reference_number,omitempty"`
	Notes           *string `json:"notes,omitempty"`

	BankName      *string `json:"bank_name,omitempty"`
	AccountHolder *string `json:"account_holder,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	CheckNumber   *string `json:"check_number,omitempty"`
}

func validatePayoutDetails(req CreatePayoutRequest) error {
	switch req.Method {
	case "bank_transfer":
		if req.BankName == nil || *req.BankName == "" {
			return errors.New("bank_name is required for bank transfers")
		}
		if req.AccountHolder == nil || *req.AccountHolder == "" {
			return errors.New("account_holder is required for bank transfers")
		}
	case "check":
		if req.CheckNumber == nil || *req.CheckNumber == "" {
			return errors.New("check_number is required for check payouts")
		}
	}
	return nil
}

// CreatePayout records a disbursement to a provider. The row is append-only;
// receipt generation, the confirmation email and the dashboard event all run
// in the background.
func CreatePayout(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	adminID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreatePayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validatePayoutDetails(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	providerID, _ := uuid.Parse(req.ProviderID)

	var provider models.ServiceProvider
	if err := database.DB.First(&provider, "id = ? AND kind = ?", providerID, req.ProviderKind).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	paymentDate, _ := time.Parse("2006-01-02", req.PaymentDate)

	payout := models.Payout{
		ProviderKind:    provider.Kind,
		ProviderID:      provider.ID,
		Amount:          req.Amount,
		Method:          req.Method,
		PaymentDate:     paymentDate,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		BankName:        req.BankName,
		AccountHolder:   req.AccountHolder,
		AccountNumber:   req.AccountNumber,
		CheckNumber:     req.CheckNumber,
		CreatedByID:     adminID,
	}

	if err := database.DB.Create(&payout).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record payout"})
	}

	go services.GeneratePayoutReceipt(payout, provider)
	go websocket.Publish(websocket.EventPayoutCreated, payout)

	if provider.Email != nil {
		go notifications.SendEmail(
			provider.Name,
			*provider.Email,
			"Payment Confirmation",
			fmt.Sprintf("<h1>Payment Sent</h1><p>Hello %s,</p><p>A payment of %.2f has been issued to you via %s.</p>", provider.Name, payout.Amount, payout.Method),
		)
	}

	return c.Status(fiber.StatusCreated).JSON(payout)
}

func ListPayouts(c *fiber.Ctx) error {
	query := database.DB.Preload("CreatedBy").Order("payment_date desc")

	if kind := c.Query("provider_kind"); kind != "" {
		query = query.Where("provider_kind = ?", kind)
	}
	if providerID := c.Query("provider_id"); providerID != "" {
		query = query.Where("provider_id = ?", providerID)
	}
	if method := c.Query("method"); method != "" {
		query = query.Where("method = ?", method)
	}

	var payouts []models.Payout
	if err := query.Find(&payouts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve payouts"})
	}

	return c.JSON(payouts)
}

func GetPayout(c *fiber.Ctx) error {
	payoutID := c.Params("payoutId")

	var payout models.Payout
	if err := database.DB.Preload("CreatedBy").First(&payout, "id = ?", payoutID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payout not found"})
	}

	var receipt models.PayoutReceipt
	receiptURL := ""
	if err := database.DB.Where("payout_id = ?", payout.ID).First(&receipt).Error; err == nil {
		receiptURL = receipt.ReceiptURL
	}

	return c.JSON(fiber.Map{
		"payout":      payout,
		"receipt_url": receiptURL,
	})
}

// GetProviderBalance composes the earnings and payout aggregates with the
// balance reducer for one provider. An optional currency query parameter adds
// a converted net figure alongside the ILS amounts.
func GetProviderBalance(c *fiber.Ctx) error {
	kind := models.ProviderKind(c.Params("kind"))
	if !isKnownProviderKind(kind) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown provider kind"})
	}
	providerID, err := uuid.Parse(c.Params("providerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid provider id"})
	}

	var provider models.ServiceProvider
	if err := database.DB.First(&provider, "id = ? AND kind = ?", providerID, kind).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	svc := balanceService()
	earnings, err := svc.ProviderEarnings(c.Context(), kind, providerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute earnings"})
	}
	payouts, err := svc.ProviderPayouts(c.Context(), kind, providerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute payouts"})
	}

	balance := services.ComputeBalance(earnings.TotalEarned, payouts.TotalPaidOut, earnings.BookingCount, payouts.PayoutCount)
	balance.ProviderID = provider.ID
	balance.ProviderName = provider.Name
	balance.ProviderKind = provider.Kind

	response := fiber.Map{
		"balance":  balance,
		"bookings": earnings.Bookings,
		"payouts":  payouts.Payouts,
	}

	if currency := c.Query("currency"); currency != "" {
		converted, err := services.ConvertFromILS(balance.NetBalance, currency)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not perform currency conversion."})
		}
		response["converted_net_balance"] = converted
		response["converted_currency"] = currency
	}

	return c.JSON(response)
}
