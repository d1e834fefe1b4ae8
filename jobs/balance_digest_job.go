package jobs

import (
	"context"
	"fmt"
	"log"
	"strings"

	config "github.com/mhr996/school-dash-sub003/configs"
	"github.com/mhr996/school-dash-sub003/database"
	"github.com/mhr996/school-dash-sub003/models"
	"github.com/mhr996/school-dash-sub003/notifications"
	"github.com/mhr996/school-dash-sub003/services"
)

// SendOutstandingBalanceDigest emails the administrator a summary of every
// provider who is currently owed money, across all provider kinds.
func SendOutstandingBalanceDigest() {
	log.Println("Running job: SendOutstandingBalanceDigest...")

	adminEmail := config.Config("ADMIN_EMAIL")
	if adminEmail == "" {
		log.Println("Admin email not configured, skipping balance digest.")
		return
	}

	svc := services.NewBalanceService(
		database.NewBookingRepository(nil),
		database.NewPayoutRepository(nil),
		database.NewProviderRepository(nil),
	)

	var rows []string
	for _, kind := range models.AllProviderKinds() {
		balances, err := svc.DirectoryWithBalances(context.Background(), kind)
		if err != nil {
			log.Printf("Error computing balances for kind %s: %v", kind, err)
			continue
		}
		for _, balance := range balances {
			if balance.NetBalance <= 0 {
				continue
			}
			rows = append(rows, fmt.Sprintf(
				"<tr><td>%s</td><td>%s</td><td>%.2f</td></tr>",
				balance.ProviderName, balance.ProviderKind, balance.NetBalance,
			))
		}
	}

	if len(rows) == 0 {
		log.Println("No outstanding provider balances.")
		return
	}

	emailBody := fmt.Sprintf(
		"<h1>Outstanding Provider Balances</h1><table border='1'><tr><th>Provider</th><th>Kind</th><th>Owed</th></tr>%s</table>",
		strings.Join(rows, ""),
	)

	go notifications.SendEmail(
		config.Config("ADMIN_FULL_NAME"),
		adminEmail,
		"Weekly Outstanding Balance Digest",
		emailBody,
	)

	log.Printf("Balance digest queued with %d provider(s).", len(rows))
}
