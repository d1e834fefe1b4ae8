package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/mhr996/school-dash-sub003/configs"
	"github.com/mhr996/school-dash-sub003/database"
	"github.com/mhr996/school-dash-sub003/models"
)

// GeneratePayoutReceipt renders a receipt for a recorded payout, prints it to
// PDF and stores the uploaded URL. It runs in the background after a payout
// is created; every failure is logged and abandons the receipt without
// touching the payout itself.
func GeneratePayoutReceipt(payout models.Payout, provider models.ServiceProvider) {
	var existing models.PayoutReceipt
	if err := database.DB.Where("payout_id = ?", payout.ID).First(&existing).Error; err == nil {
		return
	}

	htmlData, err := generateReceiptHTML(payout, provider)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, payout.ID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload receipt to Cloudinary: %v", err)
		return
	}

	receipt := models.PayoutReceipt{
		PayoutID:    payout.ID,
		ReceiptURL:  uploadURL,
		GeneratedAt: time.Now(),
	}

	if err := database.DB.Create(&receipt).Error; err != nil {
		log.Printf("🔥 Failed to create receipt record for payout %s: %v", payout.ID, err)
	} else {
		log.Printf("✅ Generated and uploaded receipt for payout %s to %s.", payout.ID, provider.Name)
	}
}

func generateReceiptHTML(payout models.Payout, provider models.ServiceProvider) (string, error) {
	tmpl, err := template.ParseFiles("templates/receipt.html")
	if err != nil {
		return "", err
	}

	reference := ""
	if payout.ReferenceNumber != nil {
		reference = *payout.ReferenceNumber
	}

	data := struct {
		ProviderName string
		ProviderKind string
		Amount       string
		Method       string
		Reference    string
		PaymentDate  string
		IssuedDate   string
	}{
		ProviderName: provider.Name,
		ProviderKind: string(provider.Kind),
		Amount:       fmt.Sprintf("%.2f", payout.Amount),
		Method:       payout.Method,
		Reference:    reference,
		PaymentDate:  payout.PaymentDate.Format("January 2, 2006"),
		IssuedDate:   time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, payoutID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", payoutID, uuid.New().String()),
		Folder:       "school_dash_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
