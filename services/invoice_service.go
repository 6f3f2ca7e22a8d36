package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/samudra-tours/samudra-tours-api/models"
	"github.com/samudra-tours/samudra-tours-api/utils"
)

// BuildInvoicePDF renders a printable A4 invoice for a shared order link.
func BuildInvoicePDF(invoice *models.Invoice, order *models.Order, settings *models.AppSettings) ([]byte, error) {
	brand := settings.BrandName
	if brand == "" {
		brand = models.DefaultAppSettings().BrandName
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice #%d", invoice.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, brand)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	if settings.Address != "" {
		pdf.Cell(0, 5, settings.Address)
		pdf.Ln(5)
	}
	if settings.Email != "" {
		pdf.Cell(0, 5, settings.Email)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("INVOICE #%d", invoice.ID))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Issued: %s", invoice.CreatedAt.Format("2 January 2006")))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Order: #%d (%s)", order.ID, order.OrderDate.Format("2 January 2006")))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Billed to")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, order.CustomerName)
	pdf.Ln(5)
	pdf.Cell(0, 5, order.CustomerPhone)
	pdf.Ln(8)

	// Line item: one trip, priced per person.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 7, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Participants", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 7, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	description := order.DestinationTitle
	if order.DepartureDate != nil {
		description = fmt.Sprintf("%s (departure %s)", description, *order.DepartureDate)
	}
	pdf.CellFormat(90, 7, description, "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("%d", order.Participants), "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 7, utils.FormatRupiah(invoice.Total), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(120, 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, utils.FormatRupiah(invoice.Total), "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	if len(order.PaymentHistory) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, "Payments received")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		for _, p := range order.PaymentHistory {
			line := fmt.Sprintf("%s  %s", p.Date.Format("2 Jan 2006"), utils.FormatRupiah(p.Amount))
			if p.Notes != "" {
				line += "  " + p.Notes
			}
			pdf.Cell(0, 5, line)
			pdf.Ln(5)
		}
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Remaining balance: %s", utils.FormatRupiah(order.RemainingBalance())))
		pdf.Ln(8)
	}

	if settings.BankName != "" && settings.BankAccountNumber != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 5, fmt.Sprintf("Please transfer to %s %s (%s)",
			settings.BankName, settings.BankAccountNumber, settings.BankAccountHolder))
		pdf.Ln(5)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated %s", time.Now().Format("2 January 2006")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
