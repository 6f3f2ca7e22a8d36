package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samudra-tours/samudra-tours-api/models"
	"github.com/samudra-tours/samudra-tours-api/utils"
)

// ComposeContactMessage builds the wa.me link an operator opens to greet a
// newly received booking and communicate the tariff. Sending is manual; this
// service only composes.
func ComposeContactMessage(order *models.Order, settings *models.AppSettings) string {
	brand := settings.BrandName
	if brand == "" {
		brand = models.DefaultAppSettings().BrandName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Halo %s, terima kasih sudah memesan paket %s untuk %d orang melalui %s.\n",
		order.CustomerName, order.DestinationTitle, order.Participants, brand)
	fmt.Fprintf(&b, "Total biaya perjalanan Anda adalah %s.", utils.FormatRupiah(order.TotalPrice))
	if order.DepartureDate != nil {
		fmt.Fprintf(&b, "\nTanggal keberangkatan: %s.", *order.DepartureDate)
	}
	if settings.BankName != "" && settings.BankAccountNumber != "" {
		fmt.Fprintf(&b, "\nPembayaran dapat ditransfer ke %s %s a.n. %s.",
			settings.BankName, settings.BankAccountNumber, settings.BankAccountHolder)
	}

	return WhatsAppLink(order.CustomerPhone, b.String())
}

// ComposePaymentReminder builds the wa.me link for chasing the remaining balance.
func ComposePaymentReminder(order *models.Order, settings *models.AppSettings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Halo %s, kami ingin mengingatkan sisa pembayaran paket %s sebesar %s.",
		order.CustomerName, order.DestinationTitle, utils.FormatRupiah(order.RemainingBalance()))
	if settings.BankName != "" && settings.BankAccountNumber != "" {
		fmt.Fprintf(&b, "\nTransfer ke %s %s a.n. %s.",
			settings.BankName, settings.BankAccountNumber, settings.BankAccountHolder)
	}
	return WhatsAppLink(order.CustomerPhone, b.String())
}

// WhatsAppLink normalizes an Indonesian phone number and wraps the text into
// a wa.me deep link.
func WhatsAppLink(phone, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(phone), url.QueryEscape(text))
}

// NormalizePhone strips formatting characters and rewrites the local 0 prefix
// to the 62 country code wa.me expects.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	normalized := digits.String()
	if strings.HasPrefix(normalized, "0") {
		normalized = "62" + normalized[1:]
	}
	return normalized
}
