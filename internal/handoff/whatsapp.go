// Package handoff serializes orders into the plain-text summary sent to
// the store's WhatsApp number. There is no checkout API: the hand-off link
// is the order channel.
package handoff

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/cart"
)

// Order carries everything that goes into one order message.
type Order struct {
	CustomerName string
	Phone        string
	Address      string
	Notes        string
	Lines        []cart.Line
	TotalCents   int64
}

// StoreApplication is a merchant's "add my store" request.
type StoreApplication struct {
	StoreName   string `json:"storeName"`
	Category    string `json:"category"`
	OwnerName   string `json:"ownerName"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// OrderMessage renders the human-readable order text in the storefront's
// bundled locale.
func OrderMessage(o Order) string {
	var b strings.Builder
	b.WriteString("*طلب جديد من تطبيق ELFAHD*\n\n")
	b.WriteString("*معلومات العميل:*\n")
	fmt.Fprintf(&b, "الاسم: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "رقم الهاتف: %s\n", o.Phone)
	fmt.Fprintf(&b, "العنوان: %s\n\n", o.Address)

	if o.Notes != "" {
		fmt.Fprintf(&b, "*ملاحظات:* %s\n\n", o.Notes)
	}

	b.WriteString("*الطلبات:*\n")
	for i, line := range o.Lines {
		subtotal := line.PriceCents * int64(line.Quantity)
		fmt.Fprintf(&b, "%d. %s - %d× - %s ج.م\n", i+1, line.Name, line.Quantity, FormatCents(subtotal))
	}

	fmt.Fprintf(&b, "\n*إجمالي الطلب:* %s ج.م", FormatCents(o.TotalCents))
	return b.String()
}

// StoreApplicationMessage renders a merchant application.
func StoreApplicationMessage(a StoreApplication) string {
	var b strings.Builder
	b.WriteString("*طلب إضافة متجر جديد*\n\n")
	fmt.Fprintf(&b, "اسم المتجر: %s\n", a.StoreName)
	fmt.Fprintf(&b, "نوع المتجر: %s\n", a.Category)
	fmt.Fprintf(&b, "اسم المالك: %s\n", a.OwnerName)
	fmt.Fprintf(&b, "رقم الهاتف: %s\n", a.Phone)
	fmt.Fprintf(&b, "العنوان: %s\n", a.Address)
	fmt.Fprintf(&b, "نبذة عن المتجر: %s", a.Description)
	return b.String()
}

// Link builds the wa.me URL that opens a chat with the given number,
// pre-filled with message.
func Link(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

// FormatCents renders an amount in cents as a plain decimal, dropping the
// fraction for whole amounts to match the storefront price labels.
func FormatCents(cents int64) string {
	if cents%100 == 0 {
		return fmt.Sprintf("%d", cents/100)
	}
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
