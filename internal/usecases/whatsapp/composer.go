// Package whatsapp builds the outbound deep-link handed to the user's
// WhatsApp client after a booking intent is captured.
package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/safarind/umrah-marketplace-api/internal/domain"
	"github.com/safarind/umrah-marketplace-api/pkg/log"
	"github.com/safarind/umrah-marketplace-api/pkg/phone"
)

const defaultSendBaseURL = "https://api.whatsapp.com/send"

// Link is the composed outbound deep-link. RecipientPhone is empty when no
// destination phone could be resolved; the URL then carries text only and
// the user picks a recipient in their WhatsApp client.
type Link struct {
	URL            string `json:"url"`
	RecipientPhone string `json:"recipient_phone,omitempty"`
}

// Composer renders the booking handoff message and deep-link.
type Composer struct {
	sendBaseURL string
	siteURL     string
}

func NewComposer(sendBaseURL, siteURL string) *Composer {
	if sendBaseURL == "" {
		sendBaseURL = defaultSendBaseURL
	}
	return &Composer{
		sendBaseURL: sendBaseURL,
		siteURL:     strings.TrimRight(siteURL, "/"),
	}
}

// Compose builds the outbound link for a captured intent. The destination
// is the travel's phone or the configured admin phone depending on the
// routing settings; an unresolvable or invalid destination degrades to a
// text-only link, never to an error.
func (c *Composer) Compose(
	pkg *domain.Package,
	option *domain.PriceOption,
	intent domain.BookingIntent,
	routing domain.RoutingSettings,
) Link {
	recipient := c.resolveRecipient(pkg, routing)
	text := c.messageText(pkg, option, intent)

	query := url.Values{}
	if recipient != "" {
		query.Set("phone", recipient)
	}
	query.Set("text", text)

	return Link{
		URL:            c.sendBaseURL + "?" + query.Encode(),
		RecipientPhone: recipient,
	}
}

func (c *Composer) resolveRecipient(pkg *domain.Package, routing domain.RoutingSettings) string {
	var raw string
	switch routing.Mode {
	case domain.RouteToAdmin:
		raw = routing.AdminPhone
	default:
		raw = pkg.Travel.Phone
	}

	if raw == "" {
		return ""
	}

	normalized, err := phone.Normalize(raw)
	if err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"routing_mode": string(routing.Mode),
			"package_id":   pkg.ID,
		}).Warn("destination phone not normalizable, degrading to text-only link")
		return ""
	}

	return normalized
}

func (c *Composer) messageText(pkg *domain.Package, option *domain.PriceOption, intent domain.BookingIntent) string {
	var b strings.Builder

	b.WriteString("Assalamu'alaikum, saya ingin memesan paket umrah berikut:\n\n")
	fmt.Fprintf(&b, "*%s*\n", pkg.Name)

	travelLine := pkg.Travel.Name
	if pkg.Travel.IsVerified {
		travelLine += " ✓"
	}
	fmt.Fprintf(&b, "Travel: %s\n", travelLine)

	fmt.Fprintf(&b, "Durasi: %d hari\n", pkg.DurationDays)
	fmt.Fprintf(&b, "Keberangkatan: %s, %s\n", pkg.DepartureCity, pkg.DepartureDate.Format("02-01-2006"))

	if option != nil {
		fmt.Fprintf(&b, "Pilihan paket: %s - Rp %s\n", option.Name, formatRupiah(option.Price))
		if option.Cashback > 0 {
			fmt.Fprintf(&b, "Cashback: Rp %s\n", formatRupiah(option.Cashback))
		}
	}

	fmt.Fprintf(&b, "Jumlah jamaah: %d pax\n", intent.Pax)
	fmt.Fprintf(&b, "\nNama: %s\n", intent.Name)
	fmt.Fprintf(&b, "\n%s/packages/%s", c.siteURL, pkg.Slug)

	return b.String()
}

// formatRupiah renders an amount with Indonesian thousands separators,
// e.g. 28500000 -> "28.500.000". Fractions are dropped; package prices
// are whole rupiah.
func formatRupiah(amount float64) string {
	digits := strconv.FormatInt(int64(amount), 10)

	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune('.')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
