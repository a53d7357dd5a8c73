package contact

import (
	"net/url"
	"strings"
)

// TelLink builds a telephone deep link for a supplier's phone number. The
// number is inserted verbatim; dialers accept spaces and punctuation.
func TelLink(phone string) string {
	return "tel:" + phone
}

// WhatsAppLink builds a wa.me deep link opening a chat with the supplier,
// pre-filled with the given message. WhatsApp only accepts digits in the
// number, so everything else is stripped first.
func WhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	link := "https://wa.me/" + digits.String()
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}
