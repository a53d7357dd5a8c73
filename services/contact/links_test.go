package contact_test

import (
	"testing"

	"buildlanka/services/contact"
)

func TestTelLink(t *testing.T) {
	got := contact.TelLink("+94 77 123 4567")
	if got != "tel:+94 77 123 4567" {
		t.Fatalf("tel link: got %q", got)
	}
}

func TestWhatsAppLinkStripsNonDigits(t *testing.T) {
	got := contact.WhatsAppLink("+94 (77) 123-4567", "")
	if got != "https://wa.me/94771234567" {
		t.Fatalf("whatsapp link: got %q", got)
	}
}

func TestWhatsAppLinkEncodesMessage(t *testing.T) {
	got := contact.WhatsAppLink("0771234567", "Hello, is the JCB available?")
	want := "https://wa.me/0771234567?text=Hello%2C+is+the+JCB+available%3F"
	if got != want {
		t.Fatalf("whatsapp link: got %q want %q", got, want)
	}
}
