package content

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxTextLength is the byte-mode capacity of a version 40 symbol at level L.
const MaxTextLength = 2953

// Validate checks that d is well formed enough to be encoded.
// The returned error is a *ValidationError.
func Validate(d Descriptor) error {
	switch c := d.(type) {
	case URL:
		return validateURL(c.URL)
	case Text:
		if c.Text == "" {
			return invalid(TypeText, "text", "Text is required")
		}
		if utf8.RuneCountInString(c.Text) > MaxTextLength {
			return invalid(TypeText, "text", "Text too long (max 2953 characters)")
		}
	case WiFi:
		if c.SSID == "" {
			return invalid(TypeWiFi, "ssid", "Network name is required")
		}
		if !c.Encryption.valid() {
			return invalid(TypeWiFi, "encryption", "Encryption must be one of WPA, WEP, nopass")
		}
	case VCard:
		if c.FirstName == "" && c.LastName == "" {
			return invalid(TypeVCard, "firstName", "Name is required")
		}
	case Email:
		if c.Email == "" {
			return invalid(TypeEmail, "email", "Email is required")
		}
		if !strings.Contains(c.Email, "@") {
			return invalid(TypeEmail, "email", "Invalid email format")
		}
	case Phone:
		if c.Phone == "" {
			return invalid(TypePhone, "phone", "Phone number is required")
		}
	case SMS:
		if c.Phone == "" {
			return invalid(TypeSMS, "phone", "Phone number is required")
		}
	default:
		return invalid("", "type", "Unknown content type")
	}
	return nil
}

// ValidateURL applies the url rule on its own; used for destination updates.
func ValidateURL(raw string) error {
	return validateURL(raw)
}

// An absolute URL passes. A string without a scheme passes as long as it contains a dot,
// since the scheme can be added later.
func validateURL(raw string) error {
	if raw == "" {
		return invalid(TypeURL, "url", "URL is required")
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		return nil
	}
	if strings.Contains(raw, ".") {
		return nil
	}
	return invalid(TypeURL, "url", "Invalid URL format")
}
