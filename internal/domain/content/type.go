package content

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// Type is the discriminator of a content descriptor.
type Type string

const (
	TypeURL   Type = "url"
	TypeText  Type = "text"
	TypeWiFi  Type = "wifi"
	TypeVCard Type = "vcard"
	TypeEmail Type = "email"
	TypePhone Type = "phone"
	TypeSMS   Type = "sms"
)

var allTypes = []Type{TypeURL, TypeText, TypeWiFi, TypeVCard, TypeEmail, TypePhone, TypeSMS}

func (Type) Schema(_ huma.Registry) *huma.Schema {
	enum := make([]any, len(allTypes))
	for i, t := range allTypes {
		enum[i] = string(t)
	}
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        enum,
		Description: "Kind of content encoded into the QR symbol",
		Examples:    []any{string(TypeURL)},
	}
}

// Validate reports whether t is one of the known content types.
func (t Type) Validate() error {
	for _, known := range allTypes {
		if t == known {
			return nil
		}
	}
	return fmt.Errorf("unknown content type: %s", t)
}

func (t Type) String() string {
	return string(t)
}

// Encryption is the WiFi authentication scheme written into the T: field.
type Encryption string

const (
	EncryptionWPA    Encryption = "WPA"
	EncryptionWEP    Encryption = "WEP"
	EncryptionNoPass Encryption = "nopass"
)

func (e Encryption) valid() bool {
	switch e {
	case EncryptionWPA, EncryptionWEP, EncryptionNoPass:
		return true
	}
	return false
}
