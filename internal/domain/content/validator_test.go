package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		content     Descriptor
		wantErr     bool
		expectedErr string
	}{
		{name: "url with scheme", content: URL{URL: "https://example.com"}},
		{name: "url without scheme", content: URL{URL: "example.com/path"}},
		{name: "url loose dotted", content: URL{URL: "a.b"}},
		{name: "url custom scheme", content: URL{URL: "myapp:open"}},
		{name: "url empty", content: URL{}, wantErr: true, expectedErr: "URL is required"},
		{name: "url malformed", content: URL{URL: "not a url"}, wantErr: true, expectedErr: "Invalid URL format"},
		{name: "text", content: Text{Text: "hello"}},
		{name: "text at limit", content: Text{Text: strings.Repeat("я", MaxTextLength)}},
		{name: "text empty", content: Text{}, wantErr: true, expectedErr: "Text is required"},
		{
			name:        "text too long",
			content:     Text{Text: strings.Repeat("a", MaxTextLength+1)},
			wantErr:     true,
			expectedErr: "Text too long (max 2953 characters)",
		},
		{name: "wifi", content: WiFi{SSID: "Home", Encryption: EncryptionWEP}},
		{name: "wifi without ssid", content: WiFi{Encryption: EncryptionWPA}, wantErr: true, expectedErr: "Network name is required"},
		{name: "wifi unknown encryption", content: WiFi{SSID: "x", Encryption: "WPA3"}, wantErr: true, expectedErr: "Encryption must be"},
		{name: "vcard first name only", content: VCard{FirstName: "Ada"}},
		{name: "vcard last name only", content: VCard{LastName: "Lovelace"}},
		{name: "vcard without name", content: VCard{Email: "a@b.c"}, wantErr: true, expectedErr: "Name is required"},
		{name: "email", content: Email{Email: "me@example.com"}},
		{name: "email empty", content: Email{}, wantErr: true, expectedErr: "Email is required"},
		{name: "email without at", content: Email{Email: "example.com"}, wantErr: true, expectedErr: "Invalid email format"},
		{name: "phone", content: Phone{Phone: "+1"}},
		{name: "phone empty", content: Phone{}, wantErr: true, expectedErr: "Phone number is required"},
		{name: "sms", content: SMS{Phone: "+1"}},
		{name: "sms empty", content: SMS{Message: "hi"}, wantErr: true, expectedErr: "Phone number is required"},
		{name: "nil descriptor", content: nil, wantErr: true, expectedErr: "Unknown content type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidContent)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Fields(t *testing.T) {
	err := Validate(Email{Email: "nope"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, TypeEmail, verr.Type)
	assert.Equal(t, "email", verr.Field)
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("https://example2.com"))
	assert.Error(t, ValidateURL(""))
	assert.Error(t, ValidateURL("localhost"))
}
