package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		content  Descriptor
		expected string
	}{
		{
			name:     "url verbatim",
			content:  URL{URL: "https://example.com/a?b=c"},
			expected: "https://example.com/a?b=c",
		},
		{
			name:     "text verbatim",
			content:  Text{Text: "hello; world"},
			expected: "hello; world",
		},
		{
			name:     "wifi",
			content:  WiFi{SSID: "Home", Password: "secret", Encryption: EncryptionWPA},
			expected: "WIFI:T:WPA;S:Home;P:secret;H:false;;",
		},
		{
			name:     "wifi hidden nopass",
			content:  WiFi{SSID: "Cafe", Encryption: EncryptionNoPass, Hidden: true},
			expected: "WIFI:T:nopass;S:Cafe;P:;H:true;;",
		},
		{
			name:     "wifi escapes reserved characters",
			content:  WiFi{SSID: "a;b", Password: `p\a:s,s`, Encryption: EncryptionWEP},
			expected: `WIFI:T:WEP;S:a\;b;P:p\\a\:s\,s;H:false;;`,
		},
		{
			name:     "email without params",
			content:  Email{Email: "me@example.com"},
			expected: "mailto:me@example.com",
		},
		{
			name:     "email with subject only",
			content:  Email{Email: "me@example.com", Subject: "Hello there"},
			expected: "mailto:me@example.com?subject=Hello%20there",
		},
		{
			name:     "email with subject and body",
			content:  Email{Email: "me@example.com", Subject: "Q&A", Body: "a+b=c"},
			expected: "mailto:me@example.com?subject=Q%26A&body=a%2Bb%3Dc",
		},
		{
			name:     "email with body only",
			content:  Email{Email: "me@example.com", Body: "line1\nline2"},
			expected: "mailto:me@example.com?body=line1%0Aline2",
		},
		{
			name:     "phone",
			content:  Phone{Phone: "+1 555 0100"},
			expected: "tel:+1 555 0100",
		},
		{
			name:     "sms with message",
			content:  SMS{Phone: "+15551234567", Message: "Hi there"},
			expected: "sms:+15551234567?body=Hi%20there",
		},
		{
			name:     "sms without message",
			content:  SMS{Phone: "+15551234567"},
			expected: "sms:+15551234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.content))
		})
	}
}

func TestEncode_VCard(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		got := Encode(VCard{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Email:        "ada@example.com",
			Phone:        "+441234",
			Organization: "Analytical Engines",
			Title:        "Programmer",
			URL:          "https://ada.example.com",
		})

		expected := strings.Join([]string{
			"BEGIN:VCARD",
			"VERSION:3.0",
			"N:Lovelace;Ada;;;",
			"FN:Ada Lovelace",
			"ORG:Analytical Engines",
			"TITLE:Programmer",
			"TEL:+441234",
			"EMAIL:ada@example.com",
			"URL:https://ada.example.com",
			"END:VCARD",
		}, "\n")
		assert.Equal(t, expected, got)
	})

	t.Run("absent fields produce no lines", func(t *testing.T) {
		got := Encode(VCard{FirstName: "Ada", Phone: "+441234"})

		assert.NotContains(t, got, "ORG:")
		assert.NotContains(t, got, "TITLE:")
		assert.NotContains(t, got, "EMAIL:")
		assert.NotContains(t, got, "URL:")
		assert.Contains(t, got, "\nTEL:+441234\n")
		assert.True(t, strings.HasSuffix(got, "END:VCARD"))
	})
}

func TestEscapeWiFi(t *testing.T) {
	assert.Equal(t, `a\;b`, EscapeWiFi("a;b"))
	assert.Equal(t, `\\;`, EscapeWiFi(`\;`))
	assert.Equal(t, `\:\,`, EscapeWiFi(":,"))
	assert.Equal(t, "plain", EscapeWiFi("plain"))
}

func TestEscapeComponent(t *testing.T) {
	tests := map[string]string{
		"Hi there":    "Hi%20there",
		"a-b_c.d~e":   "a-b_c.d~e",
		"!*'()":       "!*'()",
		"a+b":         "a%2Bb",
		"50% off":     "50%25%20off",
		"Привет":      "%D0%9F%D1%80%D0%B8%D0%B2%D0%B5%D1%82",
		"x=1&y=2#top": "x%3D1%26y%3D2%23top",
	}
	for in, want := range tests {
		assert.Equal(t, want, EscapeComponent(in), in)
	}
}

func TestPrepare(t *testing.T) {
	valid := []Descriptor{
		URL{URL: "example.com"},
		Text{Text: "x"},
		WiFi{SSID: "n", Encryption: EncryptionWPA},
		VCard{LastName: "Doe"},
		Email{Email: "a@b"},
		Phone{Phone: "1"},
		SMS{Phone: "1"},
	}
	for _, d := range valid {
		t.Run(string(d.Type()), func(t *testing.T) {
			payload, err := Prepare(d)
			require.NoError(t, err)
			assert.NotEmpty(t, payload)
		})
	}

	_, err := Prepare(Text{})
	assert.ErrorIs(t, err, ErrInvalidContent)
}
