package content

import (
	"net/url"
	"strings"
)

var (
	// wifiEscaper works in a single pass, so an inserted backslash is never escaped again.
	wifiEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`)

	// componentFixer turns url.QueryEscape output into encodeURIComponent output.
	componentFixer = strings.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")
)

// Encode returns the wire string for d. It does not validate: run Validate first.
// An unknown descriptor yields an empty string.
func Encode(d Descriptor) string {
	switch c := d.(type) {
	case URL:
		return c.URL
	case Text:
		return c.Text
	case WiFi:
		return encodeWiFi(c)
	case VCard:
		return encodeVCard(c)
	case Email:
		return encodeEmail(c)
	case Phone:
		return "tel:" + c.Phone
	case SMS:
		return encodeSMS(c)
	default:
		return ""
	}
}

// Prepare validates d and encodes it.
func Prepare(d Descriptor) (string, error) {
	if err := Validate(d); err != nil {
		return "", err
	}
	return Encode(d), nil
}

func encodeWiFi(c WiFi) string {
	hidden := "false"
	if c.Hidden {
		hidden = "true"
	}

	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(string(c.Encryption))
	b.WriteString(";S:")
	b.WriteString(EscapeWiFi(c.SSID))
	b.WriteString(";P:")
	b.WriteString(EscapeWiFi(c.Password))
	b.WriteString(";H:")
	b.WriteString(hidden)
	b.WriteString(";;")
	return b.String()
}

func encodeVCard(c VCard) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + c.LastName + ";" + c.FirstName + ";;;",
		"FN:" + c.FirstName + " " + c.LastName,
	}

	optional := []struct {
		prefix string
		value  string
	}{
		{"ORG:", c.Organization},
		{"TITLE:", c.Title},
		{"TEL:", c.Phone},
		{"EMAIL:", c.Email},
		{"URL:", c.URL},
	}
	for _, o := range optional {
		if o.value != "" {
			lines = append(lines, o.prefix+o.value)
		}
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}

func encodeEmail(c Email) string {
	mailto := "mailto:" + c.Email

	var params []string
	if c.Subject != "" {
		params = append(params, "subject="+EscapeComponent(c.Subject))
	}
	if c.Body != "" {
		params = append(params, "body="+EscapeComponent(c.Body))
	}
	if len(params) > 0 {
		mailto += "?" + strings.Join(params, "&")
	}
	return mailto
}

func encodeSMS(c SMS) string {
	sms := "sms:" + c.Phone
	if c.Message != "" {
		sms += "?body=" + EscapeComponent(c.Message)
	}
	return sms
}

// EscapeWiFi backslash-escapes the characters reserved by the WIFI: scheme.
func EscapeWiFi(s string) string {
	return wifiEscaper.Replace(s)
}

// EscapeComponent percent-encodes s the way JavaScript's encodeURIComponent does:
// everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is escaped, spaces become %20.
func EscapeComponent(s string) string {
	return componentFixer.Replace(url.QueryEscape(s))
}
