package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"qrforge/internal/domain/content"
	"qrforge/internal/domain/render"
)

// fields holds every content flag; only those of the chosen type are used.
var fields struct {
	typ          string
	url          string
	text         string
	ssid         string
	password     string
	encryption   string
	hidden       bool
	firstName    string
	lastName     string
	email        string
	phone        string
	organization string
	title        string
	subject      string
	body         string
	message      string

	out   string
	style render.Style
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Validate content and print its QR payload",
	Long: `Builds the payload a scanner would read for the given content. With --out
the symbol is also rendered; the file extension selects PNG or SVG.`,
	Example: `  qrforge encode --type wifi --ssid cafe --password secret
  qrforge encode --type url --url https://example.com --out menu.svg`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := descriptorFromFlags()
		if err != nil {
			return err
		}

		payload, err := content.Prepare(d)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), payload)

		if fields.out == "" {
			return nil
		}
		return writeImage(cmd, payload)
	},
}

func descriptorFromFlags() (content.Descriptor, error) {
	t := content.Type(fields.typ)
	if err := t.Validate(); err != nil {
		return nil, err
	}

	switch t {
	case content.TypeURL:
		return content.URL{URL: fields.url}, nil
	case content.TypeText:
		return content.Text{Text: fields.text}, nil
	case content.TypeWiFi:
		return content.WiFi{
			SSID:       fields.ssid,
			Password:   fields.password,
			Encryption: content.Encryption(fields.encryption),
			Hidden:     fields.hidden,
		}, nil
	case content.TypeVCard:
		return content.VCard{
			FirstName:    fields.firstName,
			LastName:     fields.lastName,
			Email:        fields.email,
			Phone:        fields.phone,
			Organization: fields.organization,
			Title:        fields.title,
			URL:          fields.url,
		}, nil
	case content.TypeEmail:
		return content.Email{Email: fields.email, Subject: fields.subject, Body: fields.body}, nil
	case content.TypePhone:
		return content.Phone{Phone: fields.phone}, nil
	case content.TypeSMS:
		return content.SMS{Phone: fields.phone, Message: fields.message}, nil
	}
	return nil, fmt.Errorf("unsupported content type %q", t)
}

func writeImage(cmd *cobra.Command, payload string) error {
	format := render.Format(strings.TrimPrefix(strings.ToLower(filepath.Ext(fields.out)), "."))

	img, err := render.New().Render(payload, fields.style, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(fields.out, img.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fields.out, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s wrote %s (%s, %d bytes)\n",
		color.GreenString("✓"), fields.out, img.ContentType, len(img.Data))
	return nil
}

func init() {
	f := encodeCmd.Flags()
	f.StringVarP(&fields.typ, "type", "t", string(content.TypeURL), "content type: url, text, wifi, vcard, email, phone, sms")
	f.StringVar(&fields.url, "url", "", "url (url, vcard)")
	f.StringVar(&fields.text, "text", "", "text (text)")
	f.StringVar(&fields.ssid, "ssid", "", "network name (wifi)")
	f.StringVar(&fields.password, "password", "", "network password (wifi)")
	f.StringVar(&fields.encryption, "encryption", string(content.EncryptionWPA), "WPA, WEP or nopass (wifi)")
	f.BoolVar(&fields.hidden, "hidden", false, "hidden network (wifi)")
	f.StringVar(&fields.firstName, "first-name", "", "first name (vcard)")
	f.StringVar(&fields.lastName, "last-name", "", "last name (vcard)")
	f.StringVar(&fields.email, "email", "", "email address (vcard, email)")
	f.StringVar(&fields.phone, "phone", "", "phone number (vcard, phone, sms)")
	f.StringVar(&fields.organization, "organization", "", "organization (vcard)")
	f.StringVar(&fields.title, "title", "", "job title (vcard)")
	f.StringVar(&fields.subject, "subject", "", "subject (email)")
	f.StringVar(&fields.body, "body", "", "body (email)")
	f.StringVar(&fields.message, "message", "", "message (sms)")

	def := render.DefaultStyle()
	f.StringVarP(&fields.out, "out", "o", "", "write the symbol to a .png or .svg file")
	f.StringVar(&fields.style.ForegroundColor, "fg", def.ForegroundColor, "foreground color")
	f.StringVar(&fields.style.BackgroundColor, "bg", def.BackgroundColor, "background color")
	f.StringVar((*string)(&fields.style.ErrorCorrectionLevel), "level", string(def.ErrorCorrectionLevel), "error correction level: L, M, Q or H")
	f.IntVar(&fields.style.Margin, "margin", def.Margin, "quiet zone in modules")
	f.IntVar(&fields.style.Width, "width", def.Width, "image width in pixels")
}
