package content

import (
	"github.com/danielgtaylor/huma/v2"
)

// Envelope carries a Descriptor through JSON request and response bodies,
// using the "type" field to pick the variant.
type Envelope struct {
	Descriptor Descriptor
}

func Wrap(d Descriptor) *Envelope {
	if d == nil {
		return nil
	}
	return &Envelope{Descriptor: d}
}

// UnmarshalJSON leaves e empty for a JSON null.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	d, err := Parse(data)
	if err != nil {
		return err
	}
	e.Descriptor = d
	return nil
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Descriptor == nil {
		return []byte("null"), nil
	}
	return Marshal(e.Descriptor)
}

func (Envelope) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:        huma.TypeObject,
		Description: "Content descriptor; the remaining fields depend on type",
		Properties: map[string]*huma.Schema{
			"type": Type("").Schema(r),
		},
		Required:             []string{"type"},
		AdditionalProperties: true,
		Examples: []any{
			map[string]any{"type": "url", "url": "https://example.com"},
			map[string]any{"type": "wifi", "ssid": "cafe", "password": "secret", "encryption": "WPA", "hidden": false},
		},
	}
}
