package content

import (
	"encoding/json"
	"fmt"
)

// Parse decodes the JSON form {"type": "...", ...fields} into a descriptor.
// A WiFi descriptor without encryption defaults to WPA.
func Parse(data []byte) (Descriptor, error) {
	var head struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	var (
		d   Descriptor
		err error
	)
	switch head.Type {
	case TypeURL:
		d, err = decode[URL](data)
	case TypeText:
		d, err = decode[Text](data)
	case TypeWiFi:
		var w WiFi
		w, err = decode[WiFi](data)
		if w.Encryption == "" {
			w.Encryption = EncryptionWPA
		}
		d = w
	case TypeVCard:
		d, err = decode[VCard](data)
	case TypeEmail:
		d, err = decode[Email](data)
	case TypePhone:
		d, err = decode[Phone](data)
	case TypeSMS:
		d, err = decode[SMS](data)
	default:
		return nil, invalid(head.Type, "type", "Unknown content type")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidContent, head.Type, err)
	}
	return d, nil
}

func decode[T Descriptor](data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// Marshal encodes d into its JSON form with the "type" discriminator.
func Marshal(d Descriptor) ([]byte, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil descriptor", ErrInvalidContent)
	}

	body, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal %s content: %w", d.Type(), err)
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("marshal %s content: %w", d.Type(), err)
	}
	fields["type"], _ = json.Marshal(d.Type())

	return json.Marshal(fields)
}
