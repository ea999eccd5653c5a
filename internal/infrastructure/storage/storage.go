// Package storage holds what the SQL backends share: the column encoding of
// QR code content and style.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"qrforge/internal/domain/content"
	"qrforge/internal/domain/qrcode"
	"qrforge/internal/domain/render"
)

// ErrUndecodable marks a stored content or style value this build cannot read.
var ErrUndecodable = errors.New("undecodable column")

// MarshalContent returns the JSON column value of d, nil when there is no content.
func MarshalContent(d content.Descriptor) ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	b, err := content.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}
	return b, nil
}

func UnmarshalContent(b []byte) (content.Descriptor, error) {
	if len(b) == 0 {
		return nil, nil
	}
	d, err := content.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("unmarshal content: %w: %w", ErrUndecodable, err)
	}
	return d, nil
}

func MarshalStyle(s render.Style) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal style: %w", err)
	}
	return b, nil
}

// UnmarshalStyle decodes a stored style over the defaults, so rows written
// before a field existed still render.
func UnmarshalStyle(b []byte) (render.Style, error) {
	s := render.DefaultStyle()
	if len(b) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return render.Style{}, fmt.Errorf("unmarshal style: %w: %w", ErrUndecodable, err)
	}
	return s, nil
}

// DecodeColumns fills the content and style of rec. A column that does not
// decode leaves no content or the default style behind and is reported with
// ErrUndecodable; the rest of rec is still valid.
func DecodeColumns(rec *qrcode.Record, contentJSON, styleJSON []byte) error {
	var errs []error

	d, err := UnmarshalContent(contentJSON)
	if err != nil {
		errs = append(errs, err)
	}
	rec.Content = d

	style, err := UnmarshalStyle(styleJSON)
	if err != nil {
		errs = append(errs, err)
		style = render.DefaultStyle()
	}
	rec.Style = style

	return errors.Join(errs...)
}
