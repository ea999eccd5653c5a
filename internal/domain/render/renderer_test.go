package render

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_PNG(t *testing.T) {
	r := New()
	style := DefaultStyle()
	style.Width = 200

	data, err := r.PNG("hello", style)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	// Quiet zone corner is background, first finder module is foreground.
	bg, _, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), bg)

	// 21 modules for a version 1 symbol plus 2+2 quiet zone.
	moduleSize := 200 / 25
	fg, _, _, _ := img.At(2*moduleSize+1, 2*moduleSize+1).RGBA()
	assert.Equal(t, uint32(0), fg)
}

func TestRenderer_PNG_WidthSmallerThanSymbol(t *testing.T) {
	r := New()
	style := DefaultStyle()
	style.Width = MinWidth
	style.Margin = 6

	data, err := r.PNG(strings.Repeat("long payload ", 20), style)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), MinWidth)
}

func TestRenderer_SVG(t *testing.T) {
	r := New()
	style := DefaultStyle()
	style.ForegroundColor = "#112233"
	style.BackgroundColor = "#FFEEDD"
	style.Margin = 0

	svg, err := r.SVG("hello", style)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.Contains(t, svg, `viewBox="0 0 21 21"`)
	assert.Contains(t, svg, `fill="#112233"`)
	assert.Contains(t, svg, `fill="#ffeedd"`)
	// Top-left finder pattern: seven dark modules in the first row.
	assert.Contains(t, svg, "M0 0h7v1h-7z")
}

func TestRenderer_DataURL(t *testing.T) {
	r := New()

	url, err := r.DataURL("hello", DefaultStyle())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)
}

func TestRenderer_Render(t *testing.T) {
	r := New()

	img, err := r.Render("hello", DefaultStyle(), FormatSVG)
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", img.ContentType)

	img, err = r.Render("hello", DefaultStyle(), FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)

	_, err = r.Render("hello", DefaultStyle(), "gif")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRenderer_Errors(t *testing.T) {
	r := New()

	_, err := r.PNG("", DefaultStyle())
	assert.ErrorIs(t, err, ErrEmptyPayload)

	tests := []struct {
		name   string
		mutate func(*Style)
	}{
		{name: "bad foreground", mutate: func(s *Style) { s.ForegroundColor = "black" }},
		{name: "bad background", mutate: func(s *Style) { s.BackgroundColor = "#12" }},
		{name: "bad level", mutate: func(s *Style) { s.ErrorCorrectionLevel = "X" }},
		{name: "margin too large", mutate: func(s *Style) { s.Margin = 7 }},
		{name: "negative margin", mutate: func(s *Style) { s.Margin = -1 }},
		{name: "width too small", mutate: func(s *Style) { s.Width = 10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := DefaultStyle()
			tt.mutate(&style)
			_, err := r.SVG("hello", style)
			assert.ErrorIs(t, err, ErrInvalidStyle)
		})
	}
}

func TestRenderer_PayloadTooLarge(t *testing.T) {
	r := New()
	payload := strings.Repeat("é", 2000)

	_, err := r.PNG(payload, DefaultStyle())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
	assert.NotContains(t, err.Error(), "é")

	_, err = r.SVG(strings.Repeat("a", 2400), DefaultStyle())
	assert.ErrorIs(t, err, ErrPayloadTooLarge)

	low := DefaultStyle()
	low.ErrorCorrectionLevel = LevelL
	_, err = r.SVG(strings.Repeat("a", 2400), low)
	assert.NoError(t, err)
}

func TestRenderer_AllLevels(t *testing.T) {
	r := New()
	for _, l := range []ErrorCorrection{LevelL, LevelM, LevelQ, LevelH} {
		style := DefaultStyle()
		style.ErrorCorrectionLevel = l
		_, err := r.PNG("WIFI:T:WPA;S:Home;P:pw;H:false;;", style)
		assert.NoError(t, err, string(l))
	}
}
