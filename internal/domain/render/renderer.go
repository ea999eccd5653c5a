package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/go-playground/validator/v10"
)

// Format selects raster or vector output.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

var (
	ErrEmptyPayload      = errors.New("no content to encode")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrPayloadTooLarge means the payload does not fit a symbol at the
	// requested error correction level.
	ErrPayloadTooLarge = errors.New("content too large for a QR code at this error correction level")
)

// Image is a rendered symbol.
type Image struct {
	ContentType string
	Data        []byte
}

// Renderer draws QR symbols. It is safe for concurrent use.
type Renderer struct {
	validate *validator.Validate
}

func New() *Renderer {
	return &Renderer{validate: validator.New()}
}

// Render encodes payload into a symbol and draws it in the requested format.
func (r *Renderer) Render(payload string, style Style, format Format) (Image, error) {
	switch format {
	case FormatPNG:
		data, err := r.PNG(payload, style)
		if err != nil {
			return Image{}, err
		}
		return Image{ContentType: "image/png", Data: data}, nil
	case FormatSVG:
		svg, err := r.SVG(payload, style)
		if err != nil {
			return Image{}, err
		}
		return Image{ContentType: "image/svg+xml", Data: []byte(svg)}, nil
	default:
		return Image{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// PNG returns a Width x Width image with the quiet zone included.
func (r *Renderer) PNG(payload string, style Style) ([]byte, error) {
	m, pal, err := r.prepare(payload, style)
	if err != nil {
		return nil, err
	}

	total := m.size + 2*style.Margin
	width := style.Width
	if width < total {
		width = total
	}

	img := image.NewPaletted(image.Rect(0, 0, width, width), color.Palette{pal.bg, pal.fg})
	for py := 0; py < width; py++ {
		my := py*total/width - style.Margin
		for px := 0; px < width; px++ {
			mx := px*total/width - style.Margin
			if m.dark(mx, my) {
				img.SetColorIndex(px, py, 1)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL returns the PNG as a base64 data URL.
func (r *Renderer) DataURL(payload string, style Style) (string, error) {
	data, err := r.PNG(payload, style)
	if err != nil {
		return "", err
	}
	return Image{ContentType: "image/png", Data: data}.DataURL(), nil
}

// DataURL embeds the image in a data URL.
func (img Image) DataURL() string {
	return "data:" + img.ContentType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// SVG returns a path based vector document. Each dark run of a row becomes one subpath.
func (r *Renderer) SVG(payload string, style Style) (string, error) {
	m, pal, err := r.prepare(payload, style)
	if err != nil {
		return "", err
	}

	total := m.size + 2*style.Margin

	var d strings.Builder
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; {
			if !m.dark(x, y) {
				x++
				continue
			}
			start := x
			for x < m.size && m.dark(x, y) {
				x++
			}
			fmt.Fprintf(&d, "M%d %dh%dv1h-%dz", start+style.Margin, y+style.Margin, x-start, x-start)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		style.Width, style.Width, total, total)
	fmt.Fprintf(&b, `<path fill="%s" d="M0 0h%dv%dH0z"/>`, pal.bg.Hex(), total, total)
	fmt.Fprintf(&b, `<path fill="%s" d="%s"/>`, pal.fg.Hex(), d.String())
	b.WriteString("</svg>\n")
	return b.String(), nil
}

func (r *Renderer) prepare(payload string, style Style) (matrix, palette, error) {
	if payload == "" {
		return matrix{}, palette{}, ErrEmptyPayload
	}
	if err := r.ValidateStyle(style); err != nil {
		return matrix{}, palette{}, err
	}
	pal, err := style.palette()
	if err != nil {
		return matrix{}, palette{}, err
	}

	code, err := qr.Encode(payload, level(style.ErrorCorrectionLevel), qr.Auto)
	if err != nil {
		// The encoder error quotes the payload, which may hold credentials.
		return matrix{}, palette{}, fmt.Errorf("%w: %d bytes at level %s", ErrPayloadTooLarge, len(payload), style.ErrorCorrectionLevel)
	}
	return newMatrix(code), pal, nil
}

func level(l ErrorCorrection) qr.ErrorCorrectionLevel {
	switch l {
	case LevelL:
		return qr.L
	case LevelQ:
		return qr.Q
	case LevelH:
		return qr.H
	default:
		return qr.M
	}
}

// matrix is the module grid without quiet zone.
type matrix struct {
	size    int
	modules []bool
}

func newMatrix(code barcode.Barcode) matrix {
	bounds := code.Bounds()
	size := bounds.Dx()
	modules := make([]bool, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g := color.GrayModel.Convert(code.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			modules[y*size+x] = g.Y < 128
		}
	}
	return matrix{size: size, modules: modules}
}

func (m matrix) dark(x, y int) bool {
	if x < 0 || y < 0 || x >= m.size || y >= m.size {
		return false
	}
	return m.modules[y*m.size+x]
}
