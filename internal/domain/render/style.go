package render

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrorCorrection is the redundancy level of the symbol.
type ErrorCorrection string

const (
	LevelL ErrorCorrection = "L"
	LevelM ErrorCorrection = "M"
	LevelQ ErrorCorrection = "Q"
	LevelH ErrorCorrection = "H"
)

const (
	MinWidth  = 32
	MaxWidth  = 4096
	MaxMargin = 6
)

var ErrInvalidStyle = errors.New("invalid style")

// Style controls how a payload is drawn. Margin is the quiet zone in modules,
// Width is the output size in pixels. Fields are independent of each other.
type Style struct {
	ForegroundColor      string          `json:"foregroundColor" validate:"required,hexcolor"`
	BackgroundColor      string          `json:"backgroundColor" validate:"required,hexcolor"`
	ErrorCorrectionLevel ErrorCorrection `json:"errorCorrectionLevel" validate:"required,oneof=L M Q H"`
	Margin               int             `json:"margin" validate:"min=0,max=6"`
	Width                int             `json:"width" validate:"min=32,max=4096"`
}

// DefaultStyle is black on white, level M, a two-module quiet zone and 256px.
func DefaultStyle() Style {
	return Style{
		ForegroundColor:      "#000000",
		BackgroundColor:      "#ffffff",
		ErrorCorrectionLevel: LevelM,
		Margin:               2,
		Width:                256,
	}
}

type palette struct {
	fg colorful.Color
	bg colorful.Color
}

func (r *Renderer) ValidateStyle(s Style) error {
	if err := r.validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed on %q", ErrInvalidStyle, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	if _, err := s.palette(); err != nil {
		return err
	}
	return nil
}

func (s Style) palette() (palette, error) {
	fg, err := colorful.Hex(s.ForegroundColor)
	if err != nil {
		return palette{}, fmt.Errorf("%w: foregroundColor: %v", ErrInvalidStyle, err)
	}
	bg, err := colorful.Hex(s.BackgroundColor)
	if err != nil {
		return palette{}, fmt.Errorf("%w: backgroundColor: %v", ErrInvalidStyle, err)
	}
	return palette{fg: fg, bg: bg}, nil
}
