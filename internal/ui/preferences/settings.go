package preferences

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"ringtimer/internal/core/model"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
)

// Settings defines editable user preferences.
type Settings struct {
	Minutes int `validate:"gte=0"`
	Seconds int `validate:"gte=0"`

	OuterCircleSize  float32 `validate:"gte=0"`
	InnerCircleSize  float32 `validate:"gte=0"`
	OuterCircleColor string  `validate:"ringcolor"`
	InnerCircleColor string  `validate:"ringcolor"`

	LabelTextSize  float32 `validate:"gt=0"`
	LabelTextColor string  `validate:"ringcolor"`
}

// ErrColorFormat reports a colour that is not #rgb or #rrggbb.
var ErrColorFormat = errors.New("expected #rgb or #rrggbb")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// ringcolor accepts exactly what ParseColor can turn into a widget colour.
	_ = v.RegisterValidation("ringcolor", func(field validator.FieldLevel) bool {
		_, err := ParseColor(field.Field().String())
		return err == nil
	})
	return v
}

// DefaultSettings returns a 2:40 countdown with the default ring style.
func DefaultSettings() Settings {
	return Settings{
		Minutes:          2,
		Seconds:          40,
		OuterCircleSize:  10,
		InnerCircleSize:  10,
		OuterCircleColor: "#ff00ff",
		InnerCircleColor: "#00ff00",
		LabelTextSize:    10,
		LabelTextColor:   "#000000",
	}
}

// Validate checks every field against its constraints.
func (settings Settings) Validate() error {
	if err := validate.Struct(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// TotalSeconds returns the countdown length in seconds.
func (settings Settings) TotalSeconds() int {
	return settings.Minutes*60 + settings.Seconds
}

// Duration returns the countdown length.
func (settings Settings) Duration() time.Duration {
	return time.Duration(settings.TotalSeconds()) * time.Second
}

// WidgetConfig converts settings to the ring widget configuration.
func (settings Settings) WidgetConfig() (model.WidgetConfig, error) {
	outer, err := ParseColor(settings.OuterCircleColor)
	if err != nil {
		return model.WidgetConfig{}, fmt.Errorf("outer circle color: %w", err)
	}
	inner, err := ParseColor(settings.InnerCircleColor)
	if err != nil {
		return model.WidgetConfig{}, fmt.Errorf("inner circle color: %w", err)
	}
	text, err := ParseColor(settings.LabelTextColor)
	if err != nil {
		return model.WidgetConfig{}, fmt.Errorf("label text color: %w", err)
	}

	return model.WidgetConfig{
		Ring: model.RingStyle{
			OuterWidth: settings.OuterCircleSize,
			InnerWidth: settings.InnerCircleSize,
			OuterColor: outer,
			InnerColor: inner,
		},
		Label: model.LabelStyle{
			TextSize:  settings.LabelTextSize,
			TextColor: text,
		},
	}, nil
}

// ParseColor converts #rgb or #rrggbb to an opaque colour. Forms with an
// alpha channel are rejected.
func ParseColor(value string) (color.NRGBA, error) {
	if !isOpaqueHex(value) {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", value, ErrColorFormat)
	}
	parsed, err := colorful.Hex(value)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", value, err)
	}
	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func isOpaqueHex(value string) bool {
	if len(value) != 4 && len(value) != 7 {
		return false
	}
	if value[0] != '#' {
		return false
	}
	for _, digit := range value[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", digit) {
			return false
		}
	}
	return true
}
