package model

import "image/color"

// DefaultMax is the progress maximum used until the host calls SetMax.
const DefaultMax = 100

// RingStyle describes the two concentric rings of the progress widget.
type RingStyle struct {
	OuterWidth float32
	InnerWidth float32
	OuterColor color.NRGBA
	InnerColor color.NRGBA
}

// LabelStyle describes the centre label showing the remaining time.
type LabelStyle struct {
	TextSize  float32
	TextColor color.NRGBA
}

// WidgetConfig contains the construction-time options of the ring widget.
type WidgetConfig struct {
	Ring  RingStyle
	Label LabelStyle
}

// DefaultRingStyle returns a 10 unit magenta progress ring over a 10 unit green track.
func DefaultRingStyle() RingStyle {
	return RingStyle{
		OuterWidth: 10,
		InnerWidth: 10,
		OuterColor: color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
		InnerColor: color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	}
}

// DefaultWidgetConfig returns the defaults applied when the host sets nothing.
func DefaultWidgetConfig() WidgetConfig {
	return WidgetConfig{
		Ring: DefaultRingStyle(),
		Label: LabelStyle{
			TextSize:  10,
			TextColor: color.NRGBA{A: 0xff},
		},
	}
}
