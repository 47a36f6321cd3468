package progressring

import "github.com/go-drift/progressring/pkg/graphics"

// Default palette.
var (
	DefaultBackgroundRingColor = graphics.RGBF(0.29, 0.74, 0.67)
	DefaultRingColor           = graphics.RGBF(0.99, 0.29, 0.10)
	DefaultTextColor           = graphics.RGBF(0.87, 0.86, 0.89)
)

// DefaultStrokeWidth is the stroke width used by DefaultStyle.
const DefaultStrokeWidth = 20.0

// Style configures a RingView.
type Style struct {
	// StrokeWidth is the width of both rings. Must be positive.
	StrokeWidth float64

	// RingColor strokes the progress ring.
	RingColor graphics.Color

	// BackgroundRingColor strokes the full background ring.
	BackgroundRingColor graphics.Color

	// TextColor is a suggestion for centered labels; the ring never draws
	// text itself.
	TextColor graphics.Color

	Direction Direction
	LineCap   graphics.StrokeCap
}

// DefaultStyle returns the stock palette with a 20 pt clockwise ring and
// round caps.
func DefaultStyle() Style {
	return Style{
		StrokeWidth:         DefaultStrokeWidth,
		RingColor:           DefaultRingColor,
		BackgroundRingColor: DefaultBackgroundRingColor,
		TextColor:           DefaultTextColor,
		Direction:           Clockwise,
		LineCap:             graphics.CapRound,
	}
}
