package graphics

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBF constructs an opaque Color from normalized components (0-1).
func RGBF(r, g, b float64) Color {
	return RGB(unitToByte(r), unitToByte(g), unitToByte(b))
}

// ParseHex parses "#RRGGBB" or "#AARRGGBB" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return Color(v), nil
}

// Hex formats the color as "#RRGGBB", or "#AARRGGBB" when not opaque.
func (c Color) Hex() string {
	if uint8(c>>24) == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
	}
	return fmt.Sprintf("#%08X", uint32(c))
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts the color to the image/color non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// FromColor converts any image/color value.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return unitToByte(a)
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * maxByte))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorLightGray   = Color(0xFFD3D3D3)
)
