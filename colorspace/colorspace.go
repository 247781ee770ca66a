// Package colorspace converts between hex RGB strings and HSL.
//
// Hue is expressed in degrees [0,360), saturation and lightness in percent [0,100].
package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB value.
type Color struct {
	R, G, B uint8
}

// Hex returns the canonical "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// HSL is an intermediate hue/saturation/lightness triple.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Hex converts the triple back to "#rrggbb".
func (h HSL) Hex() string {
	return HSLToHex(h.H, h.S, h.L)
}

// ParseError is returned for malformed hex input.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid hex color %q: %s", e.Input, e.Reason)
}

// ParseHex parses exactly six hex digits, optionally prefixed with '#'.
func ParseHex(hex string) (Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return Color{}, &ParseError{Input: hex, Reason: fmt.Sprintf("expected 6 hex digits, got %d", len(digits))}
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, &ParseError{Input: hex, Reason: fmt.Sprintf("non-hex characters %q", digits[i*2:i*2+2])}
		}
		channels[i] = uint8(v)
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Normalize parses hex and returns its canonical lowercase "#rrggbb" form.
func Normalize(hex string) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// HexToHSL parses hex and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return ToHSL(c), nil
}

// ToHSL converts an RGB color to HSL using the classical (not HSV) derivation.
func ToHSL(c Color) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}

	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLToHex converts HSL to "#rrggbb". Hue is wrapped modulo 360, saturation and
// lightness are clamped to [0,100].
func HSLToHex(h, s, l float64) string {
	return FromHSL(h, s, l).Hex()
}

// FromHSL converts HSL to an RGB color, normalizing out-of-range input.
func FromHSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	hh := h / 360
	ss := clamp(s, 0, 100) / 100
	ll := clamp(l, 0, 100) / 100

	if ss == 0 {
		v := channel(ll)
		return Color{R: v, G: v, B: v}
	}

	var q float64
	if ll < 0.5 {
		q = ll * (1 + ss)
	} else {
		q = ll + ss - ll*ss
	}
	p := 2*ll - q

	return Color{
		R: channel(hueToRGB(p, q, hh+1.0/3)),
		G: channel(hueToRGB(p, q, hh)),
		B: channel(hueToRGB(p, q, hh-1.0/3)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
