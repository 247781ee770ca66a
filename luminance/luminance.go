// Package luminance computes WCAG relative luminance and contrast ratios and picks
// a legible foreground for a background color.
package luminance

import (
	"math"

	"github.com/OhadRubin/workspace-colors/colorspace"
)

// Foreground candidates.
const (
	White = "#ffffff"
	Black = "#000000"
)

// ForegroundThreshold is the luminance below which white text is chosen.
// It sits under the 0.5 midpoint so medium-dark backgrounds get white text.
const ForegroundThreshold = 0.4

// Relative returns the WCAG relative luminance of hex in [0,1].
func Relative(hex string) (float64, error) {
	c, err := colorspace.ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return Of(c), nil
}

// Of returns the WCAG relative luminance of c.
func Of(c colorspace.Color) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// linearize converts an sRGB channel to linear light.
func linearize(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, always >= 1.
func ContrastRatio(a, b string) (float64, error) {
	la, err := Relative(a)
	if err != nil {
		return 0, err
	}
	lb, err := Relative(b)
	if err != nil {
		return 0, err
	}
	return ratio(la, lb), nil
}

func ratio(la, lb float64) float64 {
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// ChooseForeground returns White for backgrounds darker than ForegroundThreshold, Black otherwise.
func ChooseForeground(bg string) (string, error) {
	l, err := Relative(bg)
	if err != nil {
		return "", err
	}
	if l < ForegroundThreshold {
		return White, nil
	}
	return Black, nil
}
