// Package derive turns a single base color into the palette of related UI colors:
// a brighter variant, a muted variant and legible foregrounds for each.
package derive

import (
	"math"

	"github.com/OhadRubin/workspace-colors/colorspace"
	"github.com/samber/mo"
)

// Adaptive boost policy.
const (
	MinBoost   = 15.0
	MaxBoost   = 35.0
	BoostSlope = 0.33
	BrightCap  = 75.0
)

// Legacy fixed boost policy.
const (
	LegacyBoost = 25.0
	LegacyCap   = 100.0
)

// Muted variant.
const (
	MutedDrop  = 10.0
	MutedFloor = 10.0
)

// AdaptiveBoost returns the lightness boost for a base lightness in [0,100].
// Dark bases get more boost, light ones less.
func AdaptiveBoost(lightness float64) float64 {
	return math.Max(MinBoost, MaxBoost-lightness*BoostSlope)
}

// BrightLightness applies boost to lightness, capped at BrightCap.
// A None boost selects AdaptiveBoost.
func BrightLightness(lightness float64, boost mo.Option[float64]) float64 {
	b := boost.OrElse(AdaptiveBoost(lightness))
	return math.Min(BrightCap, lightness+b)
}

// BrightVersion returns a brighter variant of hex. The result never exceeds
// lightness BrightCap so foreground text still has room to contrast.
func BrightVersion(hex string, boost mo.Option[float64]) (string, error) {
	hsl, err := colorspace.HexToHSL(hex)
	if err != nil {
		return "", err
	}
	return colorspace.HSLToHex(hsl.H, hsl.S, BrightLightness(hsl.L, boost)), nil
}

// LegacyBrightVersion is the fixed-boost variant: LegacyBoost points unless
// overridden, capped at LegacyCap.
func LegacyBrightVersion(hex string, boost mo.Option[float64]) (string, error) {
	hsl, err := colorspace.HexToHSL(hex)
	if err != nil {
		return "", err
	}
	l := math.Min(LegacyCap, hsl.L+boost.OrElse(LegacyBoost))
	return colorspace.HSLToHex(hsl.H, hsl.S, l), nil
}

// MutedVersion returns a darker tone of hex: lightness lowered by MutedDrop,
// floored at MutedFloor.
func MutedVersion(hex string) (string, error) {
	hsl, err := colorspace.HexToHSL(hex)
	if err != nil {
		return "", err
	}
	return colorspace.HSLToHex(hsl.H, hsl.S, math.Max(MutedFloor, hsl.L-MutedDrop)), nil
}
