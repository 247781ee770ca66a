package derive

import (
	"fmt"

	"github.com/OhadRubin/workspace-colors/colorspace"
	"github.com/OhadRubin/workspace-colors/customization"
	"github.com/OhadRubin/workspace-colors/luminance"
	"github.com/samber/lo"
)

// Customizations builds the full managed style map for a base color and its bright variant.
func Customizations(base, bright string) (customization.StyleMap, error) {
	base, err := colorspace.Normalize(base)
	if err != nil {
		return nil, err
	}
	bright, err = colorspace.Normalize(bright)
	if err != nil {
		return nil, err
	}

	muted, err := MutedVersion(base)
	if err != nil {
		return nil, err
	}

	var (
		baseFg   = lo.Must(luminance.ChooseForeground(base))
		brightFg = lo.Must(luminance.ChooseForeground(bright))
		mutedFg  = lo.Must(luminance.ChooseForeground(muted))
	)

	return customization.StyleMap{
		customization.TitleBarActiveBackground:      base,
		customization.TitleBarActiveForeground:      baseFg,
		customization.TitleBarInactiveBackground:    bright,
		customization.TitleBarInactiveForeground:    brightFg,
		customization.TitleBarBorder:                bright,
		customization.StatusBarBackground:           bright,
		customization.StatusBarForeground:           brightFg,
		customization.StatusBarDebuggingBackground:  bright,
		customization.StatusBarDebuggingForeground:  brightFg,
		customization.ActivityBarBackground:         muted,
		customization.ActivityBarForeground:         mutedFg,
		customization.ActivityBarInactiveForeground: mutedFg,
		customization.TabActiveBorder:               bright,
	}, nil
}

// LegacyCustomizations builds the six-key map written by the fixed-boost variant.
// It sets no foregrounds.
func LegacyCustomizations(base, bright string) (customization.StyleMap, error) {
	base, err := colorspace.Normalize(base)
	if err != nil {
		return nil, err
	}
	bright, err = colorspace.Normalize(bright)
	if err != nil {
		return nil, err
	}

	return customization.StyleMap{
		customization.TitleBarActiveBackground:     base,
		customization.TitleBarInactiveBackground:   bright,
		customization.TitleBarBorder:               bright,
		customization.StatusBarBackground:          bright,
		customization.StatusBarDebuggingBackground: bright,
		customization.TabActiveBorder:              bright,
	}, nil
}

// ContrastEntry is a graded pair of managed keys.
type ContrastEntry struct {
	BackgroundKey string `json:"background_key"`
	ForegroundKey string `json:"foreground_key"`
	luminance.Check
}

// Report grades every background/foreground pair present in m.
// Pairs missing either side are skipped.
func Report(m customization.StyleMap) ([]ContrastEntry, error) {
	var entries []ContrastEntry
	for _, pair := range customization.ForegroundPairs() {
		bg, okBg := m[pair.Background].(string)
		fg, okFg := m[pair.Foreground].(string)
		if !okBg || !okFg {
			continue
		}

		check, err := luminance.CheckPair(bg, fg)
		if err != nil {
			return nil, fmt.Errorf("%s on %s: %w", pair.Foreground, pair.Background, err)
		}
		entries = append(entries, ContrastEntry{
			BackgroundKey: pair.Background,
			ForegroundKey: pair.Foreground,
			Check:         check,
		})
	}
	return entries, nil
}
