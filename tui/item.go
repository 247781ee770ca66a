package tui

import (
	"fmt"
	"strings"

	"github.com/OhadRubin/workspace-colors/icon"
	"github.com/OhadRubin/workspace-colors/key"
	"github.com/OhadRubin/workspace-colors/palette"
	"github.com/OhadRubin/workspace-colors/preview"
	"github.com/OhadRubin/workspace-colors/recent"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/OhadRubin/workspace-colors/util"
	"github.com/spf13/viper"
)

// listItem wraps palette values for the bubbles list.
type listItem struct {
	internal any
	marked   bool
}

func (t *listItem) named() (palette.Named, bool) {
	switch e := t.internal.(type) {
	case palette.Named:
		return e, true
	case *recent.Record:
		return e.Named(), true
	default:
		return palette.Named{}, false
	}
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case palette.Category:
		title = util.Humanize(e.Name)
	case palette.Named:
		title = fmt.Sprintf("%s %s", preview.Swatch(e.Hex), util.Humanize(e.Name))
	case *recent.Record:
		title = fmt.Sprintf("%s %s", preview.Swatch(e.Hex), util.Humanize(e.Name))
	case string:
		title = e
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, icon.Get(icon.Saved))
	}

	return
}

func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case palette.Category:
		swatches := make([]string, 0, 8)
		for _, c := range e.Colors[:min(len(e.Colors), 8)] {
			swatches = append(swatches, preview.Swatch(c.Hex))
		}
		description = strings.Join(swatches, "") + " " + style.Faint(util.Quantify(len(e.Colors), "color", "colors"))
	case palette.Named:
		if viper.GetBool(key.TUIShowHex) {
			description = e.Hex
		}
	case *recent.Record:
		parts := []string{e.AppliedAt.Format("2006-01-02 15:04")}
		if viper.GetBool(key.TUIShowHex) {
			parts = append([]string{e.Hex}, parts...)
		}
		if e.Rank > 1 {
			parts = append(parts, util.Quantify(e.Rank, "time", "times"))
		}
		description = strings.Join(parts, " • ")
	}

	return
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case palette.Category:
		return e.Name
	case palette.Named:
		return e.Name
	case *recent.Record:
		return e.Name
	case string:
		return e
	default:
		return ""
	}
}
