package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/OhadRubin/workspace-colors/derive"
	"github.com/OhadRubin/workspace-colors/palette"
	"github.com/OhadRubin/workspace-colors/settings"
	"github.com/OhadRubin/workspace-colors/util"
	"github.com/samber/mo"
)

// Picker narrows the matched colors down to one.
type Picker func([]palette.Named) mo.Option[palette.Named]

type Options struct {
	Out     io.Writer
	Palette *palette.Palette
	Deriver derive.Deriver
	// Query is a hex color, a palette name or a fuzzy search. Empty matches everything.
	Query  string
	Picker mo.Option[Picker]
	Json   bool
	// Store, when present, receives the picked color.
	Store mo.Option[*settings.Store]
}

// ParsePicker parses "first", "last" or a zero-based index.
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "first":
		return func(colors []palette.Named) mo.Option[palette.Named] {
			if len(colors) == 0 {
				return mo.None[palette.Named]()
			}
			return mo.Some(colors[0])
		}, nil
	case "last":
		return func(colors []palette.Named) mo.Option[palette.Named] {
			if len(colors) == 0 {
				return mo.None[palette.Named]()
			}
			return mo.Some(colors[len(colors)-1])
		}, nil
	}

	idx, err := strconv.ParseUint(description, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid picker: %s", description)
	}

	return func(colors []palette.Named) mo.Option[palette.Named] {
		if len(colors) == 0 {
			return mo.None[palette.Named]()
		}
		return mo.Some(colors[util.Clamp(int(idx), 0, len(colors)-1)])
	}, nil
}
