// Package inline derives colors without the interactive picker, for scripts.
package inline

import (
	"errors"
	"fmt"
	"os"

	"github.com/OhadRubin/workspace-colors/derive"
	"github.com/OhadRubin/workspace-colors/log"
	"github.com/OhadRubin/workspace-colors/palette"
)

// ErrAmbiguous is returned when a store is given but the query did not narrow down to one color.
var ErrAmbiguous = errors.New("query matches more than one color, add a picker")

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Palette == nil {
		options.Palette = palette.Builtin()
	}

	selected := match(options)
	if picker, ok := options.Picker.Get(); ok {
		if choice, ok := picker(selected).Get(); ok {
			selected = []palette.Named{choice}
		} else {
			selected = nil
		}
	}

	output := &Output{
		Query:   options.Query,
		Variant: string(options.Deriver.Variant),
	}

	for _, named := range selected {
		c, err := derived(options.Deriver, named)
		if err != nil {
			return err
		}
		output.Result = append(output.Result, c)
	}

	if store, ok := options.Store.Get(); ok {
		switch len(output.Result) {
		case 0:
			return fmt.Errorf("nothing matches %q", options.Query)
		case 1:
		default:
			return ErrAmbiguous
		}

		picked := output.Result[0]
		if err := store.Apply(picked.Customizations); err != nil {
			return err
		}
		output.Applied = store.Path
		log.Infof("inline applied %s to %s", picked.Name, store.Path)
	}

	if options.Json {
		return writeJson(options.Out, output)
	}

	for _, c := range output.Result {
		fmt.Fprintf(options.Out, "%s\t%s\t%s\t%s\n", c.Name, c.Base, c.Bright, c.Muted)
	}
	return nil
}

// match resolves the query: an exact hex or name wins, otherwise a fuzzy search.
func match(options *Options) []palette.Named {
	if options.Query == "" {
		return options.Palette.All()
	}

	if named, err := options.Palette.Resolve(options.Query); err == nil {
		return []palette.Named{named}
	}
	return options.Palette.Search(options.Query)
}

func derived(deriver derive.Deriver, named palette.Named) (*Color, error) {
	d, err := deriver.Derive(named.Hex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", named.Name, err)
	}

	contrast, err := derive.Report(d.Customizations)
	if err != nil {
		return nil, err
	}

	return &Color{
		Name:           named.Name,
		Category:       named.Category,
		Base:           d.Base,
		Bright:         d.Bright,
		Muted:          d.Muted,
		Customizations: d.Customizations,
		Contrast:       contrast,
	}, nil
}
