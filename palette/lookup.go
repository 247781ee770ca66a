package palette

import (
	"errors"
	"fmt"
	"sort"

	"github.com/OhadRubin/workspace-colors/colorspace"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// ErrUnknownColor is matched by every UnknownColorError.
var ErrUnknownColor = errors.New("unknown color")

// UnknownColorError names the closest known entry.
type UnknownColorError struct {
	Name       string
	Suggestion string
}

func (e *UnknownColorError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("unknown color %q", e.Name)
	}
	return fmt.Sprintf("unknown color %q, did you mean %q?", e.Name, e.Suggestion)
}

func (e *UnknownColorError) Is(target error) bool {
	return target == ErrUnknownColor
}

// Lookup finds an entry by name.
func (p *Palette) Lookup(name string) (Named, error) {
	if named, ok := p.index[fold(name)]; ok {
		return named, nil
	}

	err := &UnknownColorError{Name: name}
	if len(p.index) > 0 {
		target := fold(name)
		err.Suggestion = lo.MinBy(lo.Keys(p.index), func(a, b string) bool {
			da, db := levenshtein.Distance(target, a), levenshtein.Distance(target, b)
			if da == db {
				return a < b
			}
			return da < db
		})
		err.Suggestion = p.index[err.Suggestion].Name
	}
	return Named{}, err
}

// Resolve accepts either a hex color or a palette name.
func (p *Palette) Resolve(arg string) (Named, error) {
	if hex, err := colorspace.Normalize(arg); err == nil {
		if named, ok := p.byHex(hex); ok {
			return named, nil
		}
		return Named{Name: hex, Hex: hex}, nil
	}
	return p.Lookup(arg)
}

func (p *Palette) byHex(hex string) (Named, bool) {
	return lo.Find(p.all, func(n Named) bool {
		return n.Hex == hex
	})
}

// Search returns entries whose names fuzzily match query, best first.
func (p *Palette) Search(query string) []Named {
	names := lo.Map(p.all, func(n Named, _ int) string {
		return n.Name
	})

	ranks := fuzzy.RankFindNormalizedFold(fold(query), names)
	sort.Stable(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) Named {
		return p.all[r.OriginalIndex]
	})
}
