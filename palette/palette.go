// Package palette provides the named colors a user can pick from, grouped by category.
//
// A palette document has the shape {"category": {"name": "#rrggbb"}}; category and
// color order is kept as written.
package palette

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/OhadRubin/workspace-colors/colorspace"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

//go:embed colors.json
var builtin []byte

// Named is a palette entry.
type Named struct {
	Name     string `json:"name"`
	Hex      string `json:"hex"`
	Category string `json:"category,omitempty"`
}

func (n Named) String() string {
	return fmt.Sprintf("%s (%s)", n.Name, n.Hex)
}

// Category is an ordered group of named colors.
type Category struct {
	Name   string  `json:"name"`
	Colors []Named `json:"colors"`
}

// Palette is an immutable, ordered collection of categories.
type Palette struct {
	Categories []Category
	index      map[string]Named
	all        []Named
}

type document = orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, string]]

// Parse decodes and validates a palette document.
func Parse(data []byte) (*Palette, error) {
	doc := orderedmap.New[string, *orderedmap.OrderedMap[string, string]]()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode palette: %w", err)
	}
	return fromDocument(doc)
}

func fromDocument(doc *document) (*Palette, error) {
	p := &Palette{index: make(map[string]Named)}

	for cat := doc.Oldest(); cat != nil; cat = cat.Next() {
		category := Category{Name: cat.Key}
		if cat.Value == nil {
			continue
		}

		for entry := cat.Value.Oldest(); entry != nil; entry = entry.Next() {
			hex, err := colorspace.Normalize(entry.Value)
			if err != nil {
				return nil, fmt.Errorf("palette entry %s/%s: %w", cat.Key, entry.Key, err)
			}

			named := Named{Name: entry.Key, Hex: hex, Category: cat.Key}
			category.Colors = append(category.Colors, named)
			p.all = append(p.all, named)

			if _, dup := p.index[fold(entry.Key)]; !dup {
				p.index[fold(entry.Key)] = named
			}
		}

		p.Categories = append(p.Categories, category)
	}

	return p, nil
}

// Builtin returns the palette compiled into the binary.
func Builtin() *Palette {
	p, err := Parse(builtin)
	if err != nil {
		panic(err)
	}
	return p
}

// All returns every entry in document order.
func (p *Palette) All() []Named {
	return append([]Named(nil), p.all...)
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.all)
}

// Category returns the category called name.
func (p *Palette) Category(name string) (Category, bool) {
	for _, c := range p.Categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// fold normalizes a color name for lookups: case, spaces and dashes are ignored.
func fold(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}
