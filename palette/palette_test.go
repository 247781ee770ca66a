package palette

import (
	"errors"
	"testing"

	"github.com/OhadRubin/workspace-colors/colorspace"
	"github.com/OhadRubin/workspace-colors/filesystem"
	"github.com/OhadRubin/workspace-colors/key"
	"github.com/OhadRubin/workspace-colors/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

const sample = `{
	"blues": {"ocean_blue": "#006994", "sky_blue": "87ceeb"},
	"greens": {"forest_green": "#228B22", "mint": "#3eb489"}
}`

func TestParse(t *testing.T) {
	Convey("Parsing a palette document", t, func() {
		Convey("Should keep category and color order", func() {
			p, err := Parse([]byte(sample))
			So(err, ShouldBeNil)
			So(p.Categories, ShouldHaveLength, 2)
			So(p.Categories[0].Name, ShouldEqual, "blues")
			So(p.Categories[1].Name, ShouldEqual, "greens")
			So(p.Categories[0].Colors[1].Name, ShouldEqual, "sky_blue")
			So(p.Len(), ShouldEqual, 4)
		})

		Convey("Should normalize hex values", func() {
			p, _ := Parse([]byte(sample))
			So(p.Categories[0].Colors[1].Hex, ShouldEqual, "#87ceeb")
			So(p.Categories[1].Colors[0].Hex, ShouldEqual, "#228b22")
		})

		Convey("Should reject an invalid color", func() {
			_, err := Parse([]byte(`{"bad": {"nope": "#12345"}}`))
			So(err, ShouldNotBeNil)

			var perr *colorspace.ParseError
			So(errors.As(err, &perr), ShouldBeTrue)
		})

		Convey("Should reject malformed json", func() {
			_, err := Parse([]byte(`{"blues": [`))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestBuiltin(t *testing.T) {
	Convey("The built-in palette", t, func() {
		p := Builtin()

		Convey("Should have sixteen categories starting with greens", func() {
			So(p.Categories, ShouldHaveLength, 16)
			So(p.Categories[0].Name, ShouldEqual, "greens")
		})

		Convey("Should only contain valid colors", func() {
			for _, n := range p.All() {
				_, err := colorspace.ParseHex(n.Hex)
				So(err, ShouldBeNil)
				So(n.Category, ShouldNotBeEmpty)
			}
		})
	})
}

func TestLookup(t *testing.T) {
	Convey("Looking up a color by name", t, func() {
		p, _ := Parse([]byte(sample))

		Convey("Should ignore case, spaces and dashes", func() {
			for _, name := range []string{"ocean_blue", "Ocean Blue", "OCEAN-BLUE"} {
				n, err := p.Lookup(name)
				So(err, ShouldBeNil)
				So(n.Hex, ShouldEqual, "#006994")
				So(n.Category, ShouldEqual, "blues")
			}
		})

		Convey("Should suggest the closest name on a miss", func() {
			_, err := p.Lookup("ocean_blu")
			So(errors.Is(err, ErrUnknownColor), ShouldBeTrue)

			var unknown *UnknownColorError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Suggestion, ShouldEqual, "ocean_blue")
			So(err.Error(), ShouldContainSubstring, "did you mean")
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Resolving user input", t, func() {
		p, _ := Parse([]byte(sample))

		Convey("Should attach the palette name to a known hex", func() {
			n, err := p.Resolve("228B22")
			So(err, ShouldBeNil)
			So(n.Name, ShouldEqual, "forest_green")
		})

		Convey("Should accept an arbitrary hex", func() {
			n, err := p.Resolve("#123456")
			So(err, ShouldBeNil)
			So(n.Hex, ShouldEqual, "#123456")
			So(n.Category, ShouldBeEmpty)
		})

		Convey("Should fall back to names", func() {
			n, err := p.Resolve("mint")
			So(err, ShouldBeNil)
			So(n.Hex, ShouldEqual, "#3eb489")
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Searching the palette", t, func() {
		p, _ := Parse([]byte(sample))

		Convey("Should match subsequences", func() {
			found := p.Search("blue")
			So(found, ShouldHaveLength, 2)
			So(found[0].Name, ShouldEqual, "sky_blue")
		})

		Convey("Should return nothing for unrelated queries", func() {
			So(p.Search("zzz"), ShouldBeEmpty)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Loading the active palette", t, func() {
		filesystem.SetMemMapFs()
		Reset(func() {
			viper.Set(key.PalettePath, "")
		})

		Convey("Should fall back to the built-in palette", func() {
			p, err := Load()
			So(err, ShouldBeNil)
			So(p.Len(), ShouldEqual, Builtin().Len())
		})

		Convey("Should prefer the palette in the config directory", func() {
			So(filesystem.API().WriteFile(where.Palette(), []byte(sample), 0o644), ShouldBeNil)
			p, err := Load()
			So(err, ShouldBeNil)
			So(p.Len(), ShouldEqual, 4)
		})

		Convey("Should fail when the configured path is missing", func() {
			viper.Set(key.PalettePath, "/nowhere/colors.json")
			_, err := Load()
			So(err, ShouldNotBeNil)
		})
	})
}
