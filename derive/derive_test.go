package derive

import (
	"errors"
	"fmt"
	"testing"

	"github.com/OhadRubin/workspace-colors/colorspace"
	"github.com/OhadRubin/workspace-colors/customization"
	"github.com/OhadRubin/workspace-colors/luminance"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func lightness(hex string) float64 {
	hsl, err := colorspace.HexToHSL(hex)
	if err != nil {
		panic(err)
	}
	return hsl.L
}

func TestAdaptiveBoost(t *testing.T) {
	Convey("Adaptive boost", t, func() {
		Convey("Should stay within [15,35] and never push past 75", func() {
			for l := 0.0; l <= 100; l += 0.5 {
				boost := AdaptiveBoost(l)
				So(boost, ShouldBeBetweenOrEqual, MinBoost, MaxBoost)
				So(BrightLightness(l, mo.None[float64]()), ShouldBeLessThanOrEqualTo, BrightCap)
			}
		})

		Convey("Should favor dark bases", func() {
			So(AdaptiveBoost(0), ShouldEqual, MaxBoost)
			So(AdaptiveBoost(100), ShouldEqual, MinBoost)
			So(AdaptiveBoost(20), ShouldBeGreaterThan, AdaptiveBoost(40))
		})

		Convey("An explicit boost should override the policy but keep the cap", func() {
			So(BrightLightness(10, mo.Some(5.0)), ShouldEqual, 15)
			So(BrightLightness(70, mo.Some(50.0)), ShouldEqual, BrightCap)
		})
	})
}

func TestBrightVersion(t *testing.T) {
	Convey("BrightVersion", t, func() {
		Convey("Should brighten dark colors by the adaptive boost", func() {
			bright, err := BrightVersion("#000000", mo.None[float64]())
			So(err, ShouldBeNil)
			So(bright, ShouldEqual, "#595959")
		})

		Convey("Should honor an explicit boost", func() {
			bright, err := BrightVersion("#000000", mo.Some(10.0))
			So(err, ShouldBeNil)
			So(bright, ShouldEqual, "#1a1a1a")
		})

		Convey("Should cap lightness at 75 even for very light bases", func() {
			bright, err := BrightVersion("#ffffff", mo.None[float64]())
			So(err, ShouldBeNil)
			So(bright, ShouldEqual, "#bfbfbf")
		})

		Convey("Should keep every channel-rounded result at or under the cap", func() {
			for v := 0; v < 256; v += 17 {
				for _, hex := range []string{
					fmt.Sprintf("#%02x%02x%02x", v, v, v),
					fmt.Sprintf("#%02x%02x%02x", v, 255-v, 128),
					fmt.Sprintf("#ff%02x%02x", v, v/3),
				} {
					bright, err := BrightVersion(hex, mo.None[float64]())
					So(err, ShouldBeNil)
					So(lightness(bright), ShouldBeLessThanOrEqualTo, BrightCap+0.25)
				}
			}
		})

		Convey("Should preserve hue", func() {
			base, _ := colorspace.HexToHSL("#3b5bdb")
			bright, _ := BrightVersion("#3b5bdb", mo.None[float64]())
			hsl, _ := colorspace.HexToHSL(bright)
			So(hsl.H, ShouldAlmostEqual, base.H, 1)
		})

		Convey("Should reject malformed input", func() {
			_, err := BrightVersion("#3b5bd", mo.None[float64]())
			var parseErr *colorspace.ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
		})
	})

	Convey("LegacyBrightVersion", t, func() {
		Convey("Should add a fixed 25 points", func() {
			bright, err := LegacyBrightVersion("#000000", mo.None[float64]())
			So(err, ShouldBeNil)
			So(bright, ShouldEqual, "#404040")
		})

		Convey("Should cap at full lightness", func() {
			bright, err := LegacyBrightVersion("#eeeeee", mo.None[float64]())
			So(err, ShouldBeNil)
			So(bright, ShouldEqual, "#ffffff")
		})
	})
}

func TestMutedVersion(t *testing.T) {
	Convey("MutedVersion", t, func() {
		Convey("Should lower lightness by 10", func() {
			muted, err := MutedVersion("#3b5bdb")
			So(err, ShouldBeNil)
			So(lightness(muted), ShouldAlmostEqual, lightness("#3b5bdb")-MutedDrop, 0.5)
		})

		Convey("Should floor lightness at 10", func() {
			muted, err := MutedVersion("#0a0a0a")
			So(err, ShouldBeNil)
			So(muted, ShouldEqual, "#1a1a1a")
		})
	})
}

func TestCustomizations(t *testing.T) {
	Convey("Given base #3b5bdb and its default bright variant", t, func() {
		base := "#3b5bdb"
		bright, err := BrightVersion(base, mo.None[float64]())
		So(err, ShouldBeNil)
		So(lightness(bright), ShouldBeGreaterThan, lightness(base))
		So(lightness(bright), ShouldBeLessThanOrEqualTo, BrightCap+0.25)

		styles, err := Customizations(base, bright)
		So(err, ShouldBeNil)

		Convey("It should hold exactly the managed keys", func() {
			So(styles, ShouldHaveLength, len(customization.ManagedKeys()))
			for _, k := range customization.ManagedKeys() {
				So(styles, ShouldContainKey, k)
			}
		})

		Convey("It should place base and bright where they belong", func() {
			So(styles[customization.TitleBarActiveBackground], ShouldEqual, "#3b5bdb")
			for _, k := range []string{
				customization.TitleBarInactiveBackground,
				customization.TitleBarBorder,
				customization.StatusBarBackground,
				customization.StatusBarDebuggingBackground,
				customization.TabActiveBorder,
			} {
				So(styles[k], ShouldEqual, bright)
			}
		})

		Convey("It should use a muted tone distinct from base and bright for the activity bar", func() {
			muted := styles[customization.ActivityBarBackground]
			So(muted, ShouldNotEqual, base)
			So(muted, ShouldNotEqual, bright)
			So(lightness(muted.(string)), ShouldBeLessThan, lightness(base))
		})

		Convey("Foregrounds should be black or white and chosen per background", func() {
			So(styles[customization.TitleBarActiveForeground], ShouldEqual, luminance.White)
			for _, pair := range customization.ForegroundPairs() {
				fg := styles[pair.Foreground]
				So(fg, ShouldBeIn, luminance.White, luminance.Black)
				want, _ := luminance.ChooseForeground(styles[pair.Background].(string))
				So(fg, ShouldEqual, want)
			}
		})

		Convey("Values should be canonical even for uppercase input", func() {
			upper, err := Customizations("3B5BDB", bright)
			So(err, ShouldBeNil)
			So(upper, ShouldResemble, styles)
		})
	})

	Convey("Customizations should fail on malformed input", t, func() {
		_, err := Customizations("#3b5bdb", "oops")
		So(err, ShouldNotBeNil)
		_, err = LegacyCustomizations("#12", "#3b5bdb")
		So(err, ShouldNotBeNil)
	})

	Convey("LegacyCustomizations should write only the six background keys", t, func() {
		styles, err := LegacyCustomizations("#aa2200", "#ff4d26")
		So(err, ShouldBeNil)
		So(styles, ShouldHaveLength, len(customization.LegacyKeys()))
		So(styles[customization.TitleBarActiveBackground], ShouldEqual, "#aa2200")
		So(styles, ShouldNotContainKey, customization.TitleBarActiveForeground)
	})
}

func TestDeriver(t *testing.T) {
	Convey("Deriver", t, func() {
		Convey("ParseVariant should accept known names", func() {
			v, err := ParseVariant("Legacy")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, Legacy)

			v, err = ParseVariant("")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, Adaptive)

			_, err = ParseVariant("loud")
			So(err, ShouldNotBeNil)
		})

		Convey("Adaptive derivation should produce the full palette", func() {
			d, err := New().Derive("#3B5BDB")
			So(err, ShouldBeNil)
			So(d.Base, ShouldEqual, "#3b5bdb")
			So(d.Customizations, ShouldHaveLength, 13)
			So(d.Customizations[customization.ActivityBarBackground], ShouldEqual, d.Muted)
		})

		Convey("Legacy derivation should use the fixed boost and six keys", func() {
			d, err := Deriver{Variant: Legacy, Boost: mo.None[float64]()}.Derive("#000000")
			So(err, ShouldBeNil)
			So(d.Bright, ShouldEqual, "#404040")
			So(d.Customizations, ShouldHaveLength, 6)
		})

		Convey("Report should grade every foreground pair", func() {
			d, err := New().Derive("#3b5bdb")
			So(err, ShouldBeNil)
			entries, err := Report(d.Customizations)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, len(customization.ForegroundPairs()))
			for _, e := range entries {
				So(e.Ratio, ShouldBeGreaterThanOrEqualTo, 1)
				So(e.Grade, ShouldBeIn, luminance.OK, luminance.Low, luminance.Bad)
			}
		})

		Convey("Report should skip legacy maps that carry no foregrounds", func() {
			d, _ := Deriver{Variant: Legacy}.Derive("#3b5bdb")
			entries, err := Report(d.Customizations)
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})

		Convey("Report should surface malformed values", func() {
			_, err := Report(customization.StyleMap{
				customization.StatusBarBackground: "#12",
				customization.StatusBarForeground: "#ffffff",
			})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestReport(t *testing.T) {
	Convey("Report", t, func() {
		Convey("Should grade every foreground pair of a full palette", func() {
			d, err := New().Derive("#3b5bdb")
			So(err, ShouldBeNil)

			report, err := Report(d.Customizations)
			So(err, ShouldBeNil)
			So(report, ShouldHaveLength, len(customization.ForegroundPairs()))

			for _, e := range report {
				So(e.Ratio, ShouldBeGreaterThanOrEqualTo, 1)
				So(e.Grade, ShouldBeIn, luminance.OK, luminance.Low, luminance.Bad)
				So(e.Background, ShouldEqual, d.Customizations[e.BackgroundKey])
			}
		})

		Convey("Should skip pairs missing a side", func() {
			styles, err := LegacyCustomizations("#3b5bdb", "#7089e6")
			So(err, ShouldBeNil)

			report, err := Report(styles)
			So(err, ShouldBeNil)
			So(report, ShouldBeEmpty)
		})

		Convey("Should name the pair holding an invalid color", func() {
			_, err := Report(customization.StyleMap{
				customization.StatusBarBackground: "#nothex",
				customization.StatusBarForeground: "#ffffff",
			})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, customization.StatusBarForeground)
		})
	})
}

func TestCustomizationsForegrounds(t *testing.T) {
	Convey("Every foreground should be the one chosen for its background", t, func() {
		for _, base := range []string{"#000000", "#ffffff", "#808080", "#3b5bdb", "#F4D03F"} {
			bright, err := BrightVersion(base, mo.None[float64]())
			So(err, ShouldBeNil)

			styles, err := Customizations(base, bright)
			So(err, ShouldBeNil)

			for _, pair := range customization.ForegroundPairs() {
				want, err := luminance.ChooseForeground(styles[pair.Background].(string))
				So(err, ShouldBeNil)
				So(styles[pair.Foreground], ShouldEqual, want)
			}
		}
	})
}
