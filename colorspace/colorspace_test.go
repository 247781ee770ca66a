package colorspace

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseHex(t *testing.T) {
	Convey("ParseHex", t, func() {
		Convey("Should accept an optional # prefix and any case", func() {
			a, err := ParseHex("#3B5BDB")
			So(err, ShouldBeNil)
			b, err := ParseHex("3b5bdb")
			So(err, ShouldBeNil)
			So(a, ShouldResemble, b)
			So(a, ShouldResemble, Color{R: 0x3b, G: 0x5b, B: 0xdb})
			So(a.Hex(), ShouldEqual, "#3b5bdb")
		})

		Convey("Should zero-pad channels", func() {
			So(Color{R: 1, G: 2, B: 3}.Hex(), ShouldEqual, "#010203")
		})

		Convey("Should reject malformed input with a ParseError", func() {
			for _, input := range []string{"", "#", "#fff", "#12345", "1234567", "#12345g", "zzzzzz", "##123456", "+12345"} {
				_, err := ParseHex(input)
				So(err, ShouldNotBeNil)

				var parseErr *ParseError
				So(errors.As(err, &parseErr), ShouldBeTrue)
				So(parseErr.Input, ShouldEqual, input)
			}
		})

		Convey("Normalize should lowercase and prefix", func() {
			hex, err := Normalize("AbCdEf")
			So(err, ShouldBeNil)
			So(hex, ShouldEqual, "#abcdef")
		})
	})
}

func TestHexToHSL(t *testing.T) {
	Convey("HexToHSL", t, func() {
		Convey("Should convert primaries", func() {
			hsl, err := HexToHSL("#ff0000")
			So(err, ShouldBeNil)
			So(hsl.H, ShouldAlmostEqual, 0, 1e-9)
			So(hsl.S, ShouldAlmostEqual, 100, 1e-9)
			So(hsl.L, ShouldAlmostEqual, 50, 1e-9)

			hsl = mustHSL(HexToHSL("#00ff00"))
			So(hsl.H, ShouldAlmostEqual, 120, 1e-9)

			hsl = mustHSL(HexToHSL("#0000ff"))
			So(hsl.H, ShouldAlmostEqual, 240, 1e-9)
		})

		Convey("Should keep hue in [0,360) for magenta-ish colors", func() {
			hsl := mustHSL(HexToHSL("#ff0080"))
			So(hsl.H, ShouldBeGreaterThanOrEqualTo, 0)
			So(hsl.H, ShouldBeLessThan, 360)
			So(hsl.H, ShouldAlmostEqual, 329.88, 0.01)
		})

		Convey("Should match the classical derivation", func() {
			hsl := mustHSL(HexToHSL("#3b5bdb"))
			So(hsl.H, ShouldAlmostEqual, 228, 0.01)
			So(hsl.S, ShouldAlmostEqual, 68.97, 0.01)
			So(hsl.L, ShouldAlmostEqual, 54.51, 0.01)
		})

		Convey("Should yield zero hue and saturation for greys", func() {
			for _, hex := range []string{"#000000", "#808080", "#ffffff", "#3d3d3d"} {
				hsl := mustHSL(HexToHSL(hex))
				So(hsl.H, ShouldEqual, 0)
				So(hsl.S, ShouldEqual, 0)
			}
			So(mustHSL(HexToHSL("#808080")).L, ShouldAlmostEqual, 50.196, 0.001)
		})

		Convey("Should propagate ParseError", func() {
			_, err := HexToHSL("#80808")
			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
		})
	})
}

func TestHSLToHex(t *testing.T) {
	Convey("HSLToHex", t, func() {
		Convey("Should convert primaries", func() {
			So(HSLToHex(0, 100, 50), ShouldEqual, "#ff0000")
			So(HSLToHex(120, 100, 50), ShouldEqual, "#00ff00")
			So(HSLToHex(240, 100, 50), ShouldEqual, "#0000ff")
		})

		Convey("Should round channels to the nearest integer", func() {
			So(HSLToHex(120, 100, 25), ShouldEqual, "#008000")
			So(HSLToHex(0, 0, 50), ShouldEqual, "#808080")
		})

		Convey("Should set every channel to lightness when unsaturated", func() {
			So(HSLToHex(200, 0, 0), ShouldEqual, "#000000")
			So(HSLToHex(200, 0, 100), ShouldEqual, "#ffffff")
		})

		Convey("Should wrap hue and clamp saturation and lightness", func() {
			So(HSLToHex(480, 100, 50), ShouldEqual, HSLToHex(120, 100, 50))
			So(HSLToHex(-240, 100, 50), ShouldEqual, HSLToHex(120, 100, 50))
			So(HSLToHex(0, 150, 50), ShouldEqual, HSLToHex(0, 100, 50))
			So(HSLToHex(0, -20, 50), ShouldEqual, HSLToHex(0, 0, 50))
			So(HSLToHex(0, 100, 120), ShouldEqual, "#ffffff")
			So(HSLToHex(0, 100, -5), ShouldEqual, "#000000")
		})
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Decoding and re-encoding should not drift more than one unit per channel", t, func() {
		within := func(a, b uint8) bool {
			return math.Abs(float64(a)-float64(b)) <= 1
		}

		drifted := 0
		for r := 0; r < 256; r += 5 {
			for g := 0; g < 256; g += 5 {
				for b := 0; b < 256; b += 5 {
					c := Color{R: uint8(r), G: uint8(g), B: uint8(b)}
					hsl := mustHSL(HexToHSL(c.Hex()))
					back, err := ParseHex(hsl.Hex())
					if err != nil || !within(c.R, back.R) || !within(c.G, back.G) || !within(c.B, back.B) {
						drifted++
					}
				}
			}
		}

		So(drifted, ShouldEqual, 0)
	})
}

func mustHSL(hsl HSL, err error) HSL {
	if err != nil {
		panic(err)
	}
	return hsl
}
