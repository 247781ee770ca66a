package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		Convey("When the first one is newer", func() {
			Convey("Then the result should be 1", func() {
				for _, pair := range [][2]string{
					{"1.0.0", "0.9.9"},
					{"0.3.1", "0.3.0"},
					{"v0.4.0", "0.3.12"},
				} {
					c, err := Compare(pair[0], pair[1])
					So(err, ShouldBeNil)
					So(c, ShouldEqual, 1)
				}
			})
		})

		Convey("When the first one is older", func() {
			Convey("Then the result should be -1", func() {
				c, err := Compare("0.2.9", "0.3.0")
				So(err, ShouldBeNil)
				So(c, ShouldEqual, -1)
			})
		})

		Convey("When they are equal", func() {
			Convey("Then the result should be 0", func() {
				c, err := Compare("v0.3.0", "0.3.0")
				So(err, ShouldBeNil)
				So(c, ShouldEqual, 0)
			})
		})

		Convey("When one of them is malformed", func() {
			Convey("Then an error should be returned", func() {
				_, err := Compare("latest", "0.3.0")
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestReleaseURL(t *testing.T) {
	Convey("Given a version", t, func() {
		Convey("Then the release url should point at its tag", func() {
			So(releaseURL("1.2.3"), ShouldEqual, "https://github.com/OhadRubin/workspace-colors/releases/tag/v1.2.3")
		})
	})
}
