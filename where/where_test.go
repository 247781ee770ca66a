package where

import (
	"path/filepath"
	"testing"

	"github.com/OhadRubin/workspace-colors/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config() should exist as a directory", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() should honor the override variable", func() {
			t.Setenv(EnvConfigPath, "/tmp/wscolors-test")
			So(Config(), ShouldEqual, "/tmp/wscolors-test")
			So(Palette(), ShouldEqual, filepath.Join("/tmp/wscolors-test", "colors.json"))
		})

		Convey("Cache() and Logs() should exist as directories", func() {
			So(lo.Must(filesystem.API().IsDir(Cache())), ShouldBeTrue)
			So(lo.Must(filesystem.API().IsDir(Logs())), ShouldBeTrue)
		})

		Convey("Recent() should live in the cache directory", func() {
			So(filepath.Dir(Recent()), ShouldEqual, Cache())
		})
	})
}
