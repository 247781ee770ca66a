package customization

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestManagedKeys(t *testing.T) {
	Convey("Managed keys", t, func() {
		Convey("Should hold thirteen distinct keys", func() {
			keys := ManagedKeys()
			So(keys, ShouldHaveLength, 13)
			seen := make(map[string]bool)
			for _, k := range keys {
				So(seen[k], ShouldBeFalse)
				seen[k] = true
				So(IsManaged(k), ShouldBeTrue)
			}
		})

		Convey("Should not leak the internal slice", func() {
			keys := ManagedKeys()
			keys[0] = "editor.background"
			So(ManagedKeys()[0], ShouldEqual, TitleBarActiveBackground)
		})

		Convey("Should treat everything else as foreign", func() {
			So(IsManaged("editor.foreground"), ShouldBeFalse)
			So(IsManaged("titlebar.activebackground"), ShouldBeFalse)
		})

		Convey("Legacy and pair keys should all be managed", func() {
			for _, k := range LegacyKeys() {
				So(IsManaged(k), ShouldBeTrue)
			}
			for _, p := range ForegroundPairs() {
				So(IsManaged(p.Background), ShouldBeTrue)
				So(IsManaged(p.Foreground), ShouldBeTrue)
			}
		})
	})
}

func TestMerge(t *testing.T) {
	Convey("Given an existing style map with foreign and managed keys", t, func() {
		existing := StyleMap{
			"editor.foreground":         "#ff0000",
			"titleBar.activeBackground": "#000000",
		}
		incoming := StyleMap{
			"titleBar.activeBackground": "#3b5bdb",
			"titleBar.activeForeground": "#ffffff",
		}

		Convey("Merge should replace managed keys and keep foreign ones", func() {
			So(Merge(existing, incoming), ShouldResemble, StyleMap{
				"editor.foreground":         "#ff0000",
				"titleBar.activeBackground": "#3b5bdb",
				"titleBar.activeForeground": "#ffffff",
			})
		})

		Convey("Merge should drop stale managed keys the new palette omits", func() {
			existing[StatusBarBackground] = "#111111"
			merged := Merge(existing, incoming)
			So(merged, ShouldNotContainKey, StatusBarBackground)
		})

		Convey("Merge should not modify its arguments", func() {
			_ = Merge(existing, incoming)
			So(existing["titleBar.activeBackground"], ShouldEqual, "#000000")
			So(incoming, ShouldHaveLength, 2)
		})

		Convey("Merge should be idempotent", func() {
			once := Merge(existing, incoming)
			So(Merge(once, incoming), ShouldResemble, once)
		})

		Convey("Foreign keys should survive regardless of their value type", func() {
			existing["editor.lineHighlightBorder"] = nil
			existing["custom.nested"] = map[string]any{"a": 1.0}
			merged := Merge(existing, incoming)
			So(merged, ShouldContainKey, "editor.lineHighlightBorder")
			So(merged["custom.nested"], ShouldResemble, map[string]any{"a": 1.0})
		})

		Convey("Merge should handle nil maps", func() {
			So(Merge(nil, incoming), ShouldResemble, incoming)
			So(Merge(existing, nil), ShouldResemble, StyleMap{"editor.foreground": "#ff0000"})
			So(Merge(nil, nil), ShouldBeEmpty)
		})
	})
}

func TestClear(t *testing.T) {
	Convey("Clear", t, func() {
		Convey("Should signal unset when only managed keys exist", func() {
			existing := StyleMap{
				TitleBarActiveBackground: "#3b5bdb",
				TabActiveBorder:          "#6b85e4",
			}
			So(Clear(existing).IsAbsent(), ShouldBeTrue)
		})

		Convey("Should signal unset for an empty or nil map", func() {
			So(Clear(StyleMap{}).IsAbsent(), ShouldBeTrue)
			So(Clear(nil).IsAbsent(), ShouldBeTrue)
		})

		Convey("Should return the foreign keys of a mixed map", func() {
			existing := StyleMap{
				TitleBarActiveBackground: "#3b5bdb",
				"editor.background":      "#1e1e1e",
			}
			rest, ok := Clear(existing).Get()
			So(ok, ShouldBeTrue)
			So(rest, ShouldResemble, StyleMap{"editor.background": "#1e1e1e"})
			So(existing, ShouldHaveLength, 2)
		})

		Convey("Managed should pick only managed entries", func() {
			m := StyleMap{TitleBarBorder: "#ffffff", "editor.background": "#000000"}
			So(Managed(m), ShouldResemble, StyleMap{TitleBarBorder: "#ffffff"})
		})
	})
}
