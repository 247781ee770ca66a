package session

import (
	"errors"
	"testing"

	"github.com/OhadRubin/workspace-colors/customization"
	"github.com/OhadRubin/workspace-colors/derive"
	"github.com/OhadRubin/workspace-colors/filesystem"
	"github.com/OhadRubin/workspace-colors/palette"
	"github.com/OhadRubin/workspace-colors/settings"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type memoryStore struct {
	section mo.Option[customization.StyleMap]
	writes  int
}

func (m *memoryStore) Customizations() (customization.StyleMap, error) {
	return m.section.OrElse(customization.StyleMap{}), nil
}

func (m *memoryStore) Section() (mo.Option[customization.StyleMap], error) {
	return m.section, nil
}

func (m *memoryStore) Apply(incoming customization.StyleMap) error {
	m.writes++
	current, _ := m.Customizations()
	m.section = mo.Some(customization.Merge(current, incoming))
	return nil
}

func (m *memoryStore) Clear() error {
	m.writes++
	current, _ := m.Customizations()
	m.section = customization.Clear(current)
	return nil
}

func (m *memoryStore) Replace(section mo.Option[customization.StyleMap]) error {
	m.writes++
	m.section = section
	return nil
}

func (m *memoryStore) get(k string) any {
	section, _ := m.Customizations()
	return section[k]
}

var (
	royal  = palette.Named{Name: "royal_blue", Hex: "#3b5bdb", Category: "blues"}
	forest = palette.Named{Name: "forest_green", Hex: "#228b22", Category: "greens"}
)

func newSession(store *memoryStore, live bool) (*Session, *[]palette.Named) {
	s, err := New(store, derive.New(), live)
	So(err, ShouldBeNil)

	remembered := &[]palette.Named{}
	s.Remember = func(n palette.Named) error {
		*remembered = append(*remembered, n)
		return nil
	}
	return s, remembered
}

func TestSession(t *testing.T) {
	Convey("Given a workspace with foreign customizations", t, func() {
		store := &memoryStore{section: mo.Some(customization.StyleMap{"editor.foreground": "#ff0000"})}
		s, remembered := newSession(store, true)

		So(s.State(), ShouldEqual, Idle)

		Convey("Hover should preview the color", func() {
			d, err := s.Hover(royal)
			So(err, ShouldBeNil)
			So(d.Base, ShouldEqual, "#3b5bdb")
			So(s.State(), ShouldEqual, Previewing)
			So(store.get(customization.TitleBarActiveBackground), ShouldEqual, "#3b5bdb")
			So(store.get("editor.foreground"), ShouldEqual, "#ff0000")
		})

		Convey("Commit without a selection should fail", func() {
			So(errors.Is(s.Commit(), ErrNothingPending), ShouldBeTrue)

			_, _ = s.Hover(royal)
			So(errors.Is(s.Commit(), ErrNothingPending), ShouldBeTrue)
		})

		Convey("Select then Commit should save and remember", func() {
			_, err := s.Select(forest)
			So(err, ShouldBeNil)
			So(s.State(), ShouldEqual, Pending)

			So(s.Commit(), ShouldBeNil)
			So(s.State(), ShouldEqual, Saved)
			So(*remembered, ShouldResemble, []palette.Named{forest})
			So(store.get(customization.TitleBarActiveBackground), ShouldEqual, "#228b22")
		})

		Convey("Clear should strip managed keys and go idle", func() {
			_, _ = s.Select(forest)
			So(s.Clear(), ShouldBeNil)
			So(s.State(), ShouldEqual, Idle)
			So(s.Current().IsAbsent(), ShouldBeTrue)

			section, _ := store.Customizations()
			So(section, ShouldResemble, customization.StyleMap{"editor.foreground": "#ff0000"})
		})

		Convey("Restore should put back the starting section", func() {
			_, _ = s.Select(forest)
			_ = s.Commit()
			So(s.Restore(), ShouldBeNil)
			So(s.State(), ShouldEqual, Idle)

			section, _ := store.Customizations()
			So(section, ShouldResemble, customization.StyleMap{"editor.foreground": "#ff0000"})
		})

		Convey("Discard should bring back the committed palette after more previews", func() {
			_, _ = s.Select(forest)
			_ = s.Commit()
			_, _ = s.Hover(royal)
			So(store.get(customization.TitleBarActiveBackground), ShouldEqual, "#3b5bdb")

			So(s.Discard(), ShouldBeNil)
			So(store.get(customization.TitleBarActiveBackground), ShouldEqual, "#228b22")
		})

		Convey("Discard without commits should fall back to the snapshot", func() {
			_, _ = s.Hover(royal)
			So(s.Discard(), ShouldBeNil)

			section, _ := store.Customizations()
			So(section, ShouldResemble, customization.StyleMap{"editor.foreground": "#ff0000"})
		})

		Convey("Discard after Clear should keep the workspace cleared", func() {
			_, _ = s.Select(forest)
			_ = s.Commit()
			So(s.Clear(), ShouldBeNil)
			_, _ = s.Hover(royal)

			So(s.Discard(), ShouldBeNil)
			section, _ := store.Customizations()
			So(section, ShouldResemble, customization.StyleMap{"editor.foreground": "#ff0000"})
		})

		Convey("Discard should not write when nothing changed", func() {
			writes := store.writes
			So(s.Discard(), ShouldBeNil)
			So(store.writes, ShouldEqual, writes)
		})

		Convey("An invalid color should leave the state alone", func() {
			_, err := s.Hover(palette.Named{Name: "broken", Hex: "#12"})
			So(err, ShouldNotBeNil)
			So(s.State(), ShouldEqual, Idle)
		})
	})

	Convey("Given live preview is off", t, func() {
		store := &memoryStore{section: mo.None[customization.StyleMap]()}
		s, _ := newSession(store, false)

		Convey("Hover should not touch the store", func() {
			_, err := s.Hover(royal)
			So(err, ShouldBeNil)
			So(s.State(), ShouldEqual, Previewing)
			So(store.writes, ShouldEqual, 0)
		})

		Convey("Restore should unset a section that did not exist", func() {
			_, _ = s.Select(royal)
			So(s.Restore(), ShouldBeNil)
			So(store.section.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given an empty but present section", t, func() {
		store := &memoryStore{section: mo.Some(customization.StyleMap{})}
		s, _ := newSession(store, true)

		Convey("Restore should put back the empty section", func() {
			_, _ = s.Hover(royal)
			So(s.Restore(), ShouldBeNil)

			section, ok := store.section.Get()
			So(ok, ShouldBeTrue)
			So(section, ShouldBeEmpty)
		})

		Convey("Discard should put back the empty section", func() {
			_, _ = s.Hover(royal)
			So(s.Discard(), ShouldBeNil)
			So(store.section.IsPresent(), ShouldBeTrue)
		})
	})
}

func TestSessionWithSettingsFile(t *testing.T) {
	Convey("Given a settings file on disk", t, func() {
		filesystem.SetMemMapFs()
		store := &settings.Store{Path: "/ws/.vscode/settings.json", Key: "workbench.colorCustomizations", Indent: 2}

		s, err := New(store, derive.New(), false)
		So(err, ShouldBeNil)
		s.Remember = nil

		Convey("Saving then clearing should leave no section behind", func() {
			_, err := s.Select(royal)
			So(err, ShouldBeNil)
			So(s.Commit(), ShouldBeNil)

			section, _ := store.Customizations()
			So(section, ShouldHaveLength, len(customization.ManagedKeys()))

			So(s.Clear(), ShouldBeNil)
			section, _ = store.Customizations()
			So(section, ShouldBeEmpty)
		})
	})
}

func TestSessionKeepsEmptySection(t *testing.T) {
	Convey("Given a settings file with an empty section", t, func() {
		filesystem.SetMemMapFs()
		store := &settings.Store{Path: "/ws/.vscode/settings.json", Key: "workbench.colorCustomizations", Indent: 2}
		So(filesystem.API().WriteFile(store.Path, []byte(`{"workbench.colorCustomizations": {}}`), 0o644), ShouldBeNil)

		s, err := New(store, derive.New(), true)
		So(err, ShouldBeNil)
		s.Remember = nil

		Convey("Hover then Restore should leave the empty section in place", func() {
			_, err := s.Hover(royal)
			So(err, ShouldBeNil)
			So(s.Restore(), ShouldBeNil)

			section, err := store.Section()
			So(err, ShouldBeNil)
			So(section.IsPresent(), ShouldBeTrue)
			So(section.MustGet(), ShouldBeEmpty)

			data, _ := filesystem.API().ReadFile(store.Path)
			So(string(data), ShouldContainSubstring, `"workbench.colorCustomizations": {}`)
		})
	})
}

func TestStateString(t *testing.T) {
	Convey("State names", t, func() {
		So(Pending.String(), ShouldEqual, "pending")
		So(State(9).String(), ShouldEqual, "State(9)")
	})
}
