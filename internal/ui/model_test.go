package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := &Model{}

		Convey("Notify should set the text and schedule a clear", func() {
			cmd := m.Update(Notify("Saved")())
			So(cmd, ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "Saved")
			So(m.View("a\nb"), ShouldContainSubstring, "Saved")
		})

		Convey("A stale clear should not remove a newer notification", func() {
			m.Update(NotificationMsg("first"))
			stale := ClearNotificationMsg{at: m.notifiedAt.Add(-1)}
			m.Update(stale)
			So(m.Current(), ShouldEqual, "first")

			m.Update(ClearNotificationMsg{at: m.notifiedAt})
			So(m.Current(), ShouldBeEmpty)
		})

		Convey("View should pass content through when idle", func() {
			So(m.View("content"), ShouldEqual, "content")
		})
	})
}
