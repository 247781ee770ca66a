// Package ui provides ephemeral notifications for bubbletea models.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Lifetime is how long a notification stays on screen.
var Lifetime = 3 * time.Second

// Model holds the current notification.
type Model struct {
	notification string
	notifiedAt   time.Time
	style        lipgloss.Style
}

// NotificationMsg replaces the current notification.
type NotificationMsg string

// ClearNotificationMsg resets the notification once its lifetime is over.
type ClearNotificationMsg struct {
	at time.Time
}

// Notify returns a tea.Cmd that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

func clearAfter(at time.Time) tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{at: at}
	})
}

// Update processes notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		m.notifiedAt = time.Now()
		return clearAfter(m.notifiedAt)
	case ClearNotificationMsg:
		// a newer notification restarts the clock
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the notification on screen, if any.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	notifier := m.style.Faint(true).Render(m.notification)
	lines[len(lines)-1] = lines[len(lines)-1] + "  " + notifier
	return strings.Join(lines, "\n")
}
