// Package tui provides the interactive color picker.
package tui

import (
	"errors"

	"github.com/OhadRubin/workspace-colors/palette"
	"github.com/OhadRubin/workspace-colors/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the picker.
type Options struct {
	Session *session.Session
	Palette *palette.Palette
	// Recent starts from the recently saved colors.
	Recent bool
	// Title is shown in the preview window, usually the workspace name.
	Title string
}

// Run executes the picker. Previews that were never saved are undone on exit.
func Run(options *Options) error {
	bubble := newBubble(options)

	if options.Recent {
		if err := bubble.loadRecent(); err != nil {
			return err
		}
		bubble.newState(recentState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return errors.Join(err, options.Session.Discard())
}
