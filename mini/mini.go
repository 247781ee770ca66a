// Package mini implements a line-mode color picker for terminals where the
// full interface is unwanted.
package mini

import (
	"errors"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/OhadRubin/workspace-colors/palette"
	"github.com/OhadRubin/workspace-colors/session"
	"github.com/OhadRubin/workspace-colors/util"
)

var (
	previewWidth = 48
)

type Options struct {
	Session *session.Session
	Palette *palette.Palette
	// Recent starts from the recently saved colors instead of the categories.
	Recent bool
	Title  string
}

type mini struct {
	state         state
	statesHistory util.Stack[state]

	options *Options

	selectedCategory palette.Category
	selectedColor    palette.Named
}

func newMini(options *Options) *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		options:       options,
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	} else {
		m.setState(quitState)
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if m.state != confirmState {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

func Run(options *Options) error {
	m := newMini(options)
	m.state = categorySelectState
	if options.Recent {
		m.state = recentSelectState
	}

	if w, _, err := util.TerminalSize(); err == nil {
		previewWidth = util.Clamp(w-4, 24, 72)
	}

	var err error
	for m.state != quitState {
		err = m.handleState()
		if errors.Is(err, terminal.InterruptErr) {
			err = nil
			m.setState(quitState)
		}
		if err != nil {
			break
		}
	}

	return errors.Join(err, m.options.Session.Discard())
}

func (m *mini) handleState() error {
	switch m.state {
	case recentSelectState:
		return m.handleRecentSelectState()
	case categorySelectState:
		return m.handleCategorySelectState()
	case colorSelectState:
		return m.handleColorSelectState()
	case confirmState:
		return m.handleConfirmState()
	}

	return nil
}
