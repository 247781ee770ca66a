package tui

import (
	"github.com/OhadRubin/workspace-colors/palette"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, cmd
	case hoverMsg:
		return b, tea.Batch(cmd, b.hover(msg))
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if bubblesKey.Matches(msg, b.keymap.back) {
			if l := b.current(); b.state != errorState && l.FilterState() != list.Unfiltered {
				var listCmd tea.Cmd
				*l, listCmd = l.Update(msg)
				return b, tea.Batch(cmd, listCmd)
			}

			b.previousState()
			return b, tea.Batch(cmd, b.scheduleHover())
		}
	}

	switch b.state {
	case categoriesState:
		return b.updateCategories(msg, cmd)
	case colorsState, recentState:
		return b.updateColors(msg, cmd)
	case errorState:
		return b.updateError(msg, cmd)
	}

	return b, cmd
}

// filtering reports whether the active list is capturing keys for its filter.
func (b *statefulBubble) filtering() bool {
	return b.current().FilterState() == list.Filtering
}

func (b *statefulBubble) updateCategories(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.filtering() {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.categoriesC.SelectedItem().(*listItem); ok {
				if c, ok := item.internal.(palette.Category); ok {
					return b, tea.Batch(cmd, b.openCategory(c))
				}
			}
			return b, cmd
		case bubblesKey.Matches(msg, b.keymap.recent):
			if err := b.loadRecent(); err != nil {
				b.raiseError(err)
				return b, cmd
			}
			b.newState(recentState)
			return b, tea.Batch(cmd, b.scheduleHover())
		case bubblesKey.Matches(msg, b.keymap.clear):
			return b, tea.Batch(cmd, b.clear())
		case bubblesKey.Matches(msg, b.keymap.restore):
			return b, tea.Batch(cmd, b.restore())
		}
	}

	var listCmd tea.Cmd
	b.categoriesC, listCmd = b.categoriesC.Update(msg)
	return b, tea.Batch(cmd, listCmd)
}

func (b *statefulBubble) updateColors(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.filtering() {
		switch {
		case bubblesKey.Matches(msg, b.keymap.pick):
			return b, tea.Batch(cmd, b.pick())
		case bubblesKey.Matches(msg, b.keymap.save):
			return b, tea.Batch(cmd, b.save())
		case bubblesKey.Matches(msg, b.keymap.clear):
			return b, tea.Batch(cmd, b.clear())
		case bubblesKey.Matches(msg, b.keymap.restore):
			return b, tea.Batch(cmd, b.restore())
		}
	}

	l := b.current()
	var listCmd tea.Cmd
	*l, listCmd = l.Update(msg)
	return b, tea.Batch(cmd, listCmd, b.scheduleHover())
}

func (b *statefulBubble) updateError(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return b, tea.Quit
	}
	return b, cmd
}
