package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	return b.categoriesC.SetItems(b.categoryItems())
}
