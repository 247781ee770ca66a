package tui

import (
	"fmt"
	"time"

	"github.com/OhadRubin/workspace-colors/icon"
	"github.com/OhadRubin/workspace-colors/internal/ui"
	"github.com/OhadRubin/workspace-colors/palette"
	"github.com/OhadRubin/workspace-colors/recent"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

type hoverMsg struct {
	id int
}

func (b *statefulBubble) categoryItems() []list.Item {
	return lo.Map(b.options.Palette.Categories, func(c palette.Category, _ int) list.Item {
		return &listItem{internal: c}
	})
}

func (b *statefulBubble) openCategory(c palette.Category) tea.Cmd {
	items := lo.Map(c.Colors, func(n palette.Named, _ int) list.Item {
		return &listItem{internal: n}
	})

	b.colorsC.Title = c.Name
	cmd := b.colorsC.SetItems(items)
	b.colorsC.ResetSelected()
	b.colorsC.ResetFilter()
	b.newState(colorsState)

	return tea.Batch(cmd, b.scheduleHover())
}

func (b *statefulBubble) loadRecent() error {
	records, err := recent.List(0)
	if err != nil {
		return err
	}

	b.recentC.SetItems(lo.Map(records, func(r *recent.Record, _ int) list.Item {
		return &listItem{internal: r}
	}))
	b.recentC.ResetSelected()
	return nil
}

func (b *statefulBubble) selectedNamed() (palette.Named, bool) {
	item, ok := b.current().SelectedItem().(*listItem)
	if !ok {
		return palette.Named{}, false
	}
	return item.named()
}

// scheduleHover previews the item under the cursor once it stays there for hoverDelay.
func (b *statefulBubble) scheduleHover() tea.Cmd {
	named, ok := b.selectedNamed()
	if !ok || named.Hex == b.hovered {
		return nil
	}

	b.hoverID++
	id := b.hoverID
	return tea.Tick(hoverDelay, func(time.Time) tea.Msg {
		return hoverMsg{id: id}
	})
}

func (b *statefulBubble) hover(msg hoverMsg) tea.Cmd {
	if msg.id != b.hoverID {
		return nil
	}

	named, ok := b.selectedNamed()
	if !ok {
		return nil
	}

	if _, err := b.options.Session.Hover(named); err != nil {
		b.raiseError(err)
		return nil
	}
	b.hovered = named.Hex
	return nil
}

func (b *statefulBubble) pick() tea.Cmd {
	named, ok := b.selectedNamed()
	if !ok {
		return nil
	}

	if _, err := b.options.Session.Select(named); err != nil {
		b.raiseError(err)
		return nil
	}
	b.hovered = named.Hex
	return ui.Notify(fmt.Sprintf("%s %s selected, press s to save", icon.Get(icon.Pending), named.Name))
}

func (b *statefulBubble) save() tea.Cmd {
	if err := b.options.Session.Commit(); err != nil {
		return ui.Notify(fmt.Sprintf("%s %s", icon.Get(icon.Fail), err))
	}

	b.markSaved()
	named := b.options.Session.Current().MustGet()
	return ui.Notify(fmt.Sprintf("%s Saved %s", icon.Get(icon.Saved), named.Name))
}

func (b *statefulBubble) clear() tea.Cmd {
	if err := b.options.Session.Clear(); err != nil {
		b.raiseError(err)
		return nil
	}

	b.settle()
	return ui.Notify(icon.Get(icon.Cleared) + " Workspace colors cleared")
}

func (b *statefulBubble) restore() tea.Cmd {
	if err := b.options.Session.Restore(); err != nil {
		b.raiseError(err)
		return nil
	}

	b.settle()
	return ui.Notify(icon.Get(icon.Success) + " Previous colors restored")
}

// settle stops the item under the cursor from being previewed again until the cursor moves.
func (b *statefulBubble) settle() {
	b.hovered = ""
	if named, ok := b.selectedNamed(); ok {
		b.hovered = named.Hex
	}
	b.markSaved()
}

// markSaved flags the committed color in the visible lists.
func (b *statefulBubble) markSaved() {
	saved := ""
	if named, ok := b.options.Session.Current().Get(); ok {
		saved = named.Hex
	}

	for _, l := range []*list.Model{&b.colorsC, &b.recentC} {
		for _, it := range l.Items() {
			item := it.(*listItem)
			named, _ := item.named()
			item.marked = saved != "" && named.Hex == saved
		}
	}
}
