package mini

import (
	"fmt"

	"github.com/OhadRubin/workspace-colors/icon"
	"github.com/OhadRubin/workspace-colors/palette"
	"github.com/OhadRubin/workspace-colors/preview"
	"github.com/OhadRubin/workspace-colors/recent"
	"github.com/OhadRubin/workspace-colors/util"
	"github.com/samber/lo"
)

type state int

const (
	categorySelectState state = iota + 1
	colorSelectState
	recentSelectState
	confirmState
	quitState
)

func (m *mini) handleRecentSelectState() error {
	records, err := recent.List(0)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fail("No recently saved colors")
		m.setState(categorySelectState)
		return nil
	}

	colors := lo.Map(records, func(r *recent.Record, _ int) palette.Named {
		return r.Named()
	})

	title("Recently Saved")
	b, named, err := menu(colors, colorLabel)
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.newState(quitState)
		return nil
	case back:
		m.newState(categorySelectState)
		return nil
	}

	m.selectedColor = named
	return m.pick()
}

func (m *mini) handleCategorySelectState() error {
	title("Select Category")
	b, c, err := menu(m.options.Palette.Categories, func(c palette.Category) string {
		return fmt.Sprintf("%s (%s)", util.Humanize(c.Name), util.Quantify(len(c.Colors), "color", "colors"))
	})
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.newState(quitState)
		return nil
	case back:
		m.previousState()
		return nil
	}

	m.selectedCategory = c
	m.newState(colorSelectState)
	return nil
}

func (m *mini) handleColorSelectState() error {
	title(util.Humanize(m.selectedCategory.Name))
	b, named, err := menu(m.selectedCategory.Colors, colorLabel)
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.newState(quitState)
		return nil
	case back:
		m.previousState()
		return nil
	}

	m.selectedColor = named
	return m.pick()
}

func (m *mini) pick() error {
	erase := progress("Applying " + m.selectedColor.Name + "..")
	d, err := m.options.Session.Select(m.selectedColor)
	erase()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, preview.Window(d, m.options.Title, previewWidth))
	m.newState(confirmState)
	return nil
}

func (m *mini) handleConfirmState() error {
	save, err := confirm(fmt.Sprintf("Save %s?", m.selectedColor.Name))
	if err != nil {
		return err
	}

	if !save {
		if err := m.options.Session.Discard(); err != nil {
			return err
		}
		m.previousState()
		return nil
	}

	if err := m.options.Session.Commit(); err != nil {
		return err
	}

	success(fmt.Sprintf("%s Saved %s", icon.Get(icon.Saved), m.selectedColor))
	m.setState(quitState)
	return nil
}

func colorLabel(n palette.Named) string {
	return fmt.Sprintf("%s %s %s", preview.Swatch(n.Hex), util.Humanize(n.Name), n.Hex)
}
