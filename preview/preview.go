// Package preview draws derived workspace colors in the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/OhadRubin/workspace-colors/customization"
	"github.com/OhadRubin/workspace-colors/derive"
	"github.com/OhadRubin/workspace-colors/luminance"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

// Swatch renders a two-cell block filled with hex.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

// Chip renders text on hex with a legible foreground.
func Chip(hex, text string) string {
	fg, err := luminance.ChooseForeground(hex)
	if err != nil {
		return text
	}
	return style.Tag(lipgloss.Color(fg), lipgloss.Color(hex))(text)
}

// Ramp renders steps swatches blended in CIE-L*a*b* from one color to another.
func Ramp(from, to string, steps int) (string, error) {
	a, err := colorful.Hex(from)
	if err != nil {
		return "", err
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return "", err
	}

	if steps < 2 {
		steps = 2
	}

	var sb strings.Builder
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		sb.WriteString(Swatch(a.BlendLab(b, t).Clamped().Hex()))
	}
	return sb.String(), nil
}

// Distinctness is the CIEDE2000 difference between two colors. Values under
// about 2 are hard to tell apart.
func Distinctness(a, b string) (float64, error) {
	ca, err := colorful.Hex(a)
	if err != nil {
		return 0, err
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return 0, err
	}
	return ca.DistanceCIEDE2000(cb) * 100, nil
}

// colors resolves the window parts from m. Keys a legacy map leaves out fall
// back to a computed foreground or the nearest background.
type colors struct {
	m customization.StyleMap
}

func (c colors) get(k string, fallback string) string {
	if v, ok := c.m[k].(string); ok {
		return v
	}
	return fallback
}

func (c colors) fg(k, bg string) string {
	if v, ok := c.m[k].(string); ok {
		return v
	}
	fg, err := luminance.ChooseForeground(bg)
	if err != nil {
		return luminance.White
	}
	return fg
}

// Window renders a small mock editor window painted with d.
func Window(d *derive.Derived, title string, width int) string {
	width = max(width, 24)
	c := colors{m: d.Customizations}

	titleBg := c.get(customization.TitleBarActiveBackground, d.Base)
	statusBg := c.get(customization.StatusBarBackground, d.Bright)
	activityBg := c.get(customization.ActivityBarBackground, d.Muted)
	tabBorder := c.get(customization.TabActiveBorder, d.Bright)

	block := func(fg, bg string, w int) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg)).
			Background(lipgloss.Color(bg)).
			Width(w)
	}

	titleBar := block(c.fg(customization.TitleBarActiveForeground, titleBg), titleBg, width).
		Align(lipgloss.Center).
		Render(title)

	activityFg := c.fg(customization.ActivityBarForeground, activityBg)
	activityDim := c.fg(customization.ActivityBarInactiveForeground, activityBg)
	activity := lipgloss.JoinVertical(lipgloss.Left,
		block(activityFg, activityBg, 3).Render(" ■"),
		block(activityDim, activityBg, 3).Render(" □"),
		block(activityDim, activityBg, 3).Render(" □"),
		block(activityDim, activityBg, 3).Render(""),
	)

	editorWidth := width - 3
	tab := lipgloss.NewStyle().
		Width(editorWidth).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(tabBorder)).
		Render(" main.go")
	editor := lipgloss.JoinVertical(lipgloss.Left,
		tab,
		lipgloss.NewStyle().Width(editorWidth).Foreground(style.Subtext).Render(" package main"),
		lipgloss.NewStyle().Width(editorWidth).Render(""),
	)

	statusBar := block(c.fg(customization.StatusBarForeground, statusBg), statusBg, width).
		Render(" main  " + d.Base)

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(c.get(customization.TitleBarBorder, d.Bright))).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			titleBar,
			lipgloss.JoinHorizontal(lipgloss.Top, activity, editor),
			statusBar,
		))
}

// Summary lists base, bright and muted with swatches.
func Summary(d *derive.Derived) string {
	rows := []struct{ label, hex string }{
		{"base", d.Base},
		{"bright", d.Bright},
		{"muted", d.Muted},
	}

	return strings.Join(lo.Map(rows, func(r struct{ label, hex string }, _ int) string {
		return fmt.Sprintf("%s %-7s %s", Swatch(r.hex), r.label, r.hex)
	}), "\n")
}

// ContrastTable renders graded pairs, one per line.
func ContrastTable(entries []derive.ContrastEntry) string {
	if len(entries) == 0 {
		return style.Faint("no foreground pairs to check")
	}

	width := lo.Max(lo.Map(entries, func(e derive.ContrastEntry, _ int) int {
		return len(e.ForegroundKey)
	}))

	lines := lo.Map(entries, func(e derive.ContrastEntry, _ int) string {
		sample := lipgloss.NewStyle().
			Foreground(lipgloss.Color(e.Foreground)).
			Background(lipgloss.Color(e.Background)).
			Render(" Aa ")
		return fmt.Sprintf("%s %-*s %6.2f:1  %s", sample, width, e.ForegroundKey, e.Ratio, Grade(e.Grade))
	})
	return strings.Join(lines, "\n")
}

// Grade renders a grade in its signal color.
func Grade(g luminance.Grade) string {
	switch g {
	case luminance.OK:
		return style.Fg(style.SuccessColor)(string(g))
	case luminance.Low:
		return style.Fg(style.WarningColor)(string(g))
	default:
		return style.Fg(style.ErrorColor)(string(g))
	}
}
