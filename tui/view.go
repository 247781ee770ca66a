package tui

import (
	"fmt"
	"strings"

	"github.com/OhadRubin/workspace-colors/derive"
	"github.com/OhadRubin/workspace-colors/icon"
	"github.com/OhadRubin/workspace-colors/preview"
	"github.com/OhadRubin/workspace-colors/session"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case categoriesState:
		output = listExtraPaddingStyle.Render(b.categoriesC.View())
	case colorsState:
		output = b.viewWithPreview(b.colorsC.View())
	case recentState:
		output = b.viewWithPreview(b.recentC.View())
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewWithPreview(listView string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		listExtraPaddingStyle.Render(listView),
		paddingStyle.Render(b.viewPreview(b.width/2)),
	)
}

func stateTag(s session.State) string {
	switch s {
	case session.Pending:
		return style.Tag(style.Surface, style.WarningColor)(icon.Get(icon.Pending) + " pending")
	case session.Saved:
		return style.Tag(style.Surface, style.SuccessColor)(icon.Get(icon.Saved) + " saved")
	case session.Previewing:
		return style.Tag(style.Surface, style.AccentColor)(icon.Get(icon.Preview) + " preview")
	default:
		return style.Tag(style.Text, style.Surface)(s.String())
	}
}

func (b *statefulBubble) viewPreview(width int) string {
	s := b.options.Session
	d := s.Derived()

	lines := []string{stateTag(s.State()), ""}
	if d == nil {
		lines = append(lines, style.Faint("move the cursor over a color to preview it"))
		return strings.Join(lines, "\n")
	}

	named := s.Current().MustGet()
	lines = append(lines,
		style.Bold(truncate.StringWithTail(named.String(), uint(max(width, 10)), "…")),
		"",
		preview.Window(d, b.options.Title, max(width-4, 24)),
		"",
		preview.Summary(d),
	)

	if report, err := derive.Report(d.Customizations); err == nil {
		lines = append(lines, "", preview.ContrastTable(report))
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewError() string {
	errorMsg := wrap.String(style.Fg(style.ErrorColor)(fmt.Sprintf("%v", b.lastError)), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
