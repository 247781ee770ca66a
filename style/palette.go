package style

import "github.com/charmbracelet/lipgloss"

// Chrome colors for the interactive picker. The picked workspace colors are
// rendered separately and never come from here.
var (
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Mauve  = lipgloss.Color("#cba6f7")
	Red    = lipgloss.Color("#f38ba8")
	Yellow = lipgloss.Color("#f9e2af")
	Green  = lipgloss.Color("#a6e3a1")

	AccentColor  = Mauve
	SuccessColor = Green
	WarningColor = Yellow
	ErrorColor   = Red
	FaintColor   = Overlay
	BorderColor  = Surface
)
