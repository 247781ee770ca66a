// Package color holds the terminal colors used for CLI chrome.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from an ANSI index or hex string.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI colors.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
)

// High-intensity ANSI colors.
var (
	HiRed    = New("9")
	HiYellow = New("11")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Hex accents.
var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)
