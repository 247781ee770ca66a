// Package util provides small domain-agnostic helpers.
package util

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// Quantify returns "1 color" / "3 colors".
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize upper-cases the first byte of s.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Humanize turns snake_case palette names into "Snake case".
func Humanize(s string) string {
	return Capitalize(strings.ReplaceAll(s, "_", " "))
}

// TerminalSize retrieves the character dimensions of stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// PrintErasable prints msg without a newline and returns a func that erases it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore calls f and discards its error.
func Ignore(f func() error) {
	_ = f()
}

// Clamp bounds v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
