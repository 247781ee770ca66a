package mini

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/OhadRubin/workspace-colors/util"
)

var out io.Writer = os.Stdout

// askOne is swapped in tests.
var askOne = survey.AskOne

type bind int

const (
	none bind = iota
	back
	quit
)

const (
	backOption = "← Back"
	quitOption = "✕ Quit"
)

func title(t string) {
	fmt.Fprintln(out, style.Title(t))
}

func fail(t string) {
	fmt.Fprintln(out, style.Fg(style.ErrorColor)(t))
}

func success(t string) {
	fmt.Fprintln(out, style.Fg(style.SuccessColor)(t))
}

func progress(t string) (eraser func()) {
	return util.PrintErasable(style.Faint(t))
}

// menu asks the user to pick one of items. Back and quit are always offered last.
func menu[T any](items []T, label func(T) string) (bind, T, error) {
	var zero T

	options := make([]string, 0, len(items)+2)
	for _, item := range items {
		options = append(options, label(item))
	}
	options = append(options, backOption, quitOption)

	prompt := &survey.Select{
		Message:  "Choose",
		Options:  options,
		PageSize: 15,
	}

	var index int
	if err := askOne(prompt, &index); err != nil {
		return none, zero, err
	}

	switch index {
	case len(items):
		return back, zero, nil
	case len(items) + 1:
		return quit, zero, nil
	}

	return none, items[index], nil
}

func confirm(message string) (bool, error) {
	var response bool
	err := askOne(&survey.Confirm{Message: message, Default: true}, &response)
	return response, err
}
