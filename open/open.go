// Package open launches files with the default system handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	windows = "windows"
	darwin  = "darwin"
	linux   = "linux"
	android = "android"
)

// Start opens input with the default handler without waiting for it.
func Start(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// StartWith is Start with an explicit application. An empty app falls back to Start.
func StartWith(input, app string) error {
	if app == "" {
		return Start(input)
	}
	cmd, ok := commandWith(input, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case darwin:
		return exec.Command("open", input), true
	case linux:
		return exec.Command("xdg-open", input), true
	case android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}

func commandWith(input, app string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case windows:
		escaped := strings.ReplaceAll(input, "&", "^&")
		return exec.Command("cmd", "/C", "start", "", app, escaped), true
	case darwin:
		return exec.Command("open", "-a", app, input), true
	case linux:
		return exec.Command(app, input), true
	case android:
		return exec.Command("termux-open", "--choose", input), true
	default:
		return nil, false
	}
}
