package version

import (
	"fmt"

	"github.com/OhadRubin/workspace-colors/color"
	"github.com/OhadRubin/workspace-colors/constant"
	"github.com/OhadRubin/workspace-colors/icon"
	"github.com/OhadRubin/workspace-colors/key"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/OhadRubin/workspace-colors/util"
	"github.com/spf13/viper"
)

func releaseURL(version string) string {
	return fmt.Sprintf("https://github.com/%s/releases/tag/v%s", constant.Repository, version)
}

// Notify prints a banner when a newer release than the running one exists.
// It stays silent when the check is disabled or fails.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(
		"\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(you're on %s)", constant.Version)),
		style.Faint(releaseURL(latest)),
	)
}
