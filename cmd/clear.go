package cmd

import (
	"errors"
	"fmt"

	"github.com/OhadRubin/workspace-colors/filesystem"
	"github.com/OhadRubin/workspace-colors/icon"
	"github.com/OhadRubin/workspace-colors/recent"
	"github.com/OhadRubin/workspace-colors/util"
	"github.com/OhadRubin/workspace-colors/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is an application artifact that clear can remove alongside the workspace colors.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

var errNothingToClear = errors.New("nothing to clear, pass --recent or --cache")

var clearTargets = []clearTarget{
	{"recent colors", "recent", mo.Some("r"), recent.Forget},
	{"cache directory", "cache", mo.Some("c"), func() error {
		return filesystem.API().RemoveAll(where.Cache())
	}},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolP("keep-colors", "k", false, "Leave the workspace colors alone and only clear the selected artifacts")
	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd strips the managed colors from the workspace settings.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the workspace colors, keeping every other customization",
	Long: `Remove every color this tool manages from the workspace settings.
Other customizations are kept. When none are left the whole section is removed.`,
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if lo.Must(cmd.Flags().GetBool(target.argLong)) {
				anyCleared = true
				e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
				err := target.clear()
				e()
				handleErr(err)
				fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
			}
		}

		if lo.Must(cmd.Flags().GetBool("keep-colors")) {
			if !anyCleared {
				handleErr(errNothingToClear)
			}
			return
		}

		store := workspaceStore(cmd)
		handleErr(store.Clear())
		fmt.Printf("%s %s workspace colors cleared from %s\n", icon.Get(icon.Success), icon.Get(icon.Cleared), store.Path)
	},
}
