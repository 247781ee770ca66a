package cmd

import (
	"os"

	"github.com/OhadRubin/workspace-colors/color"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/OhadRubin/workspace-colors/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// whereTarget is a resolvable path and its flag.
type whereTarget struct {
	name   string
	where  func() string
	flag   string
	short  string
	hidden bool
}

var wherePaths = []whereTarget{
	{name: "Config", where: where.Config, flag: "config", short: "c"},
	{name: "Palette", where: where.Palette, flag: "palette", short: "p"},
	{name: "Logs", where: where.Logs, flag: "logs", short: "l"},
	{name: "Cache", where: where.Cache, flag: "cache", hidden: true},
	{name: "Recent", where: where.Recent, flag: "recent", hidden: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range wherePaths {
		whereCmd.Flags().BoolP(t.flag, t.short, false, t.name+" path")
		if t.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(t.flag))
		}
	}

	whereCmd.Flags().Bool("settings", false, "Workspace settings file")
	whereCmd.MarkFlagsMutuallyExclusive(append(lo.Map(wherePaths, func(t whereTarget, _ int) string {
		return t.flag
	}), "settings")...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints the paths wscolors reads and writes.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths used by wscolors",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("settings")) {
			cmd.Println(workspaceStore(cmd).Path)
			return
		}

		for _, t := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(t.flag)) {
				cmd.Println(t.where())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(wherePaths, func(t whereTarget, _ int) bool {
			return t.hidden
		})

		for _, t := range visible {
			cmd.Printf("%s %s\n%s\n\n", header(t.name+"?"), style.Fg(color.Yellow)("--"+t.flag), t.where())
		}
		cmd.Printf("%s %s\n%s\n", header("Settings?"), style.Fg(color.Yellow)("--settings"), workspaceStore(cmd).Path)
	},
}
