package cmd

import (
	"github.com/OhadRubin/workspace-colors/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("recent", "r", false, "Start from the recently saved colors")
}

// miniCmd launches the line-mode picker.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Pick a color with a minimal line-mode interface",
	Long:  `Browse categories and colors with plain prompts, for terminals where the full interface is unwanted.`,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := newSession(cmd)
		handleErr(err)

		options := mini.Options{
			Session: s,
			Palette: mustPalette(),
			Recent:  lo.Must(cmd.Flags().GetBool("recent")),
			Title:   workspaceTitle(cmd),
		}
		handleErr(mini.Run(&options))
	},
}
