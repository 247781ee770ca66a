package cmd

import (
	"fmt"

	"github.com/OhadRubin/workspace-colors/color"
	"github.com/OhadRubin/workspace-colors/config"
	"github.com/OhadRubin/workspace-colors/icon"
	"github.com/OhadRubin/workspace-colors/log"
	"github.com/OhadRubin/workspace-colors/palette"
	"github.com/OhadRubin/workspace-colors/preview"
	"github.com/OhadRubin/workspace-colors/recent"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringP("theme", "t", "", "Palette color name to apply")
	applyCmd.Flags().StringP("color", "c", "", "Hex color to apply")
	applyCmd.MarkFlagsMutuallyExclusive("theme", "color")
	applyCmd.MarkFlagsOneRequired("theme", "color")
	lo.Must0(applyCmd.RegisterFlagCompletionFunc("theme", completionColorNames))
}

// applyCmd writes a derived palette to the workspace without the picker.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Derive a palette from a color and write it to the workspace settings",
	Example: `  wscolors apply --theme ocean_blue
  wscolors apply -c '#3b5bdb' --variant legacy -w ~/src/project`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			named palette.Named
			err   error
		)

		if theme := lo.Must(cmd.Flags().GetString("theme")); theme != "" {
			named, err = mustPalette().Lookup(theme)
		} else {
			named, err = mustPalette().Resolve(lo.Must(cmd.Flags().GetString("color")))
		}
		handleErr(err)

		deriver, err := config.Deriver()
		handleErr(err)

		d, err := deriver.Derive(named.Hex)
		handleErr(err)

		store := workspaceStore(cmd)
		handleErr(store.Apply(d.Customizations))

		if err := recent.Remember(named); err != nil {
			log.Warnf("could not remember %s: %v", named.Name, err)
		}

		fmt.Printf(
			"%s applied %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			preview.Chip(d.Base, named.Name),
			style.Fg(color.Purple)(store.Path),
		)
		fmt.Println(preview.Summary(d))
	},
}
