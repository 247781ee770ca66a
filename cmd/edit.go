package cmd

import (
	"fmt"

	"github.com/OhadRubin/workspace-colors/color"
	"github.com/OhadRubin/workspace-colors/filesystem"
	"github.com/OhadRubin/workspace-colors/icon"
	"github.com/OhadRubin/workspace-colors/open"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringP("app", "a", "", "Open with this application instead of the default one")
}

// editCmd opens the workspace settings file with the default handler.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the workspace settings file in the default editor",
	Run: func(cmd *cobra.Command, args []string) {
		store := workspaceStore(cmd)

		exists, err := afero.Exists(filesystem.API(), store.Path)
		handleErr(err)
		if !exists {
			handleErr(fmt.Errorf("%s does not exist yet, apply a color first", store.Path))
		}

		handleErr(open.StartWith(store.Path, lo.Must(cmd.Flags().GetString("app"))))
		fmt.Printf("%s opened %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(store.Path))
	},
}
