package cmd

import (
	"fmt"

	"github.com/OhadRubin/workspace-colors/config"
	"github.com/OhadRubin/workspace-colors/derive"
	"github.com/OhadRubin/workspace-colors/preview"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/OhadRubin/workspace-colors/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntP("width", "W", 0, "Width of the window preview, 0 fits the terminal")
}

// showCmd previews a color without touching the workspace.
var showCmd = &cobra.Command{
	Use:               "show COLOR|NAME",
	Short:             "Preview the palette derived from a color",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionColorNames,
	Run: func(cmd *cobra.Command, args []string) {
		named := colorArg(args)

		deriver, err := config.Deriver()
		handleErr(err)

		d, err := deriver.Derive(named.Hex)
		handleErr(err)

		width := lo.Must(cmd.Flags().GetInt("width"))
		if width <= 0 {
			width = 48
			if w, _, err := util.TerminalSize(); err == nil {
				width = util.Clamp(w-4, 24, 72)
			}
		}

		ramp, err := preview.Ramp(d.Muted, d.Bright, 12)
		handleErr(err)

		distance, err := preview.Distinctness(d.Base, d.Bright)
		handleErr(err)

		fmt.Println(style.Title(named.String()))
		fmt.Println()
		fmt.Println(preview.Window(d, workspaceTitle(cmd), width))
		fmt.Println()
		fmt.Println(preview.Summary(d))
		fmt.Println(ramp)
		fmt.Println(style.Faint(fmt.Sprintf("base and bright differ by %.1f (CIEDE2000)", distance)))
		fmt.Println()

		report, err := derive.Report(d.Customizations)
		handleErr(err)
		fmt.Println(preview.ContrastTable(report))
	},
}
