package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/OhadRubin/workspace-colors/color"
	"github.com/OhadRubin/workspace-colors/config"
	"github.com/OhadRubin/workspace-colors/derive"
	"github.com/OhadRubin/workspace-colors/luminance"
	"github.com/OhadRubin/workspace-colors/preview"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(contrastCmd)
	contrastCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	contrastCmd.Flags().BoolP("all", "a", false, "Check every palette color and list only the failing ones")
}

// contrastCmd grades the foreground contrast of a derived palette.
var contrastCmd = &cobra.Command{
	Use:               "contrast [COLOR|NAME]",
	Short:             "Check the WCAG contrast of a derived palette",
	Long: `Check the WCAG contrast of every foreground over its background.
Ratios of 4.5 and above are OK, 3 and above LOW, anything else BAD.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionColorNames,
	Run: func(cmd *cobra.Command, args []string) {
		deriver, err := config.Deriver()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("all")) {
			contrastAll(deriver)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		named := colorArg(args)
		d, err := deriver.Derive(named.Hex)
		handleErr(err)

		report, err := derive.Report(d.Customizations)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(os.Stdout).Encode(report))
			return
		}

		fmt.Println(style.Title(named.String()))
		fmt.Println(preview.ContrastTable(report))
	},
}

func contrastAll(deriver derive.Deriver) {
	var failing int
	for _, named := range mustPalette().All() {
		d, err := deriver.Derive(named.Hex)
		handleErr(err)

		report, err := derive.Report(d.Customizations)
		handleErr(err)

		worst, ok := lo.Find(report, func(e derive.ContrastEntry) bool {
			return e.Grade != luminance.OK
		})
		if !ok {
			continue
		}

		failing++
		fmt.Printf("%s %-28s %s %6.2f:1 %s\n",
			preview.Swatch(named.Hex),
			named.Name,
			style.Fg(color.Gray)(worst.ForegroundKey),
			worst.Ratio,
			preview.Grade(worst.Grade),
		)
	}

	if failing == 0 {
		fmt.Println(style.Fg(style.SuccessColor)("every palette color passes"))
	}
}
