package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/OhadRubin/workspace-colors/color"
	"github.com/OhadRubin/workspace-colors/icon"
	"github.com/OhadRubin/workspace-colors/preview"
	"github.com/OhadRubin/workspace-colors/recent"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recentCmd)

	recentCmd.Flags().IntP("limit", "n", 0, "Number of colors to show, 0 uses recent.limit")
	recentCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	recentCmd.Flags().Bool("clear", false, "Forget every recently applied color")
	recentCmd.MarkFlagsMutuallyExclusive("clear", "json")
}

// recentCmd lists the recently applied colors.
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the recently applied colors",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(recent.Forget())
			fmt.Printf("%s recent colors cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		records, err := recent.List(lo.Must(cmd.Flags().GetInt("limit")))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			if records == nil {
				records = []*recent.Record{}
			}
			handleErr(json.NewEncoder(os.Stdout).Encode(records))
			return
		}

		if len(records) == 0 {
			fmt.Println(style.Faint("no colors applied yet"))
			return
		}

		for _, r := range records {
			fmt.Printf(
				"%s %-28s %s %s\n",
				preview.Swatch(r.Hex),
				r.Name,
				style.Fg(color.Gray)(r.Hex),
				style.Faint(r.AppliedAt.Format("2006-01-02 15:04")),
			)
		}
	},
}
