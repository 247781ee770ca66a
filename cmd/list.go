package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/OhadRubin/workspace-colors/color"
	"github.com/OhadRubin/workspace-colors/palette"
	"github.com/OhadRubin/workspace-colors/preview"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/OhadRubin/workspace-colors/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("category", "C", "", "Only list this category")
	listCmd.Flags().StringP("search", "s", "", "Fuzzy search color names")
	listCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	listCmd.MarkFlagsMutuallyExclusive("category", "search")

	lo.Must0(listCmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		p, err := palette.Load()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return lo.Map(p.Categories, func(c palette.Category, _ int) string {
			return c.Name
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

// listCmd prints the palette.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available colors by category",
	Run: func(cmd *cobra.Command, args []string) {
		p := mustPalette()
		categories := p.Categories

		if name := lo.Must(cmd.Flags().GetString("category")); name != "" {
			c, ok := p.Category(name)
			if !ok {
				handleErr(fmt.Errorf("unknown category %q", name))
			}
			categories = []palette.Category{c}
		}

		if query := lo.Must(cmd.Flags().GetString("search")); query != "" {
			categories = []palette.Category{{Name: "results", Colors: p.Search(query)}}
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(os.Stdout).Encode(categories))
			return
		}

		for i, c := range categories {
			fmt.Printf("%s %s\n", style.Title(util.Humanize(c.Name)), style.Faint(util.Quantify(len(c.Colors), "color", "colors")))
			for _, n := range c.Colors {
				fmt.Printf("  %s %-28s %s\n", preview.Swatch(n.Hex), n.Name, style.Fg(color.Gray)(n.Hex))
			}

			if i < len(categories)-1 {
				fmt.Println()
			}
		}
	},
}
