package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/OhadRubin/workspace-colors/config"
	"github.com/OhadRubin/workspace-colors/filesystem"
	"github.com/OhadRubin/workspace-colors/inline"
	"github.com/OhadRubin/workspace-colors/recent"
	"github.com/OhadRubin/workspace-colors/settings"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Hex color, palette name or fuzzy search query")
	inlineCmd.Flags().StringP("pick", "p", "", "Pick one color from the matches")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("apply", "a", false, "Write the picked color to the workspace settings")
	inlineCmd.Flags().StringP("output", "o", "", "Write the command output to a file")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		records, err := recent.Suggest(toComplete)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return lo.Map(records, func(r *recent.Record, _ int) string {
			return r.Name
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("pick", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"first", "last"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd derives palettes without any interaction, for scripts.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Derive palettes non-interactively for scripts",
	Long: `Derive palettes for every color matching the query.

Pickers:
  first - first color in the matches
  last - last color in the matches
  [number] - select a color by index (starting from 0)

Applying requires the query to resolve to exactly one color, or a picker.`,
	Example: `  wscolors inline -q "#3a7bd5" -j
  wscolors inline -q blue -p first -a`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			out io.Writer = os.Stdout
			err error
		)

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			out = file
		}

		picker := mo.None[inline.Picker]()
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			fn, err := inline.ParsePicker(pick)
			handleErr(err)
			picker = mo.Some(fn)
		}

		store := mo.None[*settings.Store]()
		if lo.Must(cmd.Flags().GetBool("apply")) {
			store = mo.Some(workspaceStore(cmd))
		}

		deriver, err := config.Deriver()
		handleErr(err)

		options := &inline.Options{
			Out:     out,
			Palette: mustPalette(),
			Deriver: deriver,
			Query:   lo.Must(cmd.Flags().GetString("query")),
			Picker:  picker,
			Json:    lo.Must(cmd.Flags().GetBool("json")),
			Store:   store,
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of the inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "color", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
