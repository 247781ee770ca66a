package cmd

import (
	"os"

	"github.com/OhadRubin/workspace-colors/color"
	"github.com/OhadRubin/workspace-colors/config"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/OhadRubin/workspace-colors/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")

	envCmd.SetOut(os.Stdout)
}

// envNames lists every environment variable wscolors reads, sorted.
func envNames() []string {
	names := lo.Map(config.EnvExposed, func(k string, _ int) string {
		field := config.Default[k]
		return field.Env()
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

// envCmd lists the supported environment variables and their values.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the supported environment variables",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
			name      = style.New().Bold(true).Foreground(color.Purple).Render
		)

		for _, env := range envNames() {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(name(env), "=")
			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
