// Package cmd implements the wscolors command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/OhadRubin/workspace-colors/color"
	"github.com/OhadRubin/workspace-colors/constant"
	"github.com/OhadRubin/workspace-colors/derive"
	"github.com/OhadRubin/workspace-colors/icon"
	"github.com/OhadRubin/workspace-colors/key"
	"github.com/OhadRubin/workspace-colors/log"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/OhadRubin/workspace-colors/tui"
	"github.com/OhadRubin/workspace-colors/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "Workspace directory whose settings are changed")

	rootCmd.PersistentFlags().String("variant", "", "Derivation variant (adaptive, legacy)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("variant", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return derive.Variants(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.DeriveVariant, rootCmd.PersistentFlags().Lookup("variant")))

	rootCmd.PersistentFlags().Float64("boost", 0, "Lightness boost for the bright variant, 0 uses the variant's policy")
	lo.Must0(viper.BindPFlag(key.DeriveBoost, rootCmd.PersistentFlags().Lookup("boost")))

	rootCmd.Flags().BoolP("recent", "r", false, "Start from the recently saved colors")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd opens the interactive picker.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Pick a color for your workspace and derive a matching palette",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Pick a color for your workspace and derive a matching palette"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		s, err := newSession(cmd)
		handleErr(err)

		options := tui.Options{
			Session: s,
			Palette: mustPalette(),
			Recent:  lo.Must(cmd.Flags().GetBool("recent")),
			Title:   workspaceTitle(cmd),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
