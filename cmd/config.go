package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/OhadRubin/workspace-colors/color"
	"github.com/OhadRubin/workspace-colors/config"
	"github.com/OhadRubin/workspace-colors/filesystem"
	"github.com/OhadRubin/workspace-colors/icon"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/OhadRubin/workspace-colors/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// configKey takes the key from the first argument or from --key.
func configKey(cmd *cobra.Command, args []string) config.Field {
	k := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		k = args[0]
	}
	if k == "" {
		handleErr(errors.New("key is required as an argument or --key flag"))
	}

	field, err := config.Lookup(k)
	var unknown *config.UnknownKeyError
	if errors.As(err, &unknown) {
		handleErr(fmt.Errorf(
			"unknown key %s, did you mean %s?",
			style.Fg(color.Red)(unknown.Key),
			style.Fg(color.Yellow)(unknown.Closest),
		))
	}
	handleErr(err)

	return field
}

func configDone(format string, a ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, a...))
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configCmd groups the configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wscolors configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only show these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show descriptions and values of configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))
		if len(keys) == 0 {
			keys = lo.Keys(config.Default)
		}
		slices.Sort(keys)

		fields := lo.Map(keys, func(k string, _ int) config.Field {
			field, err := config.Lookup(k)
			handleErr(err)
			return field
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			// Field marshals through its pointer receiver.
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.ToSlicePtr(fields)))
			return
		}

		for i := range fields {
			cmd.Print(fields[i].Pretty())
			if i < len(fields)-1 {
				cmd.Print("\n\n")
			}
		}
		cmd.Println()
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "The configuration key to update")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "The new value")
	lo.Must0(configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Set a configuration value",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field := configKey(cmd, args)

		values := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			values = args[1:]
		}

		v, err := field.Parse(values)
		handleErr(err)

		viper.Set(field.Key, v)
		handleErr(config.Write())

		configDone("set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(v)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "The configuration key to print")
	lo.Must0(configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print a configuration value",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(viper.Get(configKey(cmd, args).Key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite the existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.File(where.Config())

		if lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(filesystem.API().Remove(path))
		}

		handleErr(viper.SafeWriteConfig())
		configDone("wrote config to %s", path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(config.File(where.Config())))
		configDone("deleted config")
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "The configuration key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	lo.Must0(configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset configuration values to their defaults",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
			handleErr(config.Write())
			configDone("reset all config values")
			return
		}

		field := configKey(cmd, nil)
		viper.Set(field.Key, field.Value)
		handleErr(config.Write())

		configDone(
			"reset %s to default value %s",
			style.Fg(color.Purple)(field.Key),
			style.Fg(color.Yellow)(fmt.Sprint(field.Value)),
		)
	},
}
