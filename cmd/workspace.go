package cmd

import (
	"path/filepath"

	"github.com/OhadRubin/workspace-colors/config"
	"github.com/OhadRubin/workspace-colors/key"
	"github.com/OhadRubin/workspace-colors/palette"
	"github.com/OhadRubin/workspace-colors/session"
	"github.com/OhadRubin/workspace-colors/settings"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func workspaceDir(cmd *cobra.Command) string {
	dir := lo.Must(cmd.Flags().GetString("workspace"))
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

func workspaceTitle(cmd *cobra.Command) string {
	return filepath.Base(workspaceDir(cmd))
}

func workspaceStore(cmd *cobra.Command) *settings.Store {
	return settings.New(workspaceDir(cmd))
}

func mustPalette() *palette.Palette {
	p, err := palette.Load()
	handleErr(err)
	return p
}

func newSession(cmd *cobra.Command) (*session.Session, error) {
	deriver, err := config.Deriver()
	if err != nil {
		return nil, err
	}

	return session.New(workspaceStore(cmd), deriver, viper.GetBool(key.TUILivePreview))
}

// colorArg resolves a positional argument that is either a hex color or a palette name.
func colorArg(args []string) palette.Named {
	named, err := mustPalette().Resolve(args[0])
	handleErr(err)
	return named
}

func completionColorNames(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	p, err := palette.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	matches := p.All()
	if toComplete != "" {
		matches = p.Search(toComplete)
	}

	return lo.Map(matches, func(n palette.Named, _ int) string {
		return n.Name
	}), cobra.ShellCompDirectiveNoFileComp
}
