package palette

import (
	"fmt"

	"github.com/OhadRubin/workspace-colors/filesystem"
	"github.com/OhadRubin/workspace-colors/key"
	"github.com/OhadRubin/workspace-colors/log"
	"github.com/OhadRubin/workspace-colors/where"
	"github.com/spf13/viper"
)

// Load resolves the palette in order: palette.path, colors.json in the config
// directory, then the built-in palette. An explicitly configured path must exist.
func Load() (*Palette, error) {
	if path := viper.GetString(key.PalettePath); path != "" {
		return loadFile(path)
	}

	path := where.Palette()
	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		return loadFile(path)
	}

	log.Debugf("no user palette at %s, using built-in", path)
	return Builtin(), nil
}

func loadFile(path string) (*Palette, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Infof("loaded %d colors from %s", p.Len(), path)
	return p, nil
}
