package config

import (
	"github.com/OhadRubin/workspace-colors/derive"
	"github.com/OhadRubin/workspace-colors/key"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Deriver builds a derive.Deriver from the derive.* settings.
// A zero boost leaves the variant's own policy in charge.
func Deriver() (derive.Deriver, error) {
	variant, err := derive.ParseVariant(viper.GetString(key.DeriveVariant))
	if err != nil {
		return derive.Deriver{}, err
	}

	boost := mo.None[float64]()
	if b := viper.GetFloat64(key.DeriveBoost); b != 0 {
		boost = mo.Some(b)
	}

	return derive.Deriver{Variant: variant, Boost: boost}, nil
}
