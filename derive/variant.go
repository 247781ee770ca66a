package derive

import (
	"fmt"
	"strings"

	"github.com/OhadRubin/workspace-colors/colorspace"
	"github.com/OhadRubin/workspace-colors/customization"
	"github.com/samber/mo"
)

// Variant selects the derivation policy.
type Variant string

const (
	// Adaptive scales the boost with the base lightness and writes every managed key.
	Adaptive Variant = "adaptive"
	// Legacy uses a fixed boost and writes only the background keys.
	Legacy Variant = "legacy"
)

// Variants lists the accepted variant names.
func Variants() []string {
	return []string{string(Adaptive), string(Legacy)}
}

// ParseVariant parses a variant name, case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case Adaptive, "":
		return Adaptive, nil
	case Legacy:
		return Legacy, nil
	default:
		return "", fmt.Errorf("unknown variant %q, expected one of %s", s, strings.Join(Variants(), ", "))
	}
}

// Derived is everything computed from one base color.
type Derived struct {
	Base           string                 `json:"base"`
	Bright         string                 `json:"bright"`
	Muted          string                 `json:"muted"`
	Customizations customization.StyleMap `json:"customizations"`
}

// Deriver bundles a variant with an optional boost override.
type Deriver struct {
	Variant Variant
	Boost   mo.Option[float64]
}

// New returns an adaptive Deriver with the policy's own boost.
func New() Deriver {
	return Deriver{Variant: Adaptive, Boost: mo.None[float64]()}
}

// Bright returns the bright variant of base under d's policy.
func (d Deriver) Bright(base string) (string, error) {
	if d.Variant == Legacy {
		return LegacyBrightVersion(base, d.Boost)
	}
	return BrightVersion(base, d.Boost)
}

// Derive computes the full palette for base.
func (d Deriver) Derive(base string) (*Derived, error) {
	base, err := colorspace.Normalize(base)
	if err != nil {
		return nil, err
	}

	bright, err := d.Bright(base)
	if err != nil {
		return nil, err
	}

	muted, err := MutedVersion(base)
	if err != nil {
		return nil, err
	}

	var styles customization.StyleMap
	if d.Variant == Legacy {
		styles, err = LegacyCustomizations(base, bright)
	} else {
		styles, err = Customizations(base, bright)
	}
	if err != nil {
		return nil, err
	}

	return &Derived{
		Base:           base,
		Bright:         bright,
		Muted:          muted,
		Customizations: styles,
	}, nil
}
