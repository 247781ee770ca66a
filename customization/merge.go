package customization

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// StyleMap maps style keys to values. Managed keys hold "#rrggbb" strings; foreign
// keys may hold anything the host store put there.
type StyleMap map[string]any

// Merge strips every managed key from existing and then lays incoming over the result.
// Foreign keys pass through untouched. Neither argument is modified.
func Merge(existing, incoming StyleMap) StyleMap {
	return lo.Assign(lo.OmitByKeys(existing, managedKeys), incoming)
}

// Clear strips every managed key from existing. It returns None when nothing is left,
// meaning the caller should unset the whole entry rather than persist an empty map.
func Clear(existing StyleMap) mo.Option[StyleMap] {
	rest := lo.OmitByKeys(existing, managedKeys)
	if len(rest) == 0 {
		return mo.None[StyleMap]()
	}
	return mo.Some(rest)
}

// Managed returns only the managed entries of m.
func Managed(m StyleMap) StyleMap {
	return lo.PickByKeys(m, managedKeys)
}
