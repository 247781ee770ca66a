package settings

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"

	"github.com/OhadRubin/workspace-colors/customization"
	"github.com/samber/lo"
	"github.com/samber/mo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/exp/slices"
)

// encode marshals v without HTML escaping. Raw messages pass through compacted.
func encode(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// encodeObject writes obj in order, copying every value as it is.
func encodeObject(obj *object) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}

		k, err := encode(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(pair.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeObject(obj *object) (customization.StyleMap, error) {
	m := make(customization.StyleMap, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		var v any
		if err := json.Unmarshal(pair.Value, &v); err != nil {
			return nil, err
		}
		m[pair.Key] = v
	}
	return m, nil
}

// rebuild lays next out over the previous section. Surviving keys keep their place and,
// when their value did not change, their original bytes. New keys follow, managed keys
// first in canonical order.
func rebuild(prev mo.Option[*object], next customization.StyleMap) (*object, error) {
	out := orderedmap.New[string, json.RawMessage]()

	if obj, ok := prev.Get(); ok {
		for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
			v, ok := next[pair.Key]
			if !ok {
				continue
			}

			raw, err := keep(pair.Value, v)
			if err != nil {
				return nil, err
			}
			out.Set(pair.Key, raw)
		}
	}

	added := lo.Filter(lo.Keys(next), func(k string, _ int) bool {
		_, present := out.Get(k)
		return !present
	})
	sortKeys(added)

	for _, k := range added {
		raw, err := encode(next[k])
		if err != nil {
			return nil, err
		}
		out.Set(k, raw)
	}

	return out, nil
}

func keep(raw json.RawMessage, v any) (json.RawMessage, error) {
	var old any
	if json.Unmarshal(raw, &old) == nil && reflect.DeepEqual(old, v) {
		return raw, nil
	}
	return encode(v)
}

func sortKeys(keys []string) {
	managed := customization.ManagedKeys()
	rank := func(k string) int {
		if i := slices.Index(managed, k); i >= 0 {
			return i
		}
		return len(managed)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
}
