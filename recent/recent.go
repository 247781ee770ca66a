// Package recent keeps a registry of the colors most recently saved to a workspace.
package recent

import (
	"strings"
	"time"

	"github.com/OhadRubin/workspace-colors/filesystem"
	"github.com/OhadRubin/workspace-colors/key"
	"github.com/OhadRubin/workspace-colors/palette"
	"github.com/OhadRubin/workspace-colors/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Record is one remembered color.
type Record struct {
	Name      string    `json:"name"`
	Hex       string    `json:"hex"`
	Category  string    `json:"category,omitempty"`
	Rank      int       `json:"rank"`
	AppliedAt time.Time `json:"applied_at"`
}

// Named converts the record back to a palette entry.
func (r *Record) Named() palette.Named {
	return palette.Named{Name: r.Name, Hex: r.Hex, Category: r.Category}
}

var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.Recent(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var now = time.Now

func load() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Remember records that named was saved, bumping its rank when seen before.
func Remember(named palette.Named) error {
	records, err := load()
	if err != nil {
		return err
	}

	id := strings.ToLower(named.Hex)
	if record, ok := records[id]; ok {
		record.Rank++
		record.AppliedAt = now()
		if named.Category != "" {
			record.Name, record.Category = named.Name, named.Category
		}
	} else {
		records[id] = &Record{
			Name:      named.Name,
			Hex:       id,
			Category:  named.Category,
			Rank:      1,
			AppliedAt: now(),
		}
	}

	return cacher.Set(records)
}

// List returns up to limit records, newest first. A non-positive limit uses recent.limit.
func List(limit int) ([]*Record, error) {
	records, err := load()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = viper.GetInt(key.RecentLimit)
	}

	list := lo.Values(records)
	slices.SortFunc(list, func(a, b *Record) int {
		return b.AppliedAt.Compare(a.AppliedAt)
	})

	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// Suggest returns remembered colors whose names fuzzily match q, most used first.
func Suggest(q string) ([]*Record, error) {
	records, err := load()
	if err != nil {
		return nil, err
	}

	q = strings.TrimSpace(strings.ToLower(q))
	matches := lo.Filter(lo.Values(records), func(r *Record, _ int) bool {
		return fuzzy.MatchFold(q, r.Name)
	})

	slices.SortFunc(matches, func(a, b *Record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return b.AppliedAt.Compare(a.AppliedAt)
	})
	return matches, nil
}

// Forget wipes the registry.
func Forget() error {
	return cacher.Set(make(map[string]*Record))
}
