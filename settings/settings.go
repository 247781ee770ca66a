// Package settings reads and rewrites the color customization section of a
// workspace settings file, leaving every other setting alone.
package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/OhadRubin/workspace-colors/customization"
	"github.com/OhadRubin/workspace-colors/filesystem"
	"github.com/OhadRubin/workspace-colors/key"
	"github.com/OhadRubin/workspace-colors/log"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrMalformedSettings is returned when the settings file exists but is not a JSON object.
// Such a file is never overwritten.
var ErrMalformedSettings = errors.New("malformed settings file")

// Updater computes the new section from the current one. None removes the section.
type Updater func(current customization.StyleMap) mo.Option[customization.StyleMap]

// Store is the settings file of one workspace.
type Store struct {
	Path   string
	Key    string
	Indent int

	mu sync.Mutex
}

// New returns the store for workspace, configured from viper.
func New(workspace string) *Store {
	return &Store{
		Path:   filepath.Join(workspace, viper.GetString(key.SettingsFile)),
		Key:    viper.GetString(key.SettingsSection),
		Indent: viper.GetInt(key.SettingsIndent),
	}
}

// object is a JSON object decoded with its keys in order and its values untouched.
type object = orderedmap.OrderedMap[string, json.RawMessage]

// Customizations returns the current section, empty when the file or the section is missing.
func (s *Store) Customizations() (customization.StyleMap, error) {
	section, err := s.Section()
	if err != nil {
		return nil, err
	}
	return section.OrElse(customization.StyleMap{}), nil
}

// Section returns the current section, None when the file or the section is missing.
// A section written as {} is Some of an empty map.
func (s *Store) Section() (mo.Option[customization.StyleMap], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return mo.None[customization.StyleMap](), err
	}

	sec, err := s.section(doc)
	if err != nil {
		return mo.None[customization.StyleMap](), err
	}

	obj, ok := sec.Get()
	if !ok {
		return mo.None[customization.StyleMap](), nil
	}

	m, err := decodeObject(obj)
	if err != nil {
		return mo.None[customization.StyleMap](), fmt.Errorf("%w %s: %v", ErrMalformedSettings, s.Path, err)
	}
	return mo.Some(m), nil
}

// Update runs one read, compute and write cycle. Concurrent updates on the same store
// are serialized. Entries fn leaves unchanged are written back exactly as they were read.
func (s *Store) Update(fn Updater) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	sec, err := s.section(doc)
	if err != nil {
		return err
	}

	current := customization.StyleMap{}
	if obj, ok := sec.Get(); ok {
		if current, err = decodeObject(obj); err != nil {
			return fmt.Errorf("%w %s: %v", ErrMalformedSettings, s.Path, err)
		}
	}

	next := fn(current)
	if value, ok := next.Get(); ok {
		obj, err := rebuild(sec, value)
		if err != nil {
			return err
		}

		raw, err := encodeObject(obj)
		if err != nil {
			return err
		}
		doc.Set(s.Key, raw)
	} else {
		if _, present := doc.Delete(s.Key); !present {
			log.Debugf("%s has no %s, nothing to unset", s.Path, s.Key)
			return nil
		}
	}

	return s.write(doc)
}

// Apply merges incoming into the section, replacing any managed keys already there.
func (s *Store) Apply(incoming customization.StyleMap) error {
	log.With(log.Fields{"path": s.Path, "keys": len(incoming)}).Info("applying customizations")
	return s.Update(func(current customization.StyleMap) mo.Option[customization.StyleMap] {
		return mo.Some(customization.Merge(current, incoming))
	})
}

// Clear strips managed keys, unsetting the section when nothing else is left.
func (s *Store) Clear() error {
	log.With(log.Fields{"path": s.Path}).Info("clearing customizations")
	return s.Update(customization.Clear)
}

// Replace writes section verbatim, or unsets it when section is None.
func (s *Store) Replace(section mo.Option[customization.StyleMap]) error {
	return s.Update(func(customization.StyleMap) mo.Option[customization.StyleMap] {
		return section
	})
}

func (s *Store) read() (*object, error) {
	doc := orderedmap.New[string, json.RawMessage]()

	data, err := filesystem.API().ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformedSettings, s.Path, err)
	}
	return doc, nil
}

func (s *Store) section(doc *object) (mo.Option[*object], error) {
	raw, ok := doc.Get(s.Key)
	raw = bytes.TrimSpace(raw)
	if !ok || bytes.Equal(raw, []byte("null")) {
		return mo.None[*object](), nil
	}

	sec := orderedmap.New[string, json.RawMessage]()
	if !bytes.HasPrefix(raw, []byte("{")) || json.Unmarshal(raw, sec) != nil {
		return mo.None[*object](), fmt.Errorf("%w %s: %s is not an object", ErrMalformedSettings, s.Path, s.Key)
	}
	return mo.Some(sec), nil
}

func (s *Store) write(doc *object) error {
	compact, err := encodeObject(doc)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", strings.Repeat(" ", max(s.Indent, 0))); err != nil {
		return err
	}
	out.WriteByte('\n')

	if err := filesystem.WriteAtomic(s.Path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	log.Infof("wrote %s", s.Path)
	return nil
}
