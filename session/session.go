// Package session sequences preview, select and save actions against a
// workspace settings store.
package session

import (
	"errors"
	"fmt"

	"github.com/OhadRubin/workspace-colors/customization"
	"github.com/OhadRubin/workspace-colors/derive"
	"github.com/OhadRubin/workspace-colors/log"
	"github.com/OhadRubin/workspace-colors/palette"
	"github.com/OhadRubin/workspace-colors/recent"
	"github.com/samber/mo"
)

// ErrNothingPending is returned by Commit when no color has been selected.
var ErrNothingPending = errors.New("no color selected")

// State is the session's position in the preview/save cycle.
type State int

const (
	Idle State = iota
	Previewing
	Pending
	Saved
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Previewing:
		return "previewing"
	case Pending:
		return "pending"
	case Saved:
		return "saved"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Store is the part of settings.Store a session needs.
type Store interface {
	// Section is None when the store holds no section at all, which is not the same as {}.
	Section() (mo.Option[customization.StyleMap], error)
	Apply(incoming customization.StyleMap) error
	Clear() error
	Replace(section mo.Option[customization.StyleMap]) error
}

// Session is not safe for concurrent use; the store it wraps is.
type Session struct {
	store       Store
	deriver     derive.Deriver
	livePreview bool

	// Remember is called with every committed color.
	Remember func(palette.Named) error

	state    State
	snapshot mo.Option[customization.StyleMap]
	// baseline is what Discard returns to: the snapshot, or the section after the last
	// Commit, Clear or Restore.
	baseline mo.Option[customization.StyleMap]
	current  mo.Option[palette.Named]
	derived  *derive.Derived
	dirty    bool
}

// New snapshots the store so Restore can put back what was there.
func New(store Store, deriver derive.Deriver, livePreview bool) (*Session, error) {
	snapshot, err := store.Section()
	if err != nil {
		return nil, err
	}

	return &Session{
		store:       store,
		deriver:     deriver,
		livePreview: livePreview,
		Remember:    recent.Remember,
		snapshot:    snapshot,
		baseline:    snapshot,
	}, nil
}

func (s *Session) State() State {
	return s.state
}

// Current is the color being previewed or selected.
func (s *Session) Current() mo.Option[palette.Named] {
	return s.current
}

// Derived is the palette computed for Current, nil in Idle.
func (s *Session) Derived() *derive.Derived {
	return s.derived
}

func (s *Session) transition(to State) {
	log.With(log.Fields{"from": s.state, "to": to}).Debug("session transition")
	s.state = to
}

func (s *Session) derive(named palette.Named) error {
	d, err := s.deriver.Derive(named.Hex)
	if err != nil {
		return err
	}
	s.current = mo.Some(named)
	s.derived = d
	return nil
}

// Hover previews named. The store is only written when live preview is on.
func (s *Session) Hover(named palette.Named) (*derive.Derived, error) {
	if err := s.derive(named); err != nil {
		return nil, err
	}

	if s.livePreview {
		if err := s.store.Apply(s.derived.Customizations); err != nil {
			return nil, err
		}
		s.dirty = true
	}

	s.transition(Previewing)
	return s.derived, nil
}

// Select writes named to the store, pending a Commit.
func (s *Session) Select(named palette.Named) (*derive.Derived, error) {
	if err := s.derive(named); err != nil {
		return nil, err
	}

	if err := s.store.Apply(s.derived.Customizations); err != nil {
		return nil, err
	}
	s.dirty = true

	s.transition(Pending)
	return s.derived, nil
}

// Commit keeps the pending selection.
func (s *Session) Commit() error {
	named, ok := s.current.Get()
	if s.state != Pending || !ok {
		return ErrNothingPending
	}

	if err := s.store.Apply(s.derived.Customizations); err != nil {
		return err
	}

	if s.Remember != nil {
		if err := s.Remember(named); err != nil {
			log.Warnf("could not remember %s: %v", named.Name, err)
		}
	}

	if err := s.settle(); err != nil {
		return err
	}
	s.transition(Saved)
	return nil
}

// Clear strips every managed key from the store.
func (s *Session) Clear() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.reset()
	return s.settle()
}

// Restore puts back the section as it was when the session started.
func (s *Session) Restore() error {
	if err := s.store.Replace(s.snapshot); err != nil {
		return err
	}
	s.reset()
	s.baseline = s.snapshot
	return nil
}

// Discard undoes writes made by Hover and Select since the last Commit, Clear or Restore.
func (s *Session) Discard() error {
	if !s.dirty {
		return nil
	}

	if err := s.store.Replace(s.baseline); err != nil {
		return err
	}

	s.dirty = false
	return nil
}

// settle records the store's current section as the new baseline.
func (s *Session) settle() error {
	section, err := s.store.Section()
	if err != nil {
		return err
	}

	s.baseline = section
	s.dirty = false
	return nil
}

func (s *Session) reset() {
	s.current = mo.None[palette.Named]()
	s.derived = nil
	s.dirty = false
	s.transition(Idle)
}
