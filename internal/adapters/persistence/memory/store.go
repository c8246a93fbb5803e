// Package memory provides an in-process implementation of ports.Gateway.
// Entities are kept encoded so that callers never share instances with the
// store or with each other, matching what a remote store would give them.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/adapters/persistence/codec"
	"github.com/jsamuelsen11/boardsync/internal/domain"
	"github.com/jsamuelsen11/boardsync/internal/domain/board"
	"github.com/jsamuelsen11/boardsync/internal/ports"
)

// Compile-time check that Store implements ports.Gateway.
var _ ports.Gateway = (*Store)(nil)

type record struct {
	kind    board.Kind
	parent  uuid.UUID
	version int64
	data    []byte
}

type siblingKey struct {
	kind   board.Kind
	parent uuid.UUID
}

// Store is a mutex-guarded map of encoded entities with a sibling index.
type Store struct {
	mu       sync.RWMutex
	records  map[uuid.UUID]*record
	siblings map[siblingKey]map[uuid.UUID]struct{}
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		records:  make(map[uuid.UUID]*record),
		siblings: make(map[siblingKey]map[uuid.UUID]struct{}),
	}
}

// Load implements ports.Gateway.
func (s *Store) Load(_ context.Context, kind board.Kind, id uuid.UUID) (board.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok || rec.kind != kind {
		return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return codec.Decode(rec.kind, rec.data, rec.version)
}

// LoadSiblings implements ports.Gateway.
func (s *Store) LoadSiblings(_ context.Context, kind board.Kind, parentID uuid.UUID) ([]board.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.siblings[siblingKey{kind: kind, parent: parentID}]
	out := make([]board.Entity, 0, len(ids))
	for id := range ids {
		rec := s.records[id]
		e, err := codec.Decode(rec.kind, rec.data, rec.version)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	board.SortSiblings(out)
	return out, nil
}

// List implements ports.Gateway.
func (s *Store) List(_ context.Context, kind board.Kind) ([]board.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []board.Entity
	for _, rec := range s.records {
		if rec.kind != kind {
			continue
		}
		e, err := codec.Decode(rec.kind, rec.data, rec.version)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	board.SortSiblings(out)
	return out, nil
}

// Insert implements ports.Gateway.
func (s *Store) Insert(_ context.Context, e board.Entity) error {
	data, err := codec.Encode(e)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[e.Identity()]; exists {
		return fmt.Errorf("%s already exists: %w", board.Describe(e), domain.ErrConflict)
	}
	s.records[e.Identity()] = &record{
		kind:    e.Kind(),
		parent:  e.ParentID(),
		version: e.CurrentVersion(),
		data:    data,
	}
	s.link(e.Kind(), e.ParentID(), e.Identity())
	return nil
}

// CommitConditional implements ports.Gateway.
func (s *Store) CommitConditional(_ context.Context, e board.Entity, expectedVersion int64) (int64, error) {
	data, err := codec.Encode(e)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[e.Identity()]
	if !ok || rec.kind != e.Kind() {
		return 0, fmt.Errorf("%s: %w", board.Describe(e), domain.ErrNotFound)
	}
	if rec.version != expectedVersion {
		return 0, fmt.Errorf("%s at version %d, expected %d: %w",
			board.Describe(e), rec.version, expectedVersion, domain.ErrConflict)
	}

	if parent := e.ParentID(); parent != rec.parent {
		s.unlink(rec.kind, rec.parent, e.Identity())
		s.link(rec.kind, parent, e.Identity())
		rec.parent = parent
	}
	rec.version++
	rec.data = data
	return rec.version, nil
}

// Delete implements ports.Gateway.
func (s *Store) Delete(_ context.Context, kind board.Kind, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok || rec.kind != kind {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	s.unlink(rec.kind, rec.parent, id)
	delete(s.records, id)
	return nil
}

// Len returns the number of stored entities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) link(kind board.Kind, parent, id uuid.UUID) {
	key := siblingKey{kind: kind, parent: parent}
	set, ok := s.siblings[key]
	if !ok {
		set = make(map[uuid.UUID]struct{})
		s.siblings[key] = set
	}
	set[id] = struct{}{}
}

func (s *Store) unlink(kind board.Kind, parent, id uuid.UUID) {
	key := siblingKey{kind: kind, parent: parent}
	set := s.siblings[key]
	delete(set, id)
	if len(set) == 0 {
		delete(s.siblings, key)
	}
}
