package board

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InitialVersion is the version every entity carries when it is created.
const InitialVersion int64 = 1

// Versioned holds the identity, version token and timestamps shared by all
// board entities. It is embedded by Board, Column, Card and Label.
type Versioned struct {
	ID        uuid.UUID `json:"id"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newVersioned(now time.Time) Versioned {
	return Versioned{
		ID:        uuid.New(),
		Version:   InitialVersion,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Identity returns the entity's stable identifier.
func (v *Versioned) Identity() uuid.UUID { return v.ID }

// CurrentVersion returns the version token the entity was loaded or
// committed at.
func (v *Versioned) CurrentVersion() int64 { return v.Version }

// SetVersion records the version token assigned by the store.
func (v *Versioned) SetVersion(n int64) { v.Version = n }

// Created returns the creation time.
func (v *Versioned) Created() time.Time { return v.CreatedAt }

// Touch stamps the modification time.
func (v *Versioned) Touch(now time.Time) { v.UpdatedAt = now }

// Entity is implemented by every versioned board entity.
type Entity interface {
	Identity() uuid.UUID
	Kind() Kind
	// ParentID returns the owning entity's identifier, or uuid.Nil for boards.
	ParentID() uuid.UUID
	CurrentVersion() int64
	SetVersion(n int64)
	Touch(now time.Time)
}

// Positioned is implemented by entities that live in an ordered sibling set.
type Positioned interface {
	Entity
	Position() int
	SetPosition(order int)
}

// Blank returns a zero-value entity of the given kind, ready to be decoded
// into by a persistence adapter.
func Blank(kind Kind) (Entity, error) {
	switch kind {
	case KindBoard:
		return &Board{}, nil
	case KindColumn:
		return &Column{}, nil
	case KindCard:
		return &Card{}, nil
	case KindLabel:
		return &Label{}, nil
	default:
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
}

// Describe renders an entity as "kind id" for logs and error messages.
func Describe(e Entity) string {
	return fmt.Sprintf("%s %s", e.Kind(), e.Identity())
}
