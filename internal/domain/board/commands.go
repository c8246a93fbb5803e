package board

import "github.com/google/uuid"

// MoveCommand asks for one column or card to be placed at Index within its
// sibling set. A TargetParentID naming a different parent turns a card move
// into a cross-column move.
type MoveCommand struct {
	Kind           Kind
	ItemID         uuid.UUID
	TargetParentID *uuid.UUID
	Index          int
	// ExpectedVersion, when set, must equal the moved item's stored version.
	ExpectedVersion *int64
}

// BulkReorderCommand assigns explicit positions to children of ParentID.
// Identifiers not present in the parent are ignored.
type BulkReorderCommand struct {
	Kind     Kind
	ParentID uuid.UUID
	Orders   map[uuid.UUID]int
}

// Change describes one entity committed by a mutation.
type Change struct {
	Kind     Kind
	ID       uuid.UUID
	ParentID uuid.UUID
	Order    int
	Version  int64
}

// ChangeOf summarizes a committed entity.
func ChangeOf(e Entity) Change {
	c := Change{
		Kind:     e.Kind(),
		ID:       e.Identity(),
		ParentID: e.ParentID(),
		Version:  e.CurrentVersion(),
	}
	if p, ok := e.(Positioned); ok {
		c.Order = p.Position()
	}
	return c
}
