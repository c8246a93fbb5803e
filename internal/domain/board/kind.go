package board

import (
	"fmt"

	"github.com/jsamuelsen11/boardsync/internal/domain"
)

// Kind identifies one of the board entity types.
type Kind string

const (
	KindBoard  Kind = "board"
	KindColumn Kind = "column"
	KindCard   Kind = "card"
	KindLabel  Kind = "label"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindBoard, KindColumn, KindCard, KindLabel:
		return true
	default:
		return false
	}
}

// Ordered reports whether entities of this kind carry a position within
// their parent's sibling set.
func (k Kind) Ordered() bool {
	return k == KindColumn || k == KindCard
}

// ParentKind returns the kind of the entity that owns entities of kind k.
// Boards have no parent and return the empty Kind.
func (k Kind) ParentKind() Kind {
	switch k {
	case KindColumn, KindLabel:
		return KindBoard
	case KindCard:
		return KindColumn
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// ParseKind converts s into a Kind, returning a *domain.ValidationError for
// unknown values.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", domain.NewValidationError("kind", fmt.Sprintf("invalid: %q", s))
	}
	return k, nil
}
