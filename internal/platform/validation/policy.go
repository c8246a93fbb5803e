// Package validation implements the field sanitization rules applied to
// board, column, card and label edits, plus the bulk batch ceiling.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/boardsync/internal/domain"
	"github.com/jsamuelsen11/boardsync/internal/ports"
)

var _ ports.InputPolicy = (*Policy)(nil)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Limits holds the configured ceilings.
type Limits struct {
	MaxBulkOperations    int
	MaxTitleLength       int
	MaxDescriptionLength int
}

// Policy enforces Limits.
type Policy struct {
	limits Limits
}

// New creates a Policy. Zero limits disable the corresponding length check,
// except MaxBulkOperations which then rejects every non-empty batch.
func New(limits Limits) *Policy {
	return &Policy{limits: limits}
}

// MaxBulkOperations implements ports.InputPolicy.
func (p *Policy) MaxBulkOperations() int {
	return p.limits.MaxBulkOperations
}

// Title implements ports.InputPolicy.
func (p *Policy) Title(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", domain.NewValidationError(field, "is required")
	}
	if err := checkLength(field, v, p.limits.MaxTitleLength); err != nil {
		return "", err
	}
	return v, nil
}

// Text implements ports.InputPolicy.
func (p *Policy) Text(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if err := checkLength(field, v, p.limits.MaxDescriptionLength); err != nil {
		return "", err
	}
	return v, nil
}

// Color implements ports.InputPolicy.
func (p *Policy) Color(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", nil
	}
	if !hexColor.MatchString(v) {
		return "", domain.NewValidationError(field, "must be a hex color like #1a2b3c")
	}
	return strings.ToLower(v), nil
}

func checkLength(field, v string, limit int) error {
	if limit > 0 && utf8.RuneCountInString(v) > limit {
		return domain.NewValidationError(field, fmt.Sprintf("must be at most %d characters", limit))
	}
	return nil
}
