// Package codec serializes board entities for the persistence adapters.
// The version token is stored beside the payload and is authoritative on
// decode, so a payload written before a version bump never leaks its stale
// version to callers.
package codec

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/jsamuelsen11/boardsync/internal/domain/board"
)

// Encode marshals an entity's fields.
func Encode(e board.Entity) ([]byte, error) {
	data, err := sonic.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", board.Describe(e), err)
	}
	return data, nil
}

// Decode rebuilds an entity of the given kind and stamps it with version.
func Decode(kind board.Kind, data []byte, version int64) (board.Entity, error) {
	e, err := board.Blank(kind)
	if err != nil {
		return nil, err
	}
	if err := sonic.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", kind, err)
	}
	e.SetVersion(version)
	return e, nil
}
