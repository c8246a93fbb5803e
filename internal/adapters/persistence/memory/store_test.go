package memory_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/boardsync/internal/adapters/persistence/memory"
	"github.com/jsamuelsen11/boardsync/internal/domain"
	"github.com/jsamuelsen11/boardsync/internal/domain/board"
)

var now = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func TestStore_InsertLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	b := board.NewBoard("Ops", now)
	require.NoError(t, s.Insert(ctx, b))

	got, err := s.Load(ctx, board.KindBoard, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ops", got.(*board.Board).Title)
	assert.Equal(t, board.InitialVersion, got.CurrentVersion())

	// Loaded copies are independent of the store.
	got.(*board.Board).Title = "mutated"
	again, err := s.Load(ctx, board.KindBoard, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ops", again.(*board.Board).Title)
}

func TestStore_InsertDuplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	b := board.NewBoard("Ops", now)
	require.NoError(t, s.Insert(ctx, b))
	assert.ErrorIs(t, s.Insert(ctx, b), domain.ErrConflict)
}

func TestStore_LoadWrongKindIsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	b := board.NewBoard("Ops", now)
	require.NoError(t, s.Insert(ctx, b))

	_, err := s.Load(ctx, board.KindColumn, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_LoadSiblingsOrdered(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	boardID := uuid.New()
	c2 := board.NewColumn(boardID, "two", 2, now)
	c0 := board.NewColumn(boardID, "zero", 0, now)
	c1 := board.NewColumn(boardID, "one", 1, now)
	other := board.NewColumn(uuid.New(), "elsewhere", 0, now)
	for _, c := range []*board.Column{c2, c0, c1, other} {
		require.NoError(t, s.Insert(ctx, c))
	}

	sibs, err := s.LoadSiblings(ctx, board.KindColumn, boardID)
	require.NoError(t, err)
	require.Len(t, sibs, 3)
	assert.Equal(t, c0.ID, sibs[0].Identity())
	assert.Equal(t, c1.ID, sibs[1].Identity())
	assert.Equal(t, c2.ID, sibs[2].Identity())

	empty, err := s.LoadSiblings(ctx, board.KindColumn, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStore_CommitConditional(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	c := board.NewColumn(uuid.New(), "todo", 0, now)
	require.NoError(t, s.Insert(ctx, c))

	c.Title = "doing"
	v, err := s.CommitConditional(ctx, c, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	c.Title = "stale write"
	_, err = s.CommitConditional(ctx, c, 1)
	require.ErrorIs(t, err, domain.ErrConflict)

	got, err := s.Load(ctx, board.KindColumn, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "doing", got.(*board.Column).Title)
	assert.Equal(t, int64(2), got.CurrentVersion())
}

func TestStore_CommitConditionalMissing(t *testing.T) {
	t.Parallel()

	c := board.NewColumn(uuid.New(), "todo", 0, now)
	_, err := memory.New().CommitConditional(context.Background(), c, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_CommitReparentsSiblingIndex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	from, to := uuid.New(), uuid.New()
	card := board.NewCard(from, "move me", now)
	require.NoError(t, s.Insert(ctx, card))

	card.MoveTo(to)
	_, err := s.CommitConditional(ctx, card, 1)
	require.NoError(t, err)

	src, err := s.LoadSiblings(ctx, board.KindCard, from)
	require.NoError(t, err)
	dst, err := s.LoadSiblings(ctx, board.KindCard, to)
	require.NoError(t, err)
	assert.Empty(t, src)
	require.Len(t, dst, 1)
	assert.Equal(t, card.ID, dst[0].Identity())
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	l := board.NewLabel(uuid.New(), "bug", now)
	require.NoError(t, s.Insert(ctx, l))
	require.NoError(t, s.Delete(ctx, board.KindLabel, l.ID))

	assert.ErrorIs(t, s.Delete(ctx, board.KindLabel, l.ID), domain.ErrNotFound)
	sibs, err := s.LoadSiblings(ctx, board.KindLabel, l.BoardID)
	require.NoError(t, err)
	assert.Empty(t, sibs)
	assert.Zero(t, s.Len())
}

func TestStore_ListByKind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	b1 := board.NewBoard("one", now)
	b2 := board.NewBoard("two", now.Add(time.Second))
	require.NoError(t, s.Insert(ctx, b1))
	require.NoError(t, s.Insert(ctx, b2))
	require.NoError(t, s.Insert(ctx, board.NewColumn(b1.ID, "col", 0, now)))

	boards, err := s.List(ctx, board.KindBoard)
	require.NoError(t, err)
	assert.Len(t, boards, 2)
}

func TestStore_ConcurrentCommitsOnlyOneWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.New()

	c := board.NewColumn(uuid.New(), "race", 0, now)
	require.NoError(t, s.Insert(ctx, c))

	const writers = 16
	var wins, conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mine := *c
			mine.Order = i
			_, err := s.CommitConditional(ctx, &mine, 1)
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, domain.ErrConflict):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(writers-1), conflicts.Load())
}
