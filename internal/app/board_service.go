// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/app/fanout"
	"github.com/jsamuelsen11/boardsync/internal/app/groups"
	"github.com/jsamuelsen11/boardsync/internal/app/guard"
	"github.com/jsamuelsen11/boardsync/internal/domain"
	"github.com/jsamuelsen11/boardsync/internal/domain/board"
	"github.com/jsamuelsen11/boardsync/internal/domain/ordering"
	"github.com/jsamuelsen11/boardsync/internal/platform/logging"
	"github.com/jsamuelsen11/boardsync/internal/ports"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

// readWorkers bounds concurrent card-list loads when assembling a board.
const readWorkers = 8

// BoardService implements ports.BoardService. Moves and reorders run the
// ordering engine over freshly loaded sibling sets and commit every changed
// entity through the concurrency guard, one conditional write per entity.
// Successful mutations are followed by a best-effort invalidation broadcast.
type BoardService struct {
	guard    *guard.Guard
	store    ports.Gateway
	notifier ports.Notifier
	policy   ports.InputPolicy
	logger   *slog.Logger
	now      func() time.Time
}

// NewBoardService creates a BoardService. The store is used directly only for
// inserts, deletes and read-only listings; every edit of an existing entity
// goes through g. A nil logger discards output.
func NewBoardService(
	g *guard.Guard,
	store ports.Gateway,
	notifier ports.Notifier,
	policy ports.InputPolicy,
	logger *slog.Logger,
) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BoardService{
		guard:    g,
		store:    store,
		notifier: notifier,
		policy:   policy,
		logger:   logger,
		now:      time.Now,
	}
}

// MoveItem places a column or card at cmd.Index among its siblings. A card
// whose target column differs from its current one is moved across columns;
// the destination is renumbered and the source is left as is.
func (s *BoardService) MoveItem(ctx context.Context, cmd board.MoveCommand) ([]board.Change, error) {
	const op = "MoveItem"
	s.logger.InfoContext(ctx, "moving item",
		slog.String("kind", cmd.Kind.String()),
		slog.String("id", cmd.ItemID.String()),
		slog.Int("index", cmd.Index),
	)

	if !cmd.Kind.Ordered() {
		return nil, s.fail(ctx, op, domain.NewValidationError("kind", fmt.Sprintf("%q items cannot be moved", cmd.Kind)))
	}

	u := s.guard.Begin()
	var (
		boardID uuid.UUID
		changes []board.Change
		err     error
	)
	if cmd.Kind == board.KindColumn {
		boardID, changes, err = s.moveColumn(ctx, u, cmd)
	} else {
		boardID, changes, err = s.moveCard(ctx, u, cmd)
	}
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("id", cmd.ItemID.String()))
	}

	s.notify(ctx, boardID, false)
	return changes, nil
}

func (s *BoardService) moveColumn(ctx context.Context, u *guard.Unit, cmd board.MoveCommand) (uuid.UUID, []board.Change, error) {
	col, err := guard.Load[*board.Column](ctx, u, board.KindColumn, cmd.ItemID)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if err := guard.CheckExpected(col, cmd.ExpectedVersion); err != nil {
		return uuid.Nil, nil, err
	}
	if cmd.TargetParentID != nil && *cmd.TargetParentID != col.BoardID {
		return uuid.Nil, nil, domain.NewValidationError("target_parent_id", "columns cannot move to another board")
	}

	changes, err := move[*board.Column](ctx, u, board.KindColumn, col.BoardID, col.ID, cmd.Index)
	return col.BoardID, changes, err
}

func (s *BoardService) moveCard(ctx context.Context, u *guard.Unit, cmd board.MoveCommand) (uuid.UUID, []board.Change, error) {
	card, err := guard.Load[*board.Card](ctx, u, board.KindCard, cmd.ItemID)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if err := guard.CheckExpected(card, cmd.ExpectedVersion); err != nil {
		return uuid.Nil, nil, err
	}
	source, err := guard.Load[*board.Column](ctx, u, board.KindColumn, card.ColumnID)
	if err != nil {
		return uuid.Nil, nil, err
	}

	if cmd.TargetParentID == nil || *cmd.TargetParentID == source.ID {
		changes, err := move[*board.Card](ctx, u, board.KindCard, source.ID, card.ID, cmd.Index)
		return source.BoardID, changes, err
	}

	dest, err := guard.Load[*board.Column](ctx, u, board.KindColumn, *cmd.TargetParentID)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if dest.BoardID != source.BoardID {
		return uuid.Nil, nil, domain.NewValidationError("target_parent_id", "cards cannot move to another board")
	}

	sourceCards, err := guard.Siblings[*board.Card](ctx, u, board.KindCard, source.ID)
	if err != nil {
		return uuid.Nil, nil, err
	}
	destCards, err := guard.Siblings[*board.Card](ctx, u, board.KindCard, dest.ID)
	if err != nil {
		return uuid.Nil, nil, err
	}

	before := ordering.EntriesOf(destCards)
	_, after, err := ordering.CrossParentMove(ordering.EntriesOf(sourceCards), before, card.ID, cmd.Index)
	if err != nil {
		return uuid.Nil, nil, err
	}

	card.MoveTo(dest.ID)
	changes, err := commitPositions(ctx, u, append(destCards, card), ordering.Changed(before, after))
	return source.BoardID, changes, err
}

// BulkReorder assigns the requested positions verbatim. Duplicates and gaps
// are kept. The batch is rejected before any load if it exceeds the
// configured ceiling.
func (s *BoardService) BulkReorder(ctx context.Context, cmd board.BulkReorderCommand) ([]board.Change, error) {
	const op = "BulkReorder"
	s.logger.InfoContext(ctx, "bulk reordering",
		slog.String("kind", cmd.Kind.String()),
		slog.String("parent_id", cmd.ParentID.String()),
		slog.Int("entries", len(cmd.Orders)),
	)

	if limit := s.policy.MaxBulkOperations(); len(cmd.Orders) > limit {
		return nil, s.fail(ctx, op, domain.NewValidationError("orders",
			fmt.Sprintf("must contain at most %d entries, got %d", limit, len(cmd.Orders))))
	}
	if !cmd.Kind.Ordered() {
		return nil, s.fail(ctx, op, domain.NewValidationError("kind", fmt.Sprintf("%q items cannot be reordered", cmd.Kind)))
	}

	u := s.guard.Begin()
	var (
		boardID uuid.UUID
		changes []board.Change
		err     error
	)
	switch cmd.Kind {
	case board.KindColumn:
		var b *board.Board
		if b, err = guard.Load[*board.Board](ctx, u, board.KindBoard, cmd.ParentID); err == nil {
			boardID = b.ID
			changes, err = reorder[*board.Column](ctx, u, board.KindColumn, b.ID, cmd.Orders)
		}
	default:
		var col *board.Column
		if col, err = guard.Load[*board.Column](ctx, u, board.KindColumn, cmd.ParentID); err == nil {
			boardID = col.BoardID
			changes, err = reorder[*board.Card](ctx, u, board.KindCard, col.ID, cmd.Orders)
		}
	}
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("parent_id", cmd.ParentID.String()))
	}

	s.notify(ctx, boardID, false)
	return changes, nil
}

// move renumbers the sibling set after moving id and commits every entry
// whose position changed.
func move[T board.Positioned](ctx context.Context, u *guard.Unit, kind board.Kind, parentID, id uuid.UUID, index int) ([]board.Change, error) {
	sibs, err := guard.Siblings[T](ctx, u, kind, parentID)
	if err != nil {
		return nil, err
	}
	before := ordering.EntriesOf(sibs)
	after, err := ordering.SingleMove(before, id, index)
	if err != nil {
		return nil, err
	}
	return commitPositions(ctx, u, sibs, ordering.Changed(before, after))
}

func reorder[T board.Positioned](ctx context.Context, u *guard.Unit, kind board.Kind, parentID uuid.UUID, orders map[uuid.UUID]int) ([]board.Change, error) {
	sibs, err := guard.Siblings[T](ctx, u, kind, parentID)
	if err != nil {
		return nil, err
	}
	before := ordering.EntriesOf(sibs)
	return commitPositions(ctx, u, sibs, ordering.Changed(before, ordering.BulkReorder(before, orders)))
}

// commitPositions writes the new positions onto items and commits them in
// the order of changed. The first failure stops the batch; earlier commits
// stay.
func commitPositions[T board.Positioned](ctx context.Context, u *guard.Unit, items []T, changed []ordering.Entry) ([]board.Change, error) {
	byID := make(map[uuid.UUID]T, len(items))
	for _, item := range items {
		byID[item.Identity()] = item
	}
	for _, e := range changed {
		item, ok := byID[e.ID]
		if !ok {
			continue
		}
		item.SetPosition(e.Order)
		if err := u.Stage(item); err != nil {
			return nil, err
		}
	}

	report, err := u.Commit(ctx)
	if err != nil {
		return nil, err
	}
	changes := make([]board.Change, len(report.Committed))
	for i, e := range report.Committed {
		changes[i] = board.ChangeOf(e)
	}
	return changes, nil
}

// ListBoards returns every board, favorites first, then by title.
func (s *BoardService) ListBoards(ctx context.Context) ([]*board.Board, error) {
	s.logger.InfoContext(ctx, "listing boards")

	items, err := s.store.List(ctx, board.KindBoard)
	if err != nil {
		return nil, s.fail(ctx, "ListBoards", err)
	}

	boards := make([]*board.Board, 0, len(items))
	for _, e := range items {
		if b, ok := e.(*board.Board); ok {
			boards = append(boards, b)
		}
	}
	slices.SortStableFunc(boards, func(a, b *board.Board) int {
		if a.IsFavorite != b.IsFavorite {
			if a.IsFavorite {
				return -1
			}
			return 1
		}
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})
	return boards, nil
}

// GetBoard returns the board with its ordered columns, each column's ordered
// cards, and its labels.
func (s *BoardService) GetBoard(ctx context.Context, id uuid.UUID) (*board.Board, error) {
	const op = "GetBoard"
	s.logger.InfoContext(ctx, "fetching board", slog.String("id", id.String()))

	b, err := s.loadBoard(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("id", id.String()))
	}
	return b, nil
}

func (s *BoardService) loadBoard(ctx context.Context, id uuid.UUID) (*board.Board, error) {
	e, err := s.guard.Load(ctx, board.KindBoard, id)
	if err != nil {
		return nil, err
	}
	b, ok := e.(*board.Board)
	if !ok {
		return nil, fmt.Errorf("%w: board %s", guard.ErrTypeMismatch, id)
	}

	columns, err := loadChildren[*board.Column](ctx, s.guard, board.KindColumn, b.ID)
	if err != nil {
		return nil, err
	}
	cardLists := fanout.Run(ctx, readWorkers, columns, func(ctx context.Context, c *board.Column) ([]*board.Card, error) {
		return loadChildren[*board.Card](ctx, s.guard, board.KindCard, c.ID)
	})
	for i, c := range columns {
		if cardLists[i].Err != nil {
			return nil, cardLists[i].Err
		}
		for _, card := range cardLists[i].Value {
			c.AddCard(card)
		}
		b.AddColumn(c)
	}

	labels, err := loadChildren[*board.Label](ctx, s.guard, board.KindLabel, b.ID)
	if err != nil {
		return nil, err
	}
	for _, l := range labels {
		b.AddLabel(l)
	}
	return b, nil
}

func loadChildren[T board.Entity](ctx context.Context, g *guard.Guard, kind board.Kind, parentID uuid.UUID) ([]T, error) {
	items, err := g.LoadSiblings(ctx, kind, parentID)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, e := range items {
		v, ok := e.(T)
		if !ok {
			return nil, fmt.Errorf("%w: %s", guard.ErrTypeMismatch, board.Describe(e))
		}
		out = append(out, v)
	}
	return out, nil
}

// fail logs err and converts it into what the caller sees. Validation,
// not-found and conflict errors are returned unchanged. Anything else is
// replaced by an opaque error carrying only the correlation id.
func (s *BoardService) fail(ctx context.Context, op string, err error, attrs ...slog.Attr) error {
	args := make([]any, 0, len(attrs)+3)
	args = append(args, slog.String("operation", op))
	for _, a := range attrs {
		args = append(args, a)
	}

	if domain.IsExpected(err) {
		args = append(args, slog.String("outcome", string(domain.Classify(err))), slog.Any("error", err))
		s.logger.WarnContext(ctx, "operation rejected", args...)
		return err
	}

	correlationID := logging.CorrelationID(ctx)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	args = append(args, slog.String("correlation_id", correlationID), slog.Any("error", err))
	s.logger.ErrorContext(ctx, "operation failed", args...)

	if errors.Is(err, domain.ErrUnavailable) {
		return fmt.Errorf("%w (correlation id %s)", domain.ErrUnavailable, correlationID)
	}
	return &domain.UnexpectedError{CorrelationID: correlationID}
}

// notify broadcasts the board invalidation, and the dashboard one when asked.
// It runs on a context detached from the request so a client that hangs up
// right after a successful write does not suppress the event.
func (s *BoardService) notify(ctx context.Context, boardID uuid.UUID, dashboard bool) {
	ctx = context.WithoutCancel(ctx)
	if boardID != uuid.Nil {
		s.notifier.Broadcast(ctx, groups.BoardGroup(boardID), groups.EventBoardUpdated, nil)
	}
	if dashboard {
		s.notifier.Broadcast(ctx, groups.DashboardGroup, groups.EventDashboardUpdated, nil)
	}
}
