package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/app/guard"
	"github.com/jsamuelsen11/boardsync/internal/domain"
	"github.com/jsamuelsen11/boardsync/internal/domain/board"
)

// CreateBoard stores a new board and tells the dashboard about it.
func (s *BoardService) CreateBoard(ctx context.Context, in *board.Board) (*board.Board, error) {
	const op = "CreateBoard"
	s.logger.InfoContext(ctx, "creating board", slog.String("title", in.Title))

	b := board.NewBoard(in.Title, s.now())
	b.TitleColor = in.TitleColor
	b.BackgroundColor = in.BackgroundColor
	b.BackgroundImage = in.BackgroundImage
	b.IsFavorite = in.IsFavorite
	if err := s.sanitizeBoard(b); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	if err := s.store.Insert(ctx, b); err != nil {
		return nil, s.fail(ctx, op, err, slog.String("id", b.ID.String()))
	}

	s.notify(ctx, b.ID, true)
	return b, nil
}

// CreateColumn appends a column after the board's last one.
func (s *BoardService) CreateColumn(ctx context.Context, in *board.Column) (*board.Column, error) {
	const op = "CreateColumn"
	s.logger.InfoContext(ctx, "creating column", slog.String("board_id", in.BoardID.String()))

	c := board.NewColumn(in.BoardID, in.Title, 0, s.now())
	c.TitleColor = in.TitleColor
	c.HeaderColor = in.HeaderColor
	if err := s.sanitizeColumn(c); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	b, err := guard.Load[*board.Board](ctx, s.guard.Begin(), board.KindBoard, c.BoardID)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("board_id", c.BoardID.String()))
	}
	columns, err := loadChildren[*board.Column](ctx, s.guard, board.KindColumn, b.ID)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("board_id", b.ID.String()))
	}
	for _, existing := range columns {
		b.AddColumn(existing)
	}
	c.Order = b.NextColumnOrder()

	if err := s.store.Insert(ctx, c); err != nil {
		return nil, s.fail(ctx, op, err, slog.String("board_id", b.ID.String()))
	}

	s.notify(ctx, b.ID, false)
	return c, nil
}

// CreateCard puts a new card at position 0 of its column. Existing cards are
// not shifted.
func (s *BoardService) CreateCard(ctx context.Context, in *board.Card) (*board.Card, error) {
	const op = "CreateCard"
	s.logger.InfoContext(ctx, "creating card", slog.String("column_id", in.ColumnID.String()))

	c := board.NewCard(in.ColumnID, in.Title, s.now())
	c.Description = in.Description
	c.SetLabels(in.LabelIDs)
	if err := s.sanitizeCard(c); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	col, err := guard.Load[*board.Column](ctx, s.guard.Begin(), board.KindColumn, c.ColumnID)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("column_id", c.ColumnID.String()))
	}
	if err := s.checkLabels(ctx, col.BoardID, c.LabelIDs); err != nil {
		return nil, s.fail(ctx, op, err, slog.String("column_id", col.ID.String()))
	}

	if err := s.store.Insert(ctx, c); err != nil {
		return nil, s.fail(ctx, op, err, slog.String("column_id", col.ID.String()))
	}

	s.notify(ctx, col.BoardID, false)
	return c, nil
}

// CreateLabel adds a label to a board.
func (s *BoardService) CreateLabel(ctx context.Context, in *board.Label) (*board.Label, error) {
	const op = "CreateLabel"
	s.logger.InfoContext(ctx, "creating label", slog.String("board_id", in.BoardID.String()))

	l := board.NewLabel(in.BoardID, in.Name, s.now())
	l.Color = in.Color
	l.TextColor = in.TextColor
	if err := s.sanitizeLabel(l); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	if _, err := s.guard.Load(ctx, board.KindBoard, l.BoardID); err != nil {
		return nil, s.fail(ctx, op, err, slog.String("board_id", l.BoardID.String()))
	}
	if err := s.store.Insert(ctx, l); err != nil {
		return nil, s.fail(ctx, op, err, slog.String("board_id", l.BoardID.String()))
	}

	s.notify(ctx, l.BoardID, false)
	return l, nil
}

// UpdateBoard edits board metadata. Both the board and the dashboard are
// notified because the dashboard shows titles, colors and favorites.
func (s *BoardService) UpdateBoard(ctx context.Context, id uuid.UUID, patch board.BoardPatch, expected *int64) (*board.Board, error) {
	const op = "UpdateBoard"
	s.logger.InfoContext(ctx, "updating board", slog.String("id", id.String()))

	b, err := editOne(ctx, s.guard, board.KindBoard, id, expected, func(b *board.Board) error {
		b.Apply(patch)
		return s.sanitizeBoard(b)
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("id", id.String()))
	}

	s.notify(ctx, b.ID, true)
	return b, nil
}

// UpdateColumn edits a column's title and colors.
func (s *BoardService) UpdateColumn(ctx context.Context, id uuid.UUID, patch board.ColumnPatch, expected *int64) (*board.Column, error) {
	const op = "UpdateColumn"
	s.logger.InfoContext(ctx, "updating column", slog.String("id", id.String()))

	c, err := editOne(ctx, s.guard, board.KindColumn, id, expected, func(c *board.Column) error {
		c.Apply(patch)
		return s.sanitizeColumn(c)
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("id", id.String()))
	}

	s.notify(ctx, c.BoardID, false)
	return c, nil
}

// UpdateCard edits a card's title, description and label references.
// Referenced labels must belong to the card's board.
func (s *BoardService) UpdateCard(ctx context.Context, id uuid.UUID, patch board.CardPatch, expected *int64) (*board.Card, error) {
	const op = "UpdateCard"
	s.logger.InfoContext(ctx, "updating card", slog.String("id", id.String()))

	var boardID uuid.UUID
	c, err := editOne(ctx, s.guard, board.KindCard, id, expected, func(c *board.Card) error {
		c.Apply(patch)
		if err := s.sanitizeCard(c); err != nil {
			return err
		}
		var err error
		if boardID, err = s.boardOfColumn(ctx, c.ColumnID); err != nil {
			return err
		}
		if patch.LabelIDs == nil {
			return nil
		}
		return s.checkLabels(ctx, boardID, c.LabelIDs)
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("id", id.String()))
	}

	s.notify(ctx, boardID, false)
	return c, nil
}

// SetCardArchived archives or restores a card.
func (s *BoardService) SetCardArchived(ctx context.Context, id uuid.UUID, archived bool, expected *int64) (*board.Card, error) {
	const op = "SetCardArchived"
	s.logger.InfoContext(ctx, "setting card archive state",
		slog.String("id", id.String()),
		slog.Bool("archived", archived),
	)

	var boardID uuid.UUID
	c, err := editOne(ctx, s.guard, board.KindCard, id, expected, func(c *board.Card) error {
		if archived {
			c.Archive()
		} else {
			c.Unarchive()
		}
		var err error
		boardID, err = s.boardOfColumn(ctx, c.ColumnID)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("id", id.String()))
	}

	s.notify(ctx, boardID, false)
	return c, nil
}

// UpdateLabel edits a label's name and colors.
func (s *BoardService) UpdateLabel(ctx context.Context, id uuid.UUID, patch board.LabelPatch, expected *int64) (*board.Label, error) {
	const op = "UpdateLabel"
	s.logger.InfoContext(ctx, "updating label", slog.String("id", id.String()))

	l, err := editOne(ctx, s.guard, board.KindLabel, id, expected, func(l *board.Label) error {
		l.Apply(patch)
		return s.sanitizeLabel(l)
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("id", id.String()))
	}

	s.notify(ctx, l.BoardID, false)
	return l, nil
}

// editOne is the single-entity load, mutate, commit cycle.
func editOne[T board.Entity](
	ctx context.Context,
	g *guard.Guard,
	kind board.Kind,
	id uuid.UUID,
	expected *int64,
	mutate func(T) error,
) (T, error) {
	var zero T

	u := g.Begin()
	e, err := guard.Load[T](ctx, u, kind, id)
	if err != nil {
		return zero, err
	}
	if err := guard.CheckExpected(e, expected); err != nil {
		return zero, err
	}
	if err := mutate(e); err != nil {
		return zero, err
	}
	if err := u.Stage(e); err != nil {
		return zero, err
	}
	if _, err := u.Commit(ctx); err != nil {
		return zero, err
	}
	return e, nil
}

// Delete removes an entity together with everything it owns. Children that
// vanish concurrently are skipped. Deleting a label also strips it from the
// cards that reference it.
func (s *BoardService) Delete(ctx context.Context, kind board.Kind, id uuid.UUID) error {
	const op = "Delete"
	s.logger.InfoContext(ctx, "deleting entity",
		slog.String("kind", kind.String()),
		slog.String("id", id.String()),
	)

	e, err := s.guard.Load(ctx, kind, id)
	if err != nil {
		return s.fail(ctx, op, err, slog.String("id", id.String()))
	}

	var boardID uuid.UUID
	switch v := e.(type) {
	case *board.Board:
		boardID = v.ID
		err = s.deleteBoard(ctx, v)
	case *board.Column:
		boardID = v.BoardID
		err = s.deleteColumn(ctx, v.ID)
	case *board.Card:
		if boardID, err = s.boardOfColumn(ctx, v.ColumnID); errors.Is(err, domain.ErrNotFound) {
			err = nil
		}
		if err == nil {
			err = s.store.Delete(ctx, board.KindCard, v.ID)
		}
	case *board.Label:
		boardID = v.BoardID
		err = s.deleteLabel(ctx, v)
	}
	if err != nil {
		return s.fail(ctx, op, err, slog.String("id", id.String()))
	}

	s.notify(ctx, boardID, kind == board.KindBoard)
	return nil
}

func (s *BoardService) deleteBoard(ctx context.Context, b *board.Board) error {
	columns, err := s.store.LoadSiblings(ctx, board.KindColumn, b.ID)
	if err != nil {
		return err
	}
	for _, c := range columns {
		if err := s.deleteColumn(ctx, c.Identity()); err != nil {
			return err
		}
	}
	labels, err := s.store.LoadSiblings(ctx, board.KindLabel, b.ID)
	if err != nil {
		return err
	}
	for _, l := range labels {
		if err := s.deleteQuietly(ctx, board.KindLabel, l.Identity()); err != nil {
			return err
		}
	}
	return s.store.Delete(ctx, board.KindBoard, b.ID)
}

func (s *BoardService) deleteColumn(ctx context.Context, id uuid.UUID) error {
	cards, err := s.store.LoadSiblings(ctx, board.KindCard, id)
	if err != nil {
		return err
	}
	for _, c := range cards {
		if err := s.deleteQuietly(ctx, board.KindCard, c.Identity()); err != nil {
			return err
		}
	}
	return s.deleteQuietly(ctx, board.KindColumn, id)
}

func (s *BoardService) deleteLabel(ctx context.Context, l *board.Label) error {
	columns, err := loadChildren[*board.Column](ctx, s.guard, board.KindColumn, l.BoardID)
	if err != nil {
		return err
	}
	for _, col := range columns {
		cards, err := loadChildren[*board.Card](ctx, s.guard, board.KindCard, col.ID)
		if err != nil {
			return err
		}
		for _, card := range cards {
			if !card.HasLabel(l.ID) {
				continue
			}
			remaining := make([]uuid.UUID, 0, len(card.LabelIDs))
			for _, ref := range card.LabelIDs {
				if ref != l.ID {
					remaining = append(remaining, ref)
				}
			}
			card.SetLabels(remaining)
			if err := s.guard.Commit(ctx, card, card.CurrentVersion()); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
		}
	}
	return s.store.Delete(ctx, board.KindLabel, l.ID)
}

func (s *BoardService) deleteQuietly(ctx context.Context, kind board.Kind, id uuid.UUID) error {
	if err := s.store.Delete(ctx, kind, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

func (s *BoardService) boardOfColumn(ctx context.Context, columnID uuid.UUID) (uuid.UUID, error) {
	e, err := s.guard.Load(ctx, board.KindColumn, columnID)
	if err != nil {
		return uuid.Nil, err
	}
	return e.ParentID(), nil
}

// checkLabels verifies that every referenced label exists on boardID.
func (s *BoardService) checkLabels(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) error {
	for _, id := range ids {
		e, err := s.store.Load(ctx, board.KindLabel, id)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return domain.NewValidationError("label_ids", "unknown label "+id.String())
		case err != nil:
			return err
		case e.ParentID() != boardID:
			return domain.NewValidationError("label_ids", "label "+id.String()+" belongs to another board")
		}
	}
	return nil
}

func (s *BoardService) sanitizeBoard(b *board.Board) error {
	var errs fieldErrors
	b.Title = errs.take(s.policy.Title("title", b.Title))
	b.TitleColor = errs.take(s.policy.Color("title_color", b.TitleColor))
	b.BackgroundColor = errs.take(s.policy.Color("background_color", b.BackgroundColor))
	b.BackgroundImage = errs.take(s.policy.Text("background_image", b.BackgroundImage))
	return errs.err()
}

func (s *BoardService) sanitizeColumn(c *board.Column) error {
	var errs fieldErrors
	c.Title = errs.take(s.policy.Title("title", c.Title))
	c.TitleColor = errs.take(s.policy.Color("title_color", c.TitleColor))
	c.HeaderColor = errs.take(s.policy.Color("header_color", c.HeaderColor))
	if err := errs.err(); err != nil {
		return err
	}
	return c.Validate()
}

func (s *BoardService) sanitizeCard(c *board.Card) error {
	var errs fieldErrors
	c.Title = errs.take(s.policy.Title("title", c.Title))
	c.Description = errs.take(s.policy.Text("description", c.Description))
	if err := errs.err(); err != nil {
		return err
	}
	return c.Validate()
}

func (s *BoardService) sanitizeLabel(l *board.Label) error {
	var errs fieldErrors
	l.Name = errs.take(s.policy.Title("name", l.Name))
	l.Color = errs.take(s.policy.Color("color", l.Color))
	l.TextColor = errs.take(s.policy.Color("text_color", l.TextColor))
	if err := errs.err(); err != nil {
		return err
	}
	return l.Validate()
}

// fieldErrors merges per-field validation failures into one ValidationError.
type fieldErrors struct {
	fields map[string]string
	other  error
}

func (f *fieldErrors) take(v string, err error) string {
	if err == nil {
		return v
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		f.other = errors.Join(f.other, err)
		return v
	}
	if f.fields == nil {
		f.fields = make(map[string]string)
	}
	for k, msg := range verr.Fields {
		f.fields[k] = msg
	}
	return v
}

func (f *fieldErrors) err() error {
	if f.other != nil {
		return f.other
	}
	if len(f.fields) > 0 {
		return &domain.ValidationError{Fields: f.fields}
	}
	return nil
}
