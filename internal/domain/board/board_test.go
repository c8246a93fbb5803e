package board

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/domain"
)

var testTime = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func TestNewBoard_StartsAtInitialVersion(t *testing.T) {
	t.Parallel()

	b := NewBoard("Roadmap", testTime)

	if b.ID == uuid.Nil {
		t.Fatal("ID = uuid.Nil, want generated id")
	}
	if b.Version != InitialVersion {
		t.Errorf("Version = %d, want %d", b.Version, InitialVersion)
	}
	if !b.CreatedAt.Equal(testTime) || !b.UpdatedAt.Equal(testTime) {
		t.Errorf("timestamps = %v/%v, want %v", b.CreatedAt, b.UpdatedAt, testTime)
	}
}

func TestBoard_ColumnsViewIsACopy(t *testing.T) {
	t.Parallel()

	b := NewBoard("Roadmap", testTime)
	b.AddColumn(NewColumn(uuid.Nil, "Todo", 0, testTime))

	view := b.Columns()
	view[0] = nil
	_ = append(view, NewColumn(b.ID, "Sneaky", 9, testTime))

	got := b.Columns()
	if len(got) != 1 {
		t.Fatalf("len(Columns()) = %d, want 1", len(got))
	}
	if got[0] == nil || got[0].Title != "Todo" {
		t.Errorf("Columns()[0] = %+v, want Todo column", got[0])
	}
}

func TestBoard_AddColumnRewritesParent(t *testing.T) {
	t.Parallel()

	b := NewBoard("Roadmap", testTime)
	c := NewColumn(uuid.New(), "Doing", 0, testTime)
	b.AddColumn(c)

	if c.BoardID != b.ID {
		t.Errorf("BoardID = %s, want %s", c.BoardID, b.ID)
	}
	if _, ok := b.Column(c.ID); !ok {
		t.Error("Column() did not find added column")
	}
}

func TestBoard_AddColumnTwiceReplaces(t *testing.T) {
	t.Parallel()

	b := NewBoard("Roadmap", testTime)
	c := NewColumn(b.ID, "Doing", 0, testTime)
	b.AddColumn(c)

	dup := *c
	dup.Title = "Renamed"
	b.AddColumn(&dup)

	cols := b.Columns()
	if len(cols) != 1 {
		t.Fatalf("len(Columns()) = %d, want 1", len(cols))
	}
	if cols[0].Title != "Renamed" {
		t.Errorf("Title = %q, want %q", cols[0].Title, "Renamed")
	}
}

func TestBoard_RemoveColumn(t *testing.T) {
	t.Parallel()

	b := NewBoard("Roadmap", testTime)
	c := NewColumn(b.ID, "Done", 0, testTime)
	b.AddColumn(c)

	if !b.RemoveColumn(c.ID) {
		t.Fatal("RemoveColumn() = false, want true")
	}
	if b.RemoveColumn(c.ID) {
		t.Error("second RemoveColumn() = true, want false")
	}
	if len(b.Columns()) != 0 {
		t.Errorf("len(Columns()) = %d, want 0", len(b.Columns()))
	}
}

func TestBoard_SortColumnsHandlesDuplicatePositions(t *testing.T) {
	t.Parallel()

	b := NewBoard("Roadmap", testTime)
	late := NewColumn(b.ID, "late", 1, testTime.Add(time.Minute))
	early := NewColumn(b.ID, "early", 1, testTime)
	first := NewColumn(b.ID, "first", 0, testTime.Add(time.Hour))
	b.AddColumn(late)
	b.AddColumn(early)
	b.AddColumn(first)

	b.SortColumns()

	cols := b.Columns()
	want := []string{"first", "early", "late"}
	for i, c := range cols {
		if c.Title != want[i] {
			t.Errorf("Columns()[%d] = %q, want %q", i, c.Title, want[i])
		}
	}
}

func TestBoard_NextColumnOrder(t *testing.T) {
	t.Parallel()

	b := NewBoard("Roadmap", testTime)
	if got := b.NextColumnOrder(); got != 0 {
		t.Errorf("NextColumnOrder() on empty board = %d, want 0", got)
	}

	b.AddColumn(NewColumn(b.ID, "a", 0, testTime))
	b.AddColumn(NewColumn(b.ID, "b", 7, testTime))
	if got := b.NextColumnOrder(); got != 8 {
		t.Errorf("NextColumnOrder() = %d, want 8", got)
	}
}

func TestBoard_ApplyReportsDashboardChanges(t *testing.T) {
	t.Parallel()

	title := "Renamed"
	same := "Roadmap"
	fav := true

	tests := []struct {
		name  string
		patch BoardPatch
		want  bool
	}{
		{name: "empty patch", patch: BoardPatch{}, want: false},
		{name: "same title", patch: BoardPatch{Title: &same}, want: false},
		{name: "new title", patch: BoardPatch{Title: &title}, want: true},
		{name: "favorite", patch: BoardPatch{IsFavorite: &fav}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewBoard("Roadmap", testTime)
			if got := b.Apply(tt.patch); got != tt.want {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoard_LabelsAreIndependentOfColumns(t *testing.T) {
	t.Parallel()

	b := NewBoard("Roadmap", testTime)
	l := NewLabel(uuid.Nil, "bug", testTime)
	b.AddLabel(l)

	if l.BoardID != b.ID {
		t.Errorf("label BoardID = %s, want %s", l.BoardID, b.ID)
	}
	if len(b.Labels()) != 1 || len(b.Columns()) != 0 {
		t.Errorf("labels=%d columns=%d, want 1/0", len(b.Labels()), len(b.Columns()))
	}
	if !b.RemoveLabel(l.ID) {
		t.Error("RemoveLabel() = false, want true")
	}
}

func TestColumn_CardsContainer(t *testing.T) {
	t.Parallel()

	col := NewColumn(uuid.New(), "Todo", 0, testTime)
	a := NewCard(uuid.Nil, "a", testTime)
	b := NewCard(uuid.Nil, "b", testTime)
	a.Order, b.Order = 1, 0
	col.AddCard(a)
	col.AddCard(b)
	col.SortCards()

	cards := col.Cards()
	if cards[0] != b || cards[1] != a {
		t.Errorf("Cards() order = [%s %s], want [b a]", cards[0].Title, cards[1].Title)
	}
	if a.ColumnID != col.ID {
		t.Errorf("ColumnID = %s, want %s", a.ColumnID, col.ID)
	}
	if col.CardCount() != 2 {
		t.Errorf("CardCount() = %d, want 2", col.CardCount())
	}
	if !col.RemoveCard(a.ID) || col.CardCount() != 1 {
		t.Error("RemoveCard() did not remove the card")
	}
}

func TestCard_SetLabelsDeduplicates(t *testing.T) {
	t.Parallel()

	x, y := uuid.New(), uuid.New()
	c := NewCard(uuid.New(), "card", testTime)
	c.SetLabels([]uuid.UUID{x, uuid.Nil, y, x})

	if len(c.LabelIDs) != 2 || c.LabelIDs[0] != x || c.LabelIDs[1] != y {
		t.Errorf("LabelIDs = %v, want [%s %s]", c.LabelIDs, x, y)
	}
	if !c.HasLabel(y) {
		t.Error("HasLabel(y) = false, want true")
	}
}

func TestCard_ArchiveToggle(t *testing.T) {
	t.Parallel()

	c := NewCard(uuid.New(), "card", testTime)
	c.Archive()
	if !c.IsArchived {
		t.Error("IsArchived = false after Archive()")
	}
	c.Unarchive()
	if c.IsArchived {
		t.Error("IsArchived = true after Unarchive()")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		entity interface{ Validate() error }
		field  string
	}{
		{name: "board without title", entity: NewBoard(" ", testTime), field: "title"},
		{name: "column without board", entity: NewColumn(uuid.Nil, "x", 0, testTime), field: "board_id"},
		{name: "card without title", entity: NewCard(uuid.New(), "", testTime), field: "title"},
		{name: "label without name", entity: NewLabel(uuid.New(), "", testTime), field: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.entity.Validate()
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Validate() = %v, want ErrValidation", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("errors.As(*ValidationError) = false, got %T", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("Fields = %v, want key %q", verr.Fields, tt.field)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	if k, err := ParseKind("card"); err != nil || k != KindCard {
		t.Errorf("ParseKind(card) = %q, %v", k, err)
	}
	if _, err := ParseKind("lane"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ParseKind(lane) error = %v, want ErrValidation", err)
	}
	if KindCard.ParentKind() != KindColumn || KindLabel.ParentKind() != KindBoard {
		t.Error("ParentKind mapping is wrong")
	}
	if KindLabel.Ordered() || !KindColumn.Ordered() {
		t.Error("Ordered mapping is wrong")
	}
}

func TestSortSiblings(t *testing.T) {
	t.Parallel()

	boardID := uuid.New()
	c2 := NewColumn(boardID, "two", 2, testTime)
	c0 := NewColumn(boardID, "zero", 0, testTime)
	c1 := NewColumn(boardID, "one", 1, testTime)
	items := []Entity{c2, c0, c1}

	SortSiblings(items)

	if items[0] != Entity(c0) || items[1] != Entity(c1) || items[2] != Entity(c2) {
		t.Errorf("SortSiblings() did not order by position")
	}
}
