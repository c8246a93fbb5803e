package dto_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/boardsync/internal/domain"
	"github.com/jsamuelsen11/boardsync/internal/domain/board"
)

func stringPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64    { return &i }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

type validatable interface {
	Validate() error
}

func TestRequests_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       validatable
		wantField string
	}{
		{"board valid", &dto.CreateBoardRequest{Title: "Roadmap"}, ""},
		{"board missing title", &dto.CreateBoardRequest{}, "title"},
		{"board whitespace title", &dto.CreateBoardRequest{Title: "   "}, "title"},
		{"board patch empty", &dto.UpdateBoardRequest{}, ""},
		{"board patch blank title", &dto.UpdateBoardRequest{Title: stringPtr(" ")}, "title"},
		{"column valid", &dto.CreateColumnRequest{Title: "Doing"}, ""},
		{"column missing title", &dto.CreateColumnRequest{HeaderColor: "#fff"}, "title"},
		{"column patch blank title", &dto.UpdateColumnRequest{Title: stringPtr("")}, "title"},
		{"card valid", &dto.CreateCardRequest{Title: "Ship it"}, ""},
		{"card missing title", &dto.CreateCardRequest{Description: "x"}, "title"},
		{"card bad label id", &dto.CreateCardRequest{Title: "x", LabelIDs: []string{"nope"}}, "label_ids[0]"},
		{"card patch bad label id", &dto.UpdateCardRequest{LabelIDs: &[]string{uuid.NewString(), "nope"}}, "label_ids[1]"},
		{"label valid", &dto.CreateLabelRequest{Name: "bug"}, ""},
		{"label missing name", &dto.CreateLabelRequest{Color: "#f00"}, "name"},
		{"label patch blank name", &dto.UpdateLabelRequest{Name: stringPtr(" ")}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateCardRequest_PatchLabels(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	req := dto.UpdateCardRequest{LabelIDs: &[]string{id.String()}}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	p := req.Patch()
	if p.LabelIDs == nil || len(*p.LabelIDs) != 1 || (*p.LabelIDs)[0] != id {
		t.Errorf("LabelIDs = %v, want [%s]", p.LabelIDs, id)
	}

	// An explicit empty list clears labels; an absent one leaves them alone.
	cleared := dto.UpdateCardRequest{LabelIDs: &[]string{}}
	if err := cleared.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if p := cleared.Patch(); p.LabelIDs == nil || len(*p.LabelIDs) != 0 {
		t.Errorf("LabelIDs = %v, want empty non-nil", p.LabelIDs)
	}
	untouched := dto.UpdateCardRequest{Title: stringPtr("x")}
	if err := untouched.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if p := untouched.Patch(); p.LabelIDs != nil {
		t.Errorf("LabelIDs = %v, want nil", p.LabelIDs)
	}
}

func TestMoveRequest_Validate(t *testing.T) {
	t.Parallel()

	item := uuid.New()
	target := uuid.New()

	tests := []struct {
		name      string
		req       dto.MoveRequest
		wantField string
	}{
		{"unknown kind", dto.MoveRequest{Kind: "swimlane", ItemID: item.String()}, "kind"},
		{"missing item", dto.MoveRequest{Kind: "card"}, "item_id"},
		{"bad item", dto.MoveRequest{Kind: "card", ItemID: "123"}, "item_id"},
		{"nil item", dto.MoveRequest{Kind: "card", ItemID: uuid.Nil.String()}, "item_id"},
		{"bad target", dto.MoveRequest{Kind: "card", ItemID: item.String(), TargetParentID: stringPtr("x")}, "target_parent_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requireValidationField(t, tt.req.Validate(), tt.wantField)
		})
	}

	req := dto.MoveRequest{
		Kind:            "card",
		ItemID:          item.String(),
		TargetParentID:  stringPtr(target.String()),
		Index:           -4,
		ExpectedVersion: int64Ptr(3),
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	cmd := req.Command()
	if cmd.Kind != board.KindCard || cmd.ItemID != item || cmd.Index != -4 {
		t.Errorf("Command() = %+v", cmd)
	}
	if cmd.TargetParentID == nil || *cmd.TargetParentID != target {
		t.Errorf("TargetParentID = %v, want %s", cmd.TargetParentID, target)
	}
	if cmd.ExpectedVersion == nil || *cmd.ExpectedVersion != 3 {
		t.Errorf("ExpectedVersion = %v, want 3", cmd.ExpectedVersion)
	}
}

func TestReorderRequest_Validate(t *testing.T) {
	t.Parallel()

	parent := uuid.New()
	a, b := uuid.New(), uuid.New()

	requireValidationField(t, (&dto.ReorderRequest{Kind: "column", ParentID: parent.String()}).Validate(), "orders")
	requireValidationField(t, (&dto.ReorderRequest{Kind: "column", Orders: map[string]int{}}).Validate(), "parent_id")
	requireValidationField(t, (&dto.ReorderRequest{
		Kind: "card", ParentID: parent.String(), Orders: map[string]int{"bogus": 1},
	}).Validate(), "orders.bogus")

	req := dto.ReorderRequest{
		Kind:     "card",
		ParentID: parent.String(),
		Orders:   map[string]int{a.String(): 5, b.String(): 5},
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	cmd := req.Command()
	if cmd.Kind != board.KindCard || cmd.ParentID != parent {
		t.Errorf("Command() = %+v", cmd)
	}
	// Duplicate positions are passed through untouched.
	if cmd.Orders[a] != 5 || cmd.Orders[b] != 5 {
		t.Errorf("Orders = %v, want both at 5", cmd.Orders)
	}
}

func TestReorderRequest_LabelKindParses(t *testing.T) {
	t.Parallel()

	// Rejecting unordered kinds is the service's job.
	req := dto.ReorderRequest{Kind: "label", ParentID: uuid.NewString(), Orders: map[string]int{}}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if req.Command().Kind != board.KindLabel {
		t.Errorf("Kind = %q, want label", req.Command().Kind)
	}
}
