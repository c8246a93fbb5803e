package ports

// InputPolicy is the field validation collaborator. Implemented by
// platform/validation; called by the board service.
type InputPolicy interface {
	// MaxBulkOperations is the ceiling on entries in one bulk reorder.
	MaxBulkOperations() int

	// Title trims and checks a required title-like field.
	// Returns a *domain.ValidationError keyed by field on failure.
	Title(field, value string) (string, error)

	// Text trims and checks an optional free-text field.
	Text(field, value string) (string, error)

	// Color checks an optional hex color. The empty string is accepted.
	Color(field, value string) (string, error)
}
