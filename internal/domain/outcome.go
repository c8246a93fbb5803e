package domain

import "errors"

// Outcome is the coarse result kind of a board mutation.
type Outcome string

const (
	OutcomeSuccess    Outcome = "success"
	OutcomeNotFound   Outcome = "not_found"
	OutcomeConflict   Outcome = "conflict"
	OutcomeValidation Outcome = "validation_error"
	OutcomeUnexpected Outcome = "unexpected"
)

// Classify maps an error returned by a board operation to its Outcome.
// A nil error is OutcomeSuccess. ErrUnavailable counts as unexpected.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrValidation):
		return OutcomeValidation
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrConflict):
		return OutcomeConflict
	default:
		return OutcomeUnexpected
	}
}

// IsExpected reports whether err is one of the kinds a caller is expected to
// handle (validation, not found, conflict) rather than a system failure.
func IsExpected(err error) bool {
	switch Classify(err) {
	case OutcomeValidation, OutcomeNotFound, OutcomeConflict:
		return true
	default:
		return false
	}
}
