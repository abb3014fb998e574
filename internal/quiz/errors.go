package quiz

import "fmt"

// ValidationError reports an invariant violation in a quiz, question or
// grading override. Field names the offending field, ID the entity when one
// is involved.
type ValidationError struct {
	Field  string
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("validation failed on %s (%s): %s", e.Field, e.ID, e.Reason)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a reference to an id that does not exist within the
// aggregate being mutated.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
