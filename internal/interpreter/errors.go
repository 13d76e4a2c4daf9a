package interpreter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSuggestions means a selection was requested while no suggestion
// buffer exists for the conversation context.
var ErrNoSuggestions = errors.New("no task suggestions available")

// ValidationError covers malformed instructions: empty titles, missing task
// ids, unparsable selections. Nothing is mutated.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError means the referenced task id does not exist.
type NotFoundError struct {
	TaskID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.TaskID)
}

// AmbiguousNameError means a name matched the roster fuzzily but below full
// confidence. The operation was not applied; the caller should confirm the
// candidate and re-issue. Draft carries the already-parsed create fields so
// confirmation does not lose them.
type AmbiguousNameError struct {
	Input      string
	Candidate  string
	Confidence float64
	Draft      *Draft
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("did you mean %q? (interpreted %q as %q with %.0f%% confidence)",
		e.Candidate, e.Input, e.Candidate, e.Confidence)
}

// UnknownNameError means a name matched nothing in the roster at the
// required threshold. Nothing was mutated.
type UnknownNameError struct {
	Input  string
	Roster []string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("no team member named %q; available: %s",
		e.Input, strings.Join(e.Roster, ", "))
}
