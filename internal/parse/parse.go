// Package parse turns free-form task instructions into structured commands.
// All functions are pure: they never touch the task store, never panic on
// malformed input, and report failures as typed values for the interpreter
// to act on.
//
// Pattern cascades are explicit ordered rule slices evaluated first-match-wins;
// precedence is the slice order, nothing else.
package parse

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/ldi/tasktalk/pkg/models"
)

// Field names carried by UpdateCommand.
const (
	FieldStatus   = "status"
	FieldAssignee = "assignee"
)

var (
	ErrEmptyTitle           = errors.New("task title is empty")
	ErrMissingTaskID        = errors.New("missing task id")
	ErrUnknownBulkOperation = errors.New("unrecognized bulk operation")
	ErrInvalidSelection     = errors.New("invalid selection")
)

// UnrecognizedUpdateError means a task id was found but no update pattern
// matched the rest of the instruction.
type UnrecognizedUpdateError struct {
	TaskID int64
}

func (e *UnrecognizedUpdateError) Error() string {
	return fmt.Sprintf("unrecognized update for task %d", e.TaskID)
}

// statusRule maps a keyword group to a task status. The slice order is the
// documented precedence: done-words are tested before pending-words before
// in-progress-words, and the first group with a hit wins.
type statusRule struct {
	re     *regexp.Regexp
	status models.TaskStatus
}

var statusRules = []statusRule{
	{regexp.MustCompile(`(?i)\b(done|completed|finished)\b`), models.TaskStatusDone},
	{regexp.MustCompile(`(?i)\b(pending|todo|waiting)\b`), models.TaskStatusPending},
	{regexp.MustCompile(`(?i)\b(in[_\s]progress|working|started)\b`), models.TaskStatusInProgress},
}

func matchStatus(text string) (models.TaskStatus, bool) {
	for _, r := range statusRules {
		if r.re.MatchString(text) {
			return r.status, true
		}
	}
	return "", false
}
