package interpreter

import (
	"github.com/ldi/tasktalk/internal/parse"
	"github.com/ldi/tasktalk/pkg/models"
)

// SuggestionDisplayLimit caps how many suggestions a narrative rendering
// should present. The buffer always holds the full list.
const SuggestionDisplayLimit = 5

// Draft is a parsed create instruction that has not reached the store yet.
// It rides along on AmbiguousNameError so a confirmation round-trip keeps
// the fields the user already supplied.
type Draft struct {
	Title    string              `json:"title"`
	Assignee string              `json:"assignee"`
	Priority models.TaskPriority `json:"priority"`
	DueDate  string              `json:"due_date"`
}

// CreateResult is the outcome of a create instruction: either a stored task,
// or the suggestion list produced by a meeting breakdown.
type CreateResult struct {
	Task        *models.Task        `json:"task,omitempty"`
	Suggestions []models.Suggestion `json:"suggestions,omitempty"`
}

// Change records the prior value of one field on one task.
type Change struct {
	TaskID int64  `json:"task_id"`
	Title  string `json:"title"`
	Field  string `json:"field"`
	Was    string `json:"was"`
	Now    string `json:"now"`
}

// UpdateResult is the outcome of a single-task update, or - when the
// instruction carried the all-tasks marker - the embedded bulk outcome.
type UpdateResult struct {
	Task   *models.Task `json:"task,omitempty"`
	Change *Change      `json:"change,omitempty"`
	Bulk   *BulkResult  `json:"bulk,omitempty"`
}

// BulkResult is the outcome of an all-tasks operation. Changes carries the
// per-task "was" values; Tasks is the full updated snapshot.
type BulkResult struct {
	Op      parse.BulkOp   `json:"op"`
	Tasks   []*models.Task `json:"tasks"`
	Changes []Change       `json:"changes"`
}

// SelectResult is the outcome of a suggestion selection. Cancelled means the
// buffer was explicitly discarded; otherwise Created lists the new tasks in
// ascending suggestion order.
type SelectResult struct {
	Cancelled bool           `json:"cancelled,omitempty"`
	Created   []*models.Task `json:"created,omitempty"`
}
