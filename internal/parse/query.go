package parse

import (
	"regexp"
	"strings"

	"github.com/ldi/tasktalk/pkg/models"
)

// QueryFilter carries the filter criteria extracted from a read query.
// Zero values impose no constraint; Assignee is a raw token for the
// interpreter to resolve.
type QueryFilter struct {
	Assignee string
	Status   models.TaskStatus
	Priority models.TaskPriority
}

var queryAssigneeRe = regexp.MustCompile(`(?i)\b(?:for|assigned\s+to)\s+(\w+)`)

// Query extracts filter criteria from a task read query, e.g. "show me
// pending tasks for Ravi" or "high priority tasks". An empty query means no
// filtering at all.
func Query(text string) QueryFilter {
	var f QueryFilter
	if strings.TrimSpace(text) == "" {
		return f
	}

	if m := queryAssigneeRe.FindStringSubmatch(text); m != nil {
		f.Assignee = m[1]
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "pending"):
		f.Status = models.TaskStatusPending
	case strings.Contains(lower, "in progress"), strings.Contains(lower, "in_progress"):
		f.Status = models.TaskStatusInProgress
	case strings.Contains(lower, "done"), strings.Contains(lower, "completed"):
		f.Status = models.TaskStatusDone
	}

	if strings.Contains(lower, "high priority") || strings.Contains(lower, "urgent") {
		f.Priority = models.TaskPriorityHigh
	}

	return f
}
