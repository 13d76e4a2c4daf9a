package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// Unassigned is the assignee sentinel for tasks without an owner.
// Any other assignee value is a roster name.
const Unassigned = "unassigned"

// DateLayout is the format used for created_at and due_date values.
const DateLayout = "2006-01-02"

// DefaultDueDays is the due date offset applied when a task is created
// without an explicit due date.
const DefaultDueDays = 7

type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Assignee    string       `json:"assignee"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   string       `json:"created_at"`
	DueDate     string       `json:"due_date"`
	Description string       `json:"description,omitempty"`
}

// ValidStatus reports whether s is one of the three task states.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the three priority levels.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// DefaultDueDate returns now plus DefaultDueDays, formatted with DateLayout.
func DefaultDueDate(now time.Time) string {
	return now.AddDate(0, 0, DefaultDueDays).Format(DateLayout)
}
