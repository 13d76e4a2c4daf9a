package parse

import (
	"testing"

	"github.com/ldi/tasktalk/pkg/models"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		text string
		want QueryFilter
	}{
		{"", QueryFilter{}},
		{"show me all tasks", QueryFilter{}},
		{"show pending tasks for Ravi", QueryFilter{Assignee: "Ravi", Status: models.TaskStatusPending}},
		{"tasks assigned to Sam", QueryFilter{Assignee: "Sam"}},
		{"what is done", QueryFilter{Status: models.TaskStatusDone}},
		{"list completed tasks", QueryFilter{Status: models.TaskStatusDone}},
		{"what is in progress", QueryFilter{Status: models.TaskStatusInProgress}},
		{"high priority tasks", QueryFilter{Priority: models.TaskPriorityHigh}},
		{"urgent tasks for Ankita", QueryFilter{Assignee: "Ankita", Priority: models.TaskPriorityHigh}},
		// status precedence: pending outranks in progress
		{"pending and in progress tasks", QueryFilter{Status: models.TaskStatusPending}},
	}

	for _, tt := range tests {
		if got := Query(tt.text); got != tt.want {
			t.Errorf("Query(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}
