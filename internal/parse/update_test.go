package parse

import (
	"errors"
	"testing"

	"github.com/ldi/tasktalk/pkg/models"
)

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		text   string
		taskID int64
		value  string
	}{
		{"Mark task 2 as done", 2, "done"},
		{"task 3 is completed", 3, "done"},
		{"task 7 finished", 7, "done"},
		{"set task 1 to pending", 1, "pending"},
		{"task 4 is still todo", 4, "pending"},
		{"task 5 is now in progress", 5, "in_progress"},
		{"task 5 is in_progress", 5, "in_progress"},
		{"started working on task 9", 9, "in_progress"},
	}

	for _, tt := range tests {
		cmd, err := Update(tt.text)
		if err != nil {
			t.Errorf("Update(%q) failed: %v", tt.text, err)
			continue
		}
		if cmd.Bulk {
			t.Errorf("Update(%q): unexpected bulk flag", tt.text)
		}
		if cmd.TaskID != tt.taskID || cmd.Field != FieldStatus || cmd.Value != tt.value {
			t.Errorf("Update(%q) = {%d %s %s}, want {%d status %s}", tt.text, cmd.TaskID, cmd.Field, cmd.Value, tt.taskID, tt.value)
		}
	}
}

func TestUpdateStatusPrecedence(t *testing.T) {
	// Done-words outrank pending-words which outrank in-progress-words.
	cmd, err := Update("task 1 was pending but is now done")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if cmd.Value != "done" {
		t.Errorf("Expected done to win over pending, got %s", cmd.Value)
	}

	cmd, err = Update("task 1 is pending, stop working on it")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if cmd.Value != "pending" {
		t.Errorf("Expected pending to win over working, got %s", cmd.Value)
	}
}

func TestUpdateAssignee(t *testing.T) {
	cmd, err := Update("assign task 2 to Ravi")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if cmd.TaskID != 2 || cmd.Field != FieldAssignee || cmd.Value != "Ravi" {
		t.Errorf("Expected {2 assignee Ravi}, got {%d %s %s}", cmd.TaskID, cmd.Field, cmd.Value)
	}
}

func TestUpdateUnassign(t *testing.T) {
	tests := []struct {
		text   string
		taskID int64
	}{
		{"unassign task 4", 4},
		{"task 5 should be unassigned", 5},
		{"remove the assignee from task 6", 6},
		// literal "unassigned" as an assign target never goes through matching
		{"assign task 2 to unassigned", 2},
	}

	for _, tt := range tests {
		cmd, err := Update(tt.text)
		if err != nil {
			t.Errorf("Update(%q) failed: %v", tt.text, err)
			continue
		}
		if cmd.TaskID != tt.taskID || cmd.Field != FieldAssignee || cmd.Value != models.Unassigned {
			t.Errorf("Update(%q) = {%d %s %s}, want {%d assignee unassigned}", tt.text, cmd.TaskID, cmd.Field, cmd.Value, tt.taskID)
		}
	}
}

func TestUpdateBulkMarker(t *testing.T) {
	cmd, err := Update("mark all tasks as done")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !cmd.Bulk {
		t.Errorf("Expected bulk flag for all-tasks marker")
	}
}

func TestUpdateMissingTaskID(t *testing.T) {
	_, err := Update("mark as done")
	if !errors.Is(err, ErrMissingTaskID) {
		t.Errorf("Expected ErrMissingTaskID, got %v", err)
	}
}

func TestUpdateUnrecognized(t *testing.T) {
	_, err := Update("task 7 looks great")
	var unrec *UnrecognizedUpdateError
	if !errors.As(err, &unrec) {
		t.Fatalf("Expected UnrecognizedUpdateError, got %v", err)
	}
	if unrec.TaskID != 7 {
		t.Errorf("Expected task id 7 in error, got %d", unrec.TaskID)
	}
}
