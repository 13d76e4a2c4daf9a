package ui

import (
	"strings"
	"testing"

	"github.com/ldi/tasktalk/internal/interpreter"
	"github.com/ldi/tasktalk/pkg/models"
)

func TestRenderTasks(t *testing.T) {
	out := RenderTasks(nil)
	if !strings.Contains(out, "No tasks found") {
		t.Errorf("Expected empty-list message, got %q", out)
	}

	tasks := []*models.Task{
		{ID: 1, Title: "Fix login bug", Assignee: "Ravi", Status: models.TaskStatusPending, Priority: models.TaskPriorityHigh, DueDate: "2024-03-01"},
	}
	out = RenderTasks(tasks)
	for _, want := range []string{"Fix login bug", "Ravi", "pending", "2024-03-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderSuggestionsCapped(t *testing.T) {
	items := make([]models.Suggestion, interpreter.SuggestionDisplayLimit+3)
	for i := range items {
		items[i] = models.Suggestion{Title: "Suggestion"}
	}

	out := RenderSuggestions(items)
	if !strings.Contains(out, "Found 8 potential tasks") {
		t.Errorf("Expected full count in header:\n%s", out)
	}
	if !strings.Contains(out, "and 3 more potential tasks") {
		t.Errorf("Expected overflow note:\n%s", out)
	}
	if strings.Contains(out, "6. ") {
		t.Errorf("Expected at most %d numbered entries:\n%s", interpreter.SuggestionDisplayLimit, out)
	}
}

func TestRenderChanges(t *testing.T) {
	changes := []interpreter.Change{
		{TaskID: 1, Title: "Fix login bug", Field: "assignee", Was: "Ravi", Now: "unassigned"},
	}
	out := RenderChanges(changes)
	if !strings.Contains(out, "Ravi -> unassigned") {
		t.Errorf("Expected before/after in output, got %q", out)
	}
}

func TestClip(t *testing.T) {
	if got := clip("short", 10); got != "short" {
		t.Errorf("Expected no clipping, got %q", got)
	}
	if got := clip(strings.Repeat("x", 50), 10); got != "xxxxxxx..." {
		t.Errorf("Expected clipped string, got %q", got)
	}
}
