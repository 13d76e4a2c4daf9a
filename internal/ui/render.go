package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ldi/tasktalk/internal/interpreter"
	"github.com/ldi/tasktalk/pkg/models"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderTasks formats a task list as an aligned table.
func RenderTasks(tasks []*models.Task) string {
	if len(tasks) == 0 {
		return dimStyle.Render("No tasks found.")
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-40s %-12s %-12s %-8s %-12s", "ID", "TITLE", "ASSIGNEE", "STATUS", "PRIO", "DUE")))
	s.WriteString("\n")
	for _, t := range tasks {
		s.WriteString(fmt.Sprintf("%-4d %-40s %-12s %-12s %-8s %-12s\n",
			t.ID, clip(t.Title, 40), t.Assignee, t.Status, t.Priority, t.DueDate))
	}
	return s.String()
}

// RenderTask formats one task as a short confirmation block.
func RenderTask(t *models.Task) string {
	return fmt.Sprintf("Task %d: %s\n  assignee: %s | status: %s | priority: %s | due: %s",
		t.ID, t.Title, t.Assignee, t.Status, t.Priority, t.DueDate)
}

// RenderSuggestions formats a suggestion list, capped at the display limit.
func RenderSuggestions(items []models.Suggestion) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("Found %d potential tasks from the meeting content:", len(items))))
	s.WriteString("\n")

	shown := len(items)
	if shown > interpreter.SuggestionDisplayLimit {
		shown = interpreter.SuggestionDisplayLimit
	}
	for i := 0; i < shown; i++ {
		s.WriteString(fmt.Sprintf("%d. %s\n", i+1, items[i].Title))
		if items[i].Details != "" {
			s.WriteString(dimStyle.Render("   " + clip(items[i].Details, 100)))
			s.WriteString("\n")
		}
	}
	if len(items) > shown {
		s.WriteString(dimStyle.Render(fmt.Sprintf("... and %d more potential tasks.", len(items)-shown)))
		s.WriteString("\n")
	}
	s.WriteString(promptStyle.Render(`Reply with "all", numbers like "1,3,5", a range like "1-3", or "none" to skip.`))
	return s.String()
}

// RenderChanges formats the per-task before/after list of a bulk update.
func RenderChanges(changes []interpreter.Change) string {
	var s strings.Builder
	for _, c := range changes {
		s.WriteString(fmt.Sprintf("  Task %d: %q (%s: %s -> %s)\n", c.TaskID, clip(c.Title, 40), c.Field, c.Was, c.Now))
	}
	return s.String()
}

// Success wraps a message in the success style.
func Success(msg string) string {
	return successStyle.Render(msg)
}

// Fail wraps a message in the error style.
func Fail(msg string) string {
	return errorStyle.Render(msg)
}

// Hint wraps a message in the prompt style.
func Hint(msg string) string {
	return promptStyle.Render(msg)
}

func clip(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
