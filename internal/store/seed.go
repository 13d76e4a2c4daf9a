package store

import (
	"context"

	"github.com/ldi/tasktalk/pkg/models"
)

// demoTasks are the fixtures installed by SeedDemo. They get ids 1..3 when
// seeded into a fresh store.
var demoTasks = []models.Task{
	{
		Title:     "Review API documentation",
		Assignee:  "Ravi",
		Status:    models.TaskStatusInProgress,
		Priority:  models.TaskPriorityHigh,
		CreatedAt: "2024-01-15",
		DueDate:   "2024-01-20",
	},
	{
		Title:     "Update login flow design",
		Assignee:  "Ankita",
		Status:    models.TaskStatusPending,
		Priority:  models.TaskPriorityMedium,
		CreatedAt: "2024-01-16",
		DueDate:   "2024-01-25",
	},
	{
		Title:     "Fix database connection issues",
		Assignee:  "Sam",
		Status:    models.TaskStatusDone,
		Priority:  models.TaskPriorityHigh,
		CreatedAt: "2024-01-10",
		DueDate:   "2024-01-18",
	},
}

// SeedDemo inserts the demo fixtures. Intended for the chat REPL and examples.
func (s *Store) SeedDemo(ctx context.Context) error {
	for _, t := range demoTasks {
		task := t
		if err := s.Add(ctx, &task); err != nil {
			return err
		}
	}
	return nil
}
