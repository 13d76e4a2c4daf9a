package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ldi/tasktalk/pkg/models"
)

// taskColumns is the fixed set of columns that Update, Filter and BulkUpdate
// accept. Field maps are applied in this order so generated SQL is
// deterministic; keys outside this list are ignored silently.
var taskColumns = []string{"title", "assignee", "status", "priority", "created_at", "due_date", "description"}

const selectTasks = `
	SELECT id, title, assignee, status, priority, created_at, due_date, description
	FROM tasks
`

// Add inserts a new task and assigns it the next id. Ids are monotonically
// increasing and never reused, even after deletes.
func (s *Store) Add(ctx context.Context, t *models.Task) error {
	query := `
		INSERT INTO tasks (title, assignee, status, priority, created_at, due_date, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	err := s.QueryRowContext(ctx, query,
		t.Title, t.Assignee, t.Status, t.Priority, t.CreatedAt, t.DueDate, t.Description,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	return nil
}

// Get retrieves a task by id. Returns nil without error when absent.
func (s *Store) Get(ctx context.Context, id int64) (*models.Task, error) {
	t := &models.Task{}
	err := s.QueryRowContext(ctx, selectTasks+"WHERE id = ?", id).Scan(
		&t.ID, &t.Title, &t.Assignee, &t.Status, &t.Priority, &t.CreatedAt, &t.DueDate, &t.Description,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// List returns all tasks in insertion order.
func (s *Store) List(ctx context.Context) ([]*models.Task, error) {
	return s.queryTasks(ctx, selectTasks+"ORDER BY id ASC")
}

// Update applies the given fields to the task with the given id. Unknown
// field keys are ignored; a missing id is a no-op. Callers that need to
// distinguish a missing task must Get first.
func (s *Store) Update(ctx context.Context, id int64, fields map[string]any) error {
	set, args := buildSet(fields)
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(set, ", "))
	if _, err := s.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return nil
}

// Delete removes a task by id, reporting whether a row was removed.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// Filter returns the tasks matching every given criterion (logical AND).
// Criterion keys outside taskColumns are ignored; an empty criteria map
// returns everything.
func (s *Store) Filter(ctx context.Context, criteria map[string]string) ([]*models.Task, error) {
	query := selectTasks + "WHERE 1=1"
	args := []any{}

	for _, col := range taskColumns {
		if v, ok := criteria[col]; ok {
			query += fmt.Sprintf(" AND %s = ?", col)
			args = append(args, v)
		}
	}

	query += " ORDER BY id ASC"
	return s.queryTasks(ctx, query, args...)
}

// BulkUpdate applies the same field set to every task and returns the full
// updated snapshot in insertion order.
func (s *Store) BulkUpdate(ctx context.Context, fields map[string]any) ([]*models.Task, error) {
	set, args := buildSet(fields)
	if len(set) > 0 {
		query := fmt.Sprintf("UPDATE tasks SET %s", strings.Join(set, ", "))
		if _, err := s.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("failed to bulk update tasks: %w", err)
		}
	}
	return s.List(ctx)
}

// Count returns the number of stored tasks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return n, nil
}

func (s *Store) queryTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		t := &models.Task{}
		err := rows.Scan(
			&t.ID, &t.Title, &t.Assignee, &t.Status, &t.Priority, &t.CreatedAt, &t.DueDate, &t.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return tasks, nil
}

func buildSet(fields map[string]any) (set []string, args []any) {
	for _, col := range taskColumns {
		if v, ok := fields[col]; ok {
			set = append(set, col+" = ?")
			args = append(args, v)
		}
	}
	return set, args
}
