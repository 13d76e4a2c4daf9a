// Package interpreter composes the parsers, the roster matcher and the task
// store into the externally visible command operations. Every operation
// validates fully before mutating, so a failed command never leaves the
// store half-changed.
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ldi/tasktalk/internal/meeting"
	"github.com/ldi/tasktalk/internal/parse"
	"github.com/ldi/tasktalk/internal/roster"
	"github.com/ldi/tasktalk/internal/store"
	"github.com/ldi/tasktalk/pkg/models"
)

// Interpreter executes natural-language task commands against one store.
// Construct it explicitly and pass it around; it holds no global state.
type Interpreter struct {
	store     *store.Store
	roster    roster.Roster
	threshold float64
	now       func() time.Time
}

// New creates an Interpreter. A zero threshold means roster.DefaultThreshold;
// a nil clock means time.Now.
func New(st *store.Store, r roster.Roster, threshold float64, now func() time.Time) *Interpreter {
	if threshold <= 0 {
		threshold = roster.DefaultThreshold
	}
	if now == nil {
		now = time.Now
	}
	return &Interpreter{store: st, roster: r, threshold: threshold, now: now}
}

// Roster returns the roster this interpreter resolves names against.
func (i *Interpreter) Roster() roster.Roster {
	return i.roster
}

// MatchName resolves a free-text token against the roster.
func (i *Interpreter) MatchName(input string) (name string, confidence float64, ok bool) {
	return i.roster.Match(input, i.threshold)
}

// Create handles a create instruction. Meeting content is broken down into
// suggestions that fill the context's buffer instead of creating anything.
// A fuzzy (sub-100) assignee match aborts with AmbiguousNameError carrying
// the parsed draft; an unmatchable name aborts with UnknownNameError.
func (i *Interpreter) Create(ctx context.Context, contextID, text string) (*CreateResult, error) {
	if meeting.IsContent(text) {
		items, err := meeting.Extract(text)
		if err != nil {
			return nil, err
		}
		i.store.Suggestions.Set(contextID, items)
		return &CreateResult{Suggestions: items}, nil
	}

	cmd, err := parse.Create(text, i.now())
	if err != nil {
		return nil, &ValidationError{Reason: "please provide a valid task title"}
	}

	assignee := models.Unassigned
	if cmd.Assignee != "" && !equalsUnassigned(cmd.Assignee) {
		draft := &Draft{Title: cmd.Title, Assignee: cmd.Assignee, Priority: cmd.Priority, DueDate: cmd.DueDate}
		resolved, err := i.resolveName(cmd.Assignee, draft)
		if err != nil {
			return nil, err
		}
		assignee = resolved
	}

	task := &models.Task{
		Title:     cmd.Title,
		Assignee:  assignee,
		Status:    models.TaskStatusPending,
		Priority:  cmd.Priority,
		CreatedAt: i.now().Format(models.DateLayout),
		DueDate:   cmd.DueDate,
	}
	if err := i.store.Add(ctx, task); err != nil {
		return nil, err
	}
	return &CreateResult{Task: task}, nil
}

// Read lists tasks matching the criteria extracted from a free-text query.
// An assignee token that resolves against the roster narrows the result;
// one that doesn't simply leaves the assignee unconstrained.
func (i *Interpreter) Read(ctx context.Context, query string) ([]*models.Task, error) {
	f := parse.Query(query)
	criteria := map[string]string{}

	if f.Assignee != "" {
		if name, _, ok := i.roster.Match(f.Assignee, i.threshold); ok {
			criteria["assignee"] = name
		}
	}
	if f.Status != "" {
		criteria["status"] = string(f.Status)
	}
	if f.Priority != "" {
		criteria["priority"] = string(f.Priority)
	}

	return i.store.Filter(ctx, criteria)
}

// Update handles a single-task update instruction; the all-tasks marker
// routes to BulkUpdate and embeds its result. Status changes apply
// unconditionally; assignee changes go through the same confirm/unknown
// branching as Create.
func (i *Interpreter) Update(ctx context.Context, text string) (*UpdateResult, error) {
	cmd, err := parse.Update(text)
	if err != nil {
		if errors.Is(err, parse.ErrMissingTaskID) {
			return nil, &ValidationError{Reason: `please specify the task id (e.g. "task 2") or use "all tasks" for bulk operations`}
		}
		return nil, err
	}

	if cmd.Bulk {
		bulk, err := i.BulkUpdate(ctx, text)
		if err != nil {
			return nil, err
		}
		return &UpdateResult{Bulk: bulk}, nil
	}

	task, err := i.store.Get(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &NotFoundError{TaskID: cmd.TaskID}
	}

	var change Change
	switch cmd.Field {
	case parse.FieldStatus:
		change = Change{TaskID: task.ID, Title: task.Title, Field: parse.FieldStatus, Was: string(task.Status), Now: cmd.Value}
		task.Status = models.TaskStatus(cmd.Value)

	case parse.FieldAssignee:
		value := cmd.Value
		if !equalsUnassigned(value) {
			resolved, err := i.resolveName(value, nil)
			if err != nil {
				return nil, err
			}
			value = resolved
		} else {
			value = models.Unassigned
		}
		change = Change{TaskID: task.ID, Title: task.Title, Field: parse.FieldAssignee, Was: task.Assignee, Now: value}
		task.Assignee = value

	default:
		return nil, fmt.Errorf("unsupported update field %q", cmd.Field)
	}

	if err := i.store.Update(ctx, task.ID, map[string]any{cmd.Field: change.Now}); err != nil {
		return nil, err
	}
	return &UpdateResult{Task: task, Change: &change}, nil
}

// BulkUpdate applies an all-tasks instruction: unassign everything, assign
// everything to one resolved name, or set every status. The result carries
// the prior value of the touched field for every task.
func (i *Interpreter) BulkUpdate(ctx context.Context, text string) (*BulkResult, error) {
	cmd, err := parse.Bulk(text)
	if err != nil {
		return nil, &ValidationError{Reason: "unrecognized bulk operation; try \"assign all tasks to <name>\", \"unassign all tasks\" or \"mark all tasks as done\""}
	}

	var field, value string
	switch cmd.Op {
	case parse.BulkUnassignAll:
		field, value = parse.FieldAssignee, models.Unassigned

	case parse.BulkAssignAll:
		field = parse.FieldAssignee
		if equalsUnassigned(cmd.Assignee) {
			cmd.Op = parse.BulkUnassignAll
			value = models.Unassigned
		} else {
			resolved, err := i.resolveName(cmd.Assignee, nil)
			if err != nil {
				return nil, err
			}
			value = resolved
		}

	case parse.BulkStatusAll:
		field, value = parse.FieldStatus, string(cmd.Status)
	}

	before, err := i.store.List(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := i.store.BulkUpdate(ctx, map[string]any{field: value})
	if err != nil {
		return nil, err
	}

	changes := make([]Change, 0, len(before))
	for _, t := range before {
		was := t.Assignee
		if field == parse.FieldStatus {
			was = string(t.Status)
		}
		changes = append(changes, Change{TaskID: t.ID, Title: t.Title, Field: field, Was: was, Now: value})
	}

	return &BulkResult{Op: cmd.Op, Tasks: tasks, Changes: changes}, nil
}

// Select consumes the context's suggestion buffer. Cancel clears it; an
// invalid selection leaves it untouched; a valid selection creates one task
// per chosen suggestion, in ascending index order, then clears the buffer.
func (i *Interpreter) Select(ctx context.Context, contextID, text string) (*SelectResult, error) {
	items := i.store.Suggestions.Peek(contextID)
	if len(items) == 0 {
		return nil, ErrNoSuggestions
	}

	sel, err := parse.Selection(text, len(items))
	if err != nil {
		return nil, &ValidationError{Reason: `no valid selection found; specify which suggestions to create (e.g. "1,3,5", "1-3" or "all")`}
	}

	if sel.Cancel {
		i.store.Suggestions.Clear(contextID)
		return &SelectResult{Cancelled: true}, nil
	}

	now := i.now()
	created := make([]*models.Task, 0, len(sel.Indices))
	for _, idx := range sel.Indices {
		item := items[idx]
		task := &models.Task{
			Title:       item.Title,
			Assignee:    item.Assignee,
			Status:      models.TaskStatusPending,
			Priority:    item.Priority,
			CreatedAt:   now.Format(models.DateLayout),
			DueDate:     models.DefaultDueDate(now),
			Description: item.Details,
		}
		if err := i.store.Add(ctx, task); err != nil {
			return nil, err
		}
		created = append(created, task)
	}

	i.store.Suggestions.Clear(contextID)
	return &SelectResult{Created: created}, nil
}

// Get fetches one task by id.
func (i *Interpreter) Get(ctx context.Context, id int64) (*models.Task, error) {
	task, err := i.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &NotFoundError{TaskID: id}
	}
	return task, nil
}

// Delete removes one task by id.
func (i *Interpreter) Delete(ctx context.Context, id int64) error {
	ok, err := i.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{TaskID: id}
	}
	return nil
}

// Suggestions exposes the buffered suggestions for a context, for display.
func (i *Interpreter) Suggestions(contextID string) []models.Suggestion {
	return i.store.Suggestions.Peek(contextID)
}

// ClearContext drops any pending suggestions for a context.
func (i *Interpreter) ClearContext(contextID string) {
	i.store.Suggestions.Clear(contextID)
}

func (i *Interpreter) resolveName(input string, draft *Draft) (string, error) {
	name, confidence, ok := i.roster.Match(input, i.threshold)
	if !ok {
		return "", &UnknownNameError{Input: input, Roster: i.roster.Names()}
	}
	if confidence < 100 {
		return "", &AmbiguousNameError{Input: input, Candidate: name, Confidence: confidence, Draft: draft}
	}
	return name, nil
}

func equalsUnassigned(s string) bool {
	return strings.EqualFold(s, models.Unassigned)
}
