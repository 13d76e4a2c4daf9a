package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ldi/tasktalk/internal/interpreter"
	"github.com/ldi/tasktalk/internal/store"
)

// Chat is a local read-eval loop over the interpreter. It stands in for the
// dialogue agent: where the agent routes by intent, the loop routes by a few
// keyword heuristics. All rendering happens here; the interpreter only
// returns data.
type Chat struct {
	interp    *interpreter.Interpreter
	contextID string
	in        io.Reader
	out       io.Writer
}

func NewChat(interp *interpreter.Interpreter, in io.Reader, out io.Writer) *Chat {
	return &Chat{
		interp:    interp,
		contextID: store.NewContextID(),
		in:        in,
		out:       out,
	}
}

var (
	updateHintRe = regexp.MustCompile(`(?i)\b(?:task\s+\d+|all\s+tasks?)\b`)
	updateVerbRe = regexp.MustCompile(`(?i)\b(mark|assign|unassign|set|move|done|completed|finished|pending|todo|waiting|working|started)\b|in[_\s]progress`)
	readHintRe   = regexp.MustCompile(`(?i)^\s*(show|list|what|which|do i have)\b`)
)

// Run processes lines until EOF or a quit word.
func (c *Chat) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, Hint("tasktalk — natural-language task commands. Type 'quit' to exit."))
	fmt.Fprintln(c.out, Hint(`Try: "Create a task for Ravi to update the login flow", "Mark task 2 as done", "Unassign all tasks"`))

	scanner := bufio.NewScanner(c.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "quit", "exit", "bye":
			fmt.Fprintln(c.out, Hint("Goodbye!"))
			return nil
		}

		fmt.Fprintln(c.out, c.eval(ctx, line))
	}
}

// eval routes one line to the right interpreter operation and renders the
// outcome. Routing order: pending-selection reply, update, read, create.
func (c *Chat) eval(ctx context.Context, line string) string {
	if len(c.interp.Suggestions(c.contextID)) > 0 {
		if out, handled := c.trySelection(ctx, line); handled {
			return out
		}
	}

	if updateHintRe.MatchString(line) && updateVerbRe.MatchString(line) {
		return c.runUpdate(ctx, line)
	}

	if readHintRe.MatchString(line) {
		tasks, err := c.interp.Read(ctx, line)
		if err != nil {
			return Fail(err.Error())
		}
		return RenderTasks(tasks)
	}

	return c.runCreate(ctx, line)
}

// trySelection treats the line as a reply to pending suggestions. Lines that
// don't parse as a selection fall through to normal routing, so the user can
// still issue unrelated commands while suggestions are pending.
func (c *Chat) trySelection(ctx context.Context, line string) (string, bool) {
	result, err := c.interp.Select(ctx, c.contextID, line)
	if err != nil {
		var verr *interpreter.ValidationError
		if errors.As(err, &verr) {
			return "", false
		}
		return Fail(err.Error()), true
	}

	if result.Cancelled {
		return Success("Task creation cancelled. Suggestions cleared."), true
	}

	var s strings.Builder
	s.WriteString(Success(fmt.Sprintf("Created %d tasks:", len(result.Created))))
	s.WriteString("\n")
	for _, t := range result.Created {
		s.WriteString("  " + RenderTask(t) + "\n")
	}
	return s.String(), true
}

func (c *Chat) runCreate(ctx context.Context, line string) string {
	result, err := c.interp.Create(ctx, c.contextID, line)
	if err != nil {
		return renderError(err)
	}

	if result.Task != nil {
		return Success("Created new task:") + "\n" + RenderTask(result.Task)
	}
	return RenderSuggestions(result.Suggestions)
}

func (c *Chat) runUpdate(ctx context.Context, line string) string {
	result, err := c.interp.Update(ctx, line)
	if err != nil {
		return renderError(err)
	}

	if result.Bulk != nil {
		header := Success(fmt.Sprintf("Updated all %d tasks:", len(result.Bulk.Changes)))
		return header + "\n" + RenderChanges(result.Bulk.Changes)
	}

	ch := result.Change
	return Success(fmt.Sprintf("Updated task %d: %s changed from %q to %q", ch.TaskID, ch.Field, ch.Was, ch.Now))
}

func renderError(err error) string {
	var ambiguous *interpreter.AmbiguousNameError
	if errors.As(err, &ambiguous) {
		return Hint(err.Error() + " Please confirm or specify the correct name.")
	}
	return Fail(err.Error())
}
