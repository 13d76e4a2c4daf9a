package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ldi/tasktalk/internal/interpreter"
	"github.com/ldi/tasktalk/internal/mcp"
	"github.com/ldi/tasktalk/internal/roster"
	"github.com/ldi/tasktalk/internal/store"
	"github.com/ldi/tasktalk/internal/ui"
	"github.com/ldi/tasktalk/pkg/models"
)

var (
	rosterList string
	threshold  float64
	seed       bool
	verbose    bool
)

func main() {
	flag.StringVar(&rosterList, "roster", strings.Join(roster.DefaultNames, ","), "Comma-separated roster of known assignees")
	flag.Float64Var(&threshold, "threshold", roster.DefaultThreshold, "Minimum name-match confidence (0-100)")
	flag.BoolVar(&seed, "seed", false, "Seed the store with demo tasks")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	var command string
	var args []string

	if flag.NArg() == 0 {
		selected, err := ui.RunMenu()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			os.Exit(1)
		}
		if selected == "" {
			os.Exit(0)
		}
		command = selected
		args = []string{}
	} else {
		command = flag.Arg(0)
		args = flag.Args()[1:]
	}

	var err error
	switch command {
	case "mcp":
		err = runMCP(args)
	case "chat":
		err = runChat(args)
	case "list-tasks":
		err = runListTasks(args)
	case "status":
		err = runStatus(args)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func parseRoster() (roster.Roster, error) {
	var names []string
	for _, n := range strings.Split(rosterList, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		names = append(names, n)
	}
	if len(names) == 0 {
		return roster.Roster{}, fmt.Errorf("roster must name at least one assignee")
	}
	return roster.New(names), nil
}

func newInterpreter(ctx context.Context) (*interpreter.Interpreter, *store.Store, error) {
	r, err := parseRoster()
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open()
	if err != nil {
		return nil, nil, err
	}
	if err := st.Init(ctx); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	if seed {
		if err := st.SeedDemo(ctx); err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("failed to seed demo tasks: %w", err)
		}
	}

	return interpreter.New(st, r, threshold, nil), st, nil
}

func runMCP(args []string) error {
	ctx := context.Background()
	interp, st, err := newInterpreter(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	s := mcp.NewServer(interp, newLogger())
	return mcp.Serve(s)
}

func runChat(args []string) error {
	ctx := context.Background()
	interp, st, err := newInterpreter(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	chat := ui.NewChat(interp, os.Stdin, os.Stdout)
	return chat.Run(ctx)
}

func runListTasks(args []string) error {
	taskFlags := flag.NewFlagSet("list-tasks", flag.ContinueOnError)
	statusFilter := taskFlags.String("status", "", "Filter by status (pending, in_progress, done)")
	assigneeFilter := taskFlags.String("assignee", "", "Filter by assignee name")
	priorityFilter := taskFlags.String("priority", "", "Filter by priority (high, medium, low)")
	if err := taskFlags.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	_, st, err := newInterpreter(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	criteria := map[string]string{}
	if *statusFilter != "" {
		if !models.ValidStatus(models.TaskStatus(*statusFilter)) {
			return fmt.Errorf("invalid status: %s", *statusFilter)
		}
		criteria["status"] = *statusFilter
	}
	if *assigneeFilter != "" {
		criteria["assignee"] = *assigneeFilter
	}
	if *priorityFilter != "" {
		if !models.ValidPriority(models.TaskPriority(*priorityFilter)) {
			return fmt.Errorf("invalid priority: %s", *priorityFilter)
		}
		criteria["priority"] = *priorityFilter
	}

	tasks, err := st.Filter(ctx, criteria)
	if err != nil {
		return err
	}

	fmt.Printf("%-4s %-35s %-12s %-12s %-8s %-12s\n", "ID", "TITLE", "ASSIGNEE", "STATUS", "PRIORITY", "DUE")
	fmt.Println(strings.Repeat("-", 88))
	for _, t := range tasks {
		fmt.Printf("%-4d %-35s %-12s %-12s %-8s %-12s\n", t.ID, t.Title, t.Assignee, t.Status, t.Priority, t.DueDate)
	}
	return nil
}

func runStatus(args []string) error {
	ctx := context.Background()
	_, st, err := newInterpreter(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	tasks, err := st.List(ctx)
	if err != nil {
		return err
	}

	statusCounts := make(map[models.TaskStatus]int)
	assigned := 0
	for _, t := range tasks {
		statusCounts[t.Status]++
		if !strings.EqualFold(t.Assignee, models.Unassigned) {
			assigned++
		}
	}

	fmt.Println("Tasktalk Status")
	fmt.Println("===============")
	fmt.Printf("Total Tasks:    %d\n", len(tasks))
	fmt.Printf("Assigned:       %d\n", assigned)
	fmt.Printf("Unassigned:     %d\n", len(tasks)-assigned)

	fmt.Println("\nTask Breakdown:")
	fmt.Printf("  Pending:     %d\n", statusCounts[models.TaskStatusPending])
	fmt.Printf("  In Progress: %d\n", statusCounts[models.TaskStatusInProgress])
	fmt.Printf("  Done:        %d\n", statusCounts[models.TaskStatusDone])

	return nil
}
