package meeting

import (
	"errors"
	"strings"
	"testing"

	"github.com/ldi/tasktalk/pkg/models"
)

func TestIsContent(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"From this meeting create tasks: fix the login page", true},
		{"Meeting summary, please create tasks from it", true},
		{"create tasks from the meeting yesterday", true},
		{"break this down into tasks", true},
		{"pull the actionable items from these notes", true},
		{"MEETING SUMMARY\nWe discussed the rollout plan.", true},
		{"DEMO MEETING recap", true},
		{"here are the meeting notes", true},
		{"Create a task called 'Fix login bug'", false},
		{"mark task 2 as done", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsContent(tt.text); got != tt.want {
			t.Errorf("IsContent(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestExtractListSegments(t *testing.T) {
	text := "MEETING SUMMARY\nWe discussed the rollout plan.\n1. Update the login page design for mobile\n2. Fix the database timeout in the api"

	items, err := Extract(text)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 suggestions, got %d", len(items))
	}
	if items[0].Title != "Update the login page design for mobile" {
		t.Errorf("Unexpected first title: %q", items[0].Title)
	}
	if items[1].Title != "Fix the database timeout in the api" {
		t.Errorf("Unexpected second title: %q", items[1].Title)
	}
	for _, item := range items {
		if item.Assignee != models.Unassigned {
			t.Errorf("Expected suggestion unassigned, got %q", item.Assignee)
		}
		if item.Priority != models.TaskPriorityMedium {
			t.Errorf("Expected medium priority, got %s", item.Priority)
		}
		if item.Details == "" {
			t.Errorf("Expected details to carry the segment text")
		}
	}
}

func TestExtractSkipsShortSegments(t *testing.T) {
	text := "MEETING SUMMARY\npreamble line\n- short\n- Review the deployment checklist together"

	items, err := Extract(text)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 suggestion, got %d", len(items))
	}
	if items[0].Title != "Review the deployment checklist together" {
		t.Errorf("Unexpected title: %q", items[0].Title)
	}
}

func TestExtractStripsFillerAndPunct(t *testing.T) {
	text := "MEETING SUMMARY\npreamble line\n- Brief walkthrough: admin panel basics"

	items, err := Extract(text)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 suggestion, got %d", len(items))
	}
	if items[0].Title != "walkthrough - admin panel basics" {
		t.Errorf("Unexpected title: %q", items[0].Title)
	}
}

func TestExtractTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("x", 120)
	text := "MEETING SUMMARY\npreamble line\n- " + long

	items, err := Extract(text)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 suggestion, got %d", len(items))
	}
	if !strings.HasSuffix(items[0].Title, "...") {
		t.Errorf("Expected truncated title to end with ellipsis: %q", items[0].Title)
	}
	if len([]rune(items[0].Title)) != 83 {
		t.Errorf("Expected 80 runes plus ellipsis, got %d", len([]rune(items[0].Title)))
	}
}

func TestExtractKeywordFallback(t *testing.T) {
	// No list markers at all: the keyword table supplies generic suggestions,
	// and every matching rule contributes one.
	items, err := Extract("meeting notes: we need docs and a demo")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	want := []string{"Prepare demo presentation", "Update documentation", "Schedule follow-up meeting"}
	if len(titles) != len(want) {
		t.Fatalf("Expected titles %v, got %v", want, titles)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("Expected title %q at %d, got %q", want[i], i, titles[i])
		}
	}
	for _, item := range items {
		if item.Details != "Based on meeting content" {
			t.Errorf("Unexpected details: %q", item.Details)
		}
	}
}

func TestExtractNoActionableItems(t *testing.T) {
	_, err := Extract("break this down into tasks:")
	if !errors.Is(err, ErrNoActionableItems) {
		t.Errorf("Expected ErrNoActionableItems, got %v", err)
	}
}
