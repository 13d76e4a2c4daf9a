package parse

import (
	"regexp"
	"strings"
	"time"

	"github.com/ldi/tasktalk/pkg/models"
)

// CreateCommand is the parsed form of a create-task instruction. Assignee is
// the raw token from the text; resolving it against the roster is the
// interpreter's job.
type CreateCommand struct {
	Title    string
	Assignee string // raw token; empty when no "for <name>" clause
	Priority models.TaskPriority
	DueDate  string
}

var (
	singleQuoteRe = regexp.MustCompile(`'([^']+)'`)
	doubleQuoteRe = regexp.MustCompile(`"([^"]+)"`)

	// Instruction prefixes, most specific first. The first pattern that
	// actually removes text wins.
	instructionPrefixes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^.*?create\s+(?:a\s+)?(?:new\s+)?task\s*(?:called\s+|named\s+|titled\s+|:\s*)`),
		regexp.MustCompile(`(?i)^.*?add\s+(?:a\s+)?(?:new\s+)?task\s*(?:called\s+|named\s+|titled\s+|:\s*)`),
		regexp.MustCompile(`(?i)^.*?new\s+task\s*(?:called\s+|named\s+|titled\s+|for\s+|:\s*)`),
		regexp.MustCompile(`(?i)^.*?task\s*(?:called\s+|named\s+|titled\s+|:\s*)`),
	}

	renameRe = regexp.MustCompile(`(?i)rename\s+.*?\s+to\s+(.+)`)

	assigneeRe      = regexp.MustCompile(`(?i)\bfor\s+(\w+)`)
	assigneeStripRe = regexp.MustCompile(`(?i)\s+for\s+\w+`)

	priorityRe      = regexp.MustCompile(`(?i)\b(high|medium|low)\s+priority\b`)
	priorityStripRe = regexp.MustCompile(`(?i)\s+with\s+(?:high|medium|low)\s+priority`)

	dueRe      = regexp.MustCompile(`(?i)\bdue\s+([0-9-]+)`)
	dueStripRe = regexp.MustCompile(`(?i)\s+due\s+[0-9-]+`)

	leadingToRe = regexp.MustCompile(`(?i)^to\s+`)
)

// Create parses a create-task instruction. The caller must have ruled out
// meeting content (meeting.IsContent) first. now anchors the default due
// date. An empty title after all stripping is a validation failure
// (ErrEmptyTitle), distinct from a successful parse.
func Create(text string, now time.Time) (CreateCommand, error) {
	cmd := CreateCommand{Priority: models.TaskPriorityMedium}
	title := extractTitle(text)

	// Assignee, priority and due date are pulled from the full text, and
	// their spans stripped from whatever title text remains.
	if m := assigneeRe.FindStringSubmatch(text); m != nil {
		cmd.Assignee = m[1]
		title = assigneeStripRe.ReplaceAllString(title, "")
	}

	if m := priorityRe.FindStringSubmatch(text); m != nil {
		cmd.Priority = models.TaskPriority(strings.ToLower(m[1]))
		title = priorityStripRe.ReplaceAllString(title, "")
	}

	if m := dueRe.FindStringSubmatch(text); m != nil {
		cmd.DueDate = m[1]
		title = dueStripRe.ReplaceAllString(title, "")
	} else {
		cmd.DueDate = models.DefaultDueDate(now)
	}

	title = strings.TrimSpace(title)
	title = leadingToRe.ReplaceAllString(title, "")
	title = strings.Trim(title, `'"`)
	title = strings.TrimSpace(title)

	if title == "" {
		return CreateCommand{}, ErrEmptyTitle
	}

	cmd.Title = title
	return cmd, nil
}

// extractTitle applies the title precedence: quoted span, then instruction
// prefix stripping, then a rename-to phrase. Failing all three, the raw text
// stands as the title.
func extractTitle(text string) string {
	for _, re := range []*regexp.Regexp{singleQuoteRe, doubleQuoteRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	for _, re := range instructionPrefixes {
		stripped := strings.TrimSpace(re.ReplaceAllString(text, ""))
		if stripped != "" && stripped != text {
			return stripped
		}
	}

	if m := renameRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	return text
}
