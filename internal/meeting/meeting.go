// Package meeting classifies instructions that carry meeting content and
// breaks that content down into candidate tasks. Classification is checked
// before create-parsing; the two are mutually exclusive.
package meeting

import (
	"errors"
	"regexp"
	"strings"

	"github.com/ldi/tasktalk/pkg/models"
)

// ErrNoActionableItems means the text was recognized as meeting content but
// nothing task-shaped could be extracted. Callers should surface this as a
// clarification request, not as an empty success.
var ErrNoActionableItems = errors.New("no actionable items found in meeting content")

const (
	titleLimit   = 80
	detailsLimit = 200
	minSegment   = 10
	minTitle     = 5
)

// triggers mark text as meeting content to be broken into tasks.
var triggers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)from.*?(?:this\s+)?meeting.*?create.*?tasks?`),
	regexp.MustCompile(`(?i)meeting\s+summary.*?create.*?tasks?`),
	regexp.MustCompile(`(?i)create.*?tasks?.*?from.*?meeting`),
	regexp.MustCompile(`(?i)break.*?down.*?into.*?tasks?`),
	regexp.MustCompile(`(?i)actionable.*?items?.*?from`),
	regexp.MustCompile(`(?i)MEETING\s+SUMMARY`),
	regexp.MustCompile(`(?i)DEMO\s+MEETING`),
	regexp.MustCompile(`(?i)meeting.*?notes`),
}

// instructionClauses strip the leading "from this meeting create tasks:"
// style clause to isolate the meeting body. First pattern that changes the
// text wins.
var instructionClauses = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^.*?from.*?(?:this\s+)?meeting.*?create.*?tasks?[:\s]*`),
	regexp.MustCompile(`(?i)^.*?meeting\s+summary.*?create.*?tasks?[:\s]*`),
	regexp.MustCompile(`(?i)^.*?create.*?tasks?.*?from.*?meeting[:\s]*`),
	regexp.MustCompile(`(?i)^.*?break.*?down.*?into.*?tasks?[:\s]*`),
}

// markerRe splits the body on line boundaries that start a list item:
// "1.", "-", "•" or "a)". The segment before the first marker is preamble.
var markerRe = regexp.MustCompile(`\n\s*(?:\d+\.|-|•|[a-zA-Z]\))`)

// fillerRe drops leading non-actionable verbs from a candidate title.
var fillerRe = regexp.MustCompile(`(?i)^(brief|state|highlight|show|demonstrate|optional)`)

// punctRunRe normalizes runs of colons and dashes inside a title.
var punctRunRe = regexp.MustCompile(`[:\-–—]+\s*`)

// keywordRule contributes one generic suggestion when its pattern appears in
// the body. Unlike the other parsers this table is not first-match-only:
// every matching rule adds a suggestion, deliberately casting a wider net.
type keywordRule struct {
	re    *regexp.Regexp
	title string
}

var keywordRules = []keywordRule{
	{regexp.MustCompile(`(?i)demo|demonstration`), "Prepare demo presentation"},
	{regexp.MustCompile(`(?i)integration|connect`), "Set up integrations"},
	{regexp.MustCompile(`(?i)dashboard|overview`), "Design dashboard overview"},
	{regexp.MustCompile(`(?i)problem|solution`), "Document problem and solution"},
	{regexp.MustCompile(`(?i)walkthrough|tutorial`), "Create walkthrough guide"},
	{regexp.MustCompile(`(?i)documentation|docs`), "Update documentation"},
	{regexp.MustCompile(`(?i)testing|test`), "Conduct testing"},
	{regexp.MustCompile(`(?i)meeting|presentation`), "Schedule follow-up meeting"},
}

// IsContent reports whether text reads as meeting content that should be
// broken down into tasks rather than parsed as a single create instruction.
func IsContent(text string) bool {
	for _, re := range triggers {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Extract breaks meeting content into suggested tasks. List-style segments
// are preferred; when none yield a usable title, the keyword table supplies
// generic suggestions. Zero items is ErrNoActionableItems.
func Extract(text string) ([]models.Suggestion, error) {
	body := stripInstruction(text)

	items := segmentItems(body)
	if len(items) == 0 {
		items = keywordItems(body)
	}
	if len(items) == 0 {
		return nil, ErrNoActionableItems
	}
	return items, nil
}

func stripInstruction(text string) string {
	for _, re := range instructionClauses {
		stripped := strings.TrimSpace(re.ReplaceAllString(text, ""))
		if stripped != text {
			return stripped
		}
	}
	return text
}

func segmentItems(body string) []models.Suggestion {
	segments := markerRe.Split(body, -1)
	if len(segments) < 2 {
		return nil
	}

	var items []models.Suggestion
	for _, segment := range segments[1:] {
		segment = strings.TrimSpace(segment)
		if len(segment) <= minSegment {
			continue
		}

		first, _, _ := strings.Cut(segment, "\n")
		title := strings.TrimSpace(fillerRe.ReplaceAllString(strings.TrimSpace(first), ""))
		title = strings.TrimSpace(punctRunRe.ReplaceAllString(title, " - "))
		if len(title) <= minTitle {
			continue
		}

		items = append(items, models.Suggestion{
			Title:    truncate(title, titleLimit),
			Details:  truncate(segment, detailsLimit),
			Assignee: models.Unassigned,
			Priority: models.TaskPriorityMedium,
		})
	}
	return items
}

func keywordItems(body string) []models.Suggestion {
	var items []models.Suggestion
	for _, rule := range keywordRules {
		if rule.re.MatchString(body) {
			items = append(items, models.Suggestion{
				Title:    rule.title,
				Details:  "Based on meeting content",
				Assignee: models.Unassigned,
				Priority: models.TaskPriorityMedium,
			})
		}
	}
	return items
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
