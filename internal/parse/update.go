package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ldi/tasktalk/pkg/models"
)

// UpdateCommand is the parsed form of an update instruction. When Bulk is
// set the remaining fields are empty and the instruction should be handed to
// Bulk for classification.
type UpdateCommand struct {
	Bulk   bool
	TaskID int64
	Field  string // FieldStatus or FieldAssignee
	Value  string // status value, or raw assignee token
}

var (
	allTasksRe = regexp.MustCompile(`(?i)\ball\s+tasks?\b`)
	taskIDRe   = regexp.MustCompile(`(?i)\btask\s+(\d+)`)
	assignToRe = regexp.MustCompile(`(?i)\bassign.*?\bto\s+(\w+)`)
)

// Update classifies a single-task update instruction. Checked in order:
// "all tasks" marker (bulk flag), required task id, status keyword groups,
// unassign phrasings, "assign ... to <name>". No match yields an
// UnrecognizedUpdateError naming the task id.
func Update(text string) (UpdateCommand, error) {
	if allTasksRe.MatchString(text) {
		return UpdateCommand{Bulk: true}, nil
	}

	m := taskIDRe.FindStringSubmatch(text)
	if m == nil {
		return UpdateCommand{}, ErrMissingTaskID
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return UpdateCommand{}, ErrMissingTaskID
	}

	if status, ok := matchStatus(text); ok {
		return UpdateCommand{TaskID: id, Field: FieldStatus, Value: string(status)}, nil
	}

	for _, re := range unassignRules(id) {
		if re.MatchString(text) {
			return UpdateCommand{TaskID: id, Field: FieldAssignee, Value: models.Unassigned}, nil
		}
	}

	if m := assignToRe.FindStringSubmatch(text); m != nil {
		name := m[1]
		if strings.EqualFold(name, models.Unassigned) {
			// Literal "unassigned" never goes through fuzzy matching.
			return UpdateCommand{TaskID: id, Field: FieldAssignee, Value: models.Unassigned}, nil
		}
		return UpdateCommand{TaskID: id, Field: FieldAssignee, Value: name}, nil
	}

	return UpdateCommand{}, &UnrecognizedUpdateError{TaskID: id}
}

// unassignRules are the three accepted unassign phrasings for one task id.
func unassignRules(id int64) []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(fmt.Sprintf(`(?i)\bunassign.*?task\s+%d\b`, id)),
		regexp.MustCompile(fmt.Sprintf(`(?i)\btask\s+%d\b.*?unassign`, id)),
		regexp.MustCompile(fmt.Sprintf(`(?i)\bremove.*?assignee.*?from.*?task\s+%d\b`, id)),
	}
}
