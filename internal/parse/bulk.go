package parse

import (
	"regexp"

	"github.com/ldi/tasktalk/pkg/models"
)

type BulkOp string

const (
	BulkUnassignAll BulkOp = "unassign_all"
	BulkAssignAll   BulkOp = "assign_all"
	BulkStatusAll   BulkOp = "status_all"
)

// BulkCommand is the parsed form of an all-tasks instruction.
type BulkCommand struct {
	Op       BulkOp
	Assignee string            // raw token, BulkAssignAll only
	Status   models.TaskStatus // BulkStatusAll only
}

var (
	bulkUnassignRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bunassign.*?all.*?tasks?\b`),
		regexp.MustCompile(`(?i)\bmake.*?all.*?tasks?.*?unassigned\b`),
		regexp.MustCompile(`(?i)\bremove.*?assignees?.*?from.*?all.*?tasks?\b`),
		regexp.MustCompile(`(?i)\ball.*?tasks?.*?unassigned\b`),
	}

	bulkAssignRe = regexp.MustCompile(`(?i)\bassign.*?all.*?tasks?.*?to\s+(\w+)`)
)

// Bulk classifies an all-tasks instruction. Checked in order: unassign-all
// phrasings, assign-all-to-name, status-all. First match wins; no match is
// ErrUnknownBulkOperation.
func Bulk(text string) (BulkCommand, error) {
	for _, re := range bulkUnassignRules {
		if re.MatchString(text) {
			return BulkCommand{Op: BulkUnassignAll}, nil
		}
	}

	if m := bulkAssignRe.FindStringSubmatch(text); m != nil {
		return BulkCommand{Op: BulkAssignAll, Assignee: m[1]}, nil
	}

	if status, ok := matchStatus(text); ok {
		return BulkCommand{Op: BulkStatusAll, Status: status}, nil
	}

	return BulkCommand{}, ErrUnknownBulkOperation
}
