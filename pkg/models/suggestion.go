package models

// Suggestion is a candidate task extracted from meeting content. It lives in
// a per-conversation buffer until the user selects which suggestions to turn
// into real tasks, or cancels.
type Suggestion struct {
	Title    string       `json:"title"`
	Details  string       `json:"details"`
	Assignee string       `json:"suggested_assignee"`
	Priority TaskPriority `json:"priority"`
}
