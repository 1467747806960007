package model

import "time"

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// User is a Linear user referenced from issues and comments.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// State is a Linear workflow state.
type State struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Type  string `json:"type,omitempty"`
}

// Issue is an immutable snapshot of a Linear issue, fetched on demand.
type Issue struct {
	ID          string    `json:"id"`
	Identifier  string    `json:"identifier"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	Priority    int       `json:"priority"`
	State       State     `json:"state"`
	Assignee    *User     `json:"assignee,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Comment is an immutable snapshot of a Linear comment.
type Comment struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	IssueID   string    `json:"issueId"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Ticket pairs a matched comment with its parent issue for the dashboard.
type Ticket struct {
	Issue       Issue    `json:"issue"`
	Comment     Comment  `json:"comment"`
	MatchedTags []string `json:"matchedTags"`
}

// TagConfig is the monitored hashtag pattern set, static for the
// process lifetime.
type TagConfig struct {
	Patterns      []string `json:"patterns"`
	CaseSensitive bool     `json:"caseSensitive"`
}

// priorityLabels maps Linear's priority ordinal to a label with marker.
var priorityLabels = map[int]string{
	0: "🔵 None",
	1: "🔴 Urgent",
	2: "🟠 High",
	3: "🟡 Normal",
	4: "⚪ Low",
}

// PriorityLabel converts a Linear priority ordinal (0-4) to a
// human-readable label. Unrecognized values map to "Unknown".
func PriorityLabel(priority int) string {
	if label, ok := priorityLabels[priority]; ok {
		return label
	}
	return "Unknown"
}
