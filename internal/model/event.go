package model

// Webhook event types and actions sent by Linear.
const (
	EventTypeComment = "Comment"

	ActionCreate = "create"
	ActionUpdate = "update"
	ActionRemove = "remove"
)

// WebhookEvent is a parsed Linear webhook delivery. It lives for one
// request and is never persisted.
type WebhookEvent struct {
	Action           string
	Type             string
	CreatedAt        string
	OrganizationID   string
	WebhookID        string
	WebhookTimestamp int64 // epoch milliseconds; zero when absent
	Comment          CommentData
}

// CommentData is the comment payload embedded in a Comment event. Only
// the ids are trusted for lookups; everything else is display-only
// until re-fetched through the tracker gateway.
type CommentData struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	IssueID   string `json:"issueId"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
