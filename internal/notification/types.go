package notification

import "time"

// Outcome is the terminal state of one webhook delivery.
type Outcome string

const (
	// OutcomeSkipped means the delivery was valid but not applicable.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeNotified means a chat notification was sent.
	OutcomeNotified Outcome = "notified"
)

// ProcessOutput reports how a delivery terminated.
type ProcessOutput struct {
	Outcome         Outcome
	Reason          string // set for skips
	IssueIdentifier string // set when notified
	MatchedTags     []string
}

// Config tunes the redelivery dedup window.
type Config struct {
	DedupSize int
	DedupTTL  time.Duration
}

const (
	defaultDedupSize = 1024
	defaultDedupTTL  = 10 * time.Minute
)
