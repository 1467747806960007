package notification

import "errors"

var (
	// ErrFetchContext wraps tracker lookup failures during enrichment.
	ErrFetchContext = errors.New("failed to fetch issue or comment details")
	// ErrDeliver wraps chat webhook delivery failures.
	ErrDeliver = errors.New("failed to send notification")
)
