package notification

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// dedupWindow remembers recently processed delivery keys for a bounded
// window so redeliveries of the same event do not notify twice. Entries
// expire on their own; no persistence.
type dedupWindow struct {
	seen *expirable.LRU[string, struct{}]
}

func newDedupWindow(size int, ttl time.Duration) *dedupWindow {
	return &dedupWindow{
		seen: expirable.NewLRU[string, struct{}](size, nil, ttl),
	}
}

// delivered reports whether the key was already recorded.
func (d *dedupWindow) delivered(key string) bool {
	_, ok := d.seen.Get(key)
	return ok
}

// record marks the key as delivered. Only called once the message is
// actually out, so a failed delivery stays eligible for redelivery.
func (d *dedupWindow) record(key string) {
	d.seen.Add(key, struct{}{})
}
