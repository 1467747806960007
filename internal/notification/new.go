// Package notification orchestrates the webhook pipeline: filter the
// event, match tags, fetch context, format and deliver the message.
package notification

import (
	"github.com/prubiera85/sd-notifications/internal/tags"
	pkgLog "github.com/prubiera85/sd-notifications/pkg/log"
)

type useCase struct {
	tracker  TrackerGateway
	notifier Notifier
	matcher  *tags.Matcher
	dedup    *dedupWindow
	l        pkgLog.Logger
}

// New wires the pipeline. Zero dedup settings fall back to defaults.
func New(l pkgLog.Logger, tracker TrackerGateway, notifier Notifier, matcher *tags.Matcher, cfg Config) UseCase {
	if cfg.DedupSize <= 0 {
		cfg.DedupSize = defaultDedupSize
	}
	if cfg.DedupTTL <= 0 {
		cfg.DedupTTL = defaultDedupTTL
	}
	return &useCase{
		tracker:  tracker,
		notifier: notifier,
		matcher:  matcher,
		dedup:    newDedupWindow(cfg.DedupSize, cfg.DedupTTL),
		l:        l,
	}
}
