package notification

import (
	"context"

	"github.com/prubiera85/sd-notifications/internal/model"
	"github.com/prubiera85/sd-notifications/pkg/slack"
)

// UseCase processes parsed webhook events to completion.
type UseCase interface {
	ProcessEvent(ctx context.Context, event model.WebhookEvent) (ProcessOutput, error)
}

// TrackerGateway is the slice of the tracker gateway the pipeline
// needs. Lookups always happen after signature validation; only ids
// from the payload are trusted.
type TrackerGateway interface {
	GetIssue(ctx context.Context, id string) (*model.Issue, error)
	GetComment(ctx context.Context, id string) (*model.Comment, error)
}

// Notifier delivers a formatted message to the chat webhook.
type Notifier interface {
	Send(ctx context.Context, msg slack.Message) error
}
