package webhook

import (
	"encoding/json"
	"fmt"

	"github.com/prubiera85/sd-notifications/internal/model"
)

// LinearWebhookParser parses Linear webhook payloads.
type LinearWebhookParser struct{}

func NewLinearParser() *LinearWebhookParser {
	return &LinearWebhookParser{}
}

// ParseEvent parses the delivery envelope. The data payload is only
// decoded as comment data for Comment events; other types keep an
// empty Comment.
func (p *LinearWebhookParser) ParseEvent(payload []byte) (*model.WebhookEvent, error) {
	var envelope struct {
		Action           string          `json:"action"`
		Type             string          `json:"type"`
		Data             json.RawMessage `json:"data"`
		CreatedAt        string          `json:"createdAt"`
		OrganizationID   string          `json:"organizationId"`
		WebhookID        string          `json:"webhookId"`
		WebhookTimestamp int64           `json:"webhookTimestamp"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	event := &model.WebhookEvent{
		Action:           envelope.Action,
		Type:             envelope.Type,
		CreatedAt:        envelope.CreatedAt,
		OrganizationID:   envelope.OrganizationID,
		WebhookID:        envelope.WebhookID,
		WebhookTimestamp: envelope.WebhookTimestamp,
	}

	if envelope.Type == model.EventTypeComment && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &event.Comment); err != nil {
			return nil, fmt.Errorf("failed to parse comment data: %w", err)
		}
	}

	return event, nil
}
