// Package slack posts messages to a Slack incoming webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrNotConfigured is returned when no webhook URL was provided.
var ErrNotConfigured = errors.New("slack: webhook URL not configured")

// Client delivers messages to a preconfigured incoming webhook. It
// holds only configuration and is safe for concurrent use. Delivery is
// never retried here; the caller decides how to surface failures.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

// NewClient creates a webhook client. An empty URL yields a client
// whose Send always fails with ErrNotConfigured.
func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{},
	}
}

// SetWebhookURL overrides the webhook URL for testing purposes.
func (c *Client) SetWebhookURL(url string) {
	c.webhookURL = url
}

// Send posts the message to the webhook. Fails when the endpoint is
// unconfigured, unreachable, or rejects the payload.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c.webhookURL == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack webhook error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// ValidateWebhookURL reports whether url looks like a Slack incoming
// webhook endpoint.
func ValidateWebhookURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Hostname() == "hooks.slack.com" && strings.HasPrefix(parsed.Path, "/services/")
}
