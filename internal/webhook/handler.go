package webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prubiera85/sd-notifications/internal/notification"
	pkgResponse "github.com/prubiera85/sd-notifications/pkg/response"
)

// HandleLinearWebhook processes one Linear webhook delivery
// synchronously to a terminal state. No retry, no background queue;
// Linear redelivers on error statuses if it wants to.
// @Summary Handle Linear webhook delivery
// @Description Verifies the delivery signature, filters comment events for monitored tags, and relays matches to Slack.
// @Tags webhook
// @Accept json
// @Produce json
// @Param linear-signature header string true "HMAC-SHA256 signature of the request body"
// @Success 200 {object} map[string]interface{} "Processed or skipped"
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /webhook/linear [post]
func (h *Handler) HandleLinearWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.BadRequest(c, "failed to read request body")
		return
	}

	// Verify signature before trusting anything in the payload.
	signature := c.GetHeader(SignatureHeader)
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Webhook signature verification failed: %v", err)
		pkgResponse.Unauthorized(c, "Invalid signature")
		return
	}

	if err := h.security.CheckRateLimit("linear"); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "rate limit exceeded"})
		return
	}

	event, err := h.parser.ParseEvent(body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse webhook payload: %v", err)
		pkgResponse.BadRequest(c, "Invalid JSON payload")
		return
	}

	// A missing timestamp is tolerated; a stale one is a suspected
	// replay.
	if event.WebhookTimestamp != 0 && !h.security.ValidTimestamp(event.WebhookTimestamp) {
		h.l.Warnf(ctx, "Webhook timestamp outside freshness window, possible replay attack")
		pkgResponse.BadRequest(c, "Timestamp too old")
		return
	}

	h.l.Infof(ctx, "Webhook type: %s, action: %s", event.Type, event.Action)

	output, err := h.notificationUC.ProcessEvent(ctx, *event)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrFetchContext):
			h.l.Errorf(ctx, "Failed to fetch issue or comment: %v", err)
			pkgResponse.InternalError(c, "Failed to fetch issue or comment details")
		case errors.Is(err, notification.ErrDeliver):
			h.l.Errorf(ctx, "Failed to send notification: %v", err)
			pkgResponse.InternalError(c, "Failed to send notification")
		default:
			h.l.Errorf(ctx, "Webhook processing failed: %v", err)
			pkgResponse.InternalError(c, "Internal server error")
		}
		return
	}

	if output.Outcome == notification.OutcomeSkipped {
		h.l.Infof(ctx, "Delivery skipped: %s", output.Reason)
		pkgResponse.Skip(c, output.Reason)
		return
	}

	pkgResponse.OK(c, gin.H{
		"notified":        true,
		"issueIdentifier": output.IssueIdentifier,
		"matchedTags":     output.MatchedTags,
	})
}
