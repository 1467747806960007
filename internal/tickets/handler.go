package tickets

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prubiera85/sd-notifications/internal/model"
	pkgResponse "github.com/prubiera85/sd-notifications/pkg/response"
)

// ListTickets scans recent comments for monitored tags and returns them
// as dashboard tickets, newest delivery first as the tracker returns
// them.
// @Summary List recent service desk tickets
// @Description Scans recent tracker comments for monitored tags and returns the matches with their parent issues.
// @Tags tickets
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/tickets [get]
func (h *Handler) ListTickets(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.cfg.APIKeyConfigured {
		h.l.Errorf(ctx, "Tickets requested but no tracker API key is configured")
		pkgResponse.InternalError(c, "Linear API key not configured")
		return
	}

	start := time.Now()
	result, truncated, err := h.source.RecentTaggedComments(ctx, h.cfg.DaysBack)
	if err != nil {
		h.l.Errorf(ctx, "Failed to scan recent comments: %v", err)
		pkgResponse.InternalError(c, "Failed to fetch tickets")
		return
	}

	// Keep the JSON array non-null even with zero matches.
	if result == nil {
		result = []model.Ticket{}
	}

	h.l.Infof(ctx, "Ticket scan found %d matches in %s (truncated=%v)", len(result), time.Since(start), truncated)

	payload := gin.H{
		"tickets":   result,
		"count":     len(result),
		"fetchTime": time.Now().UTC().Format(time.RFC3339),
	}
	if truncated {
		payload["truncated"] = true
	}
	pkgResponse.OK(c, payload)
}
