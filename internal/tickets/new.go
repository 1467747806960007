package tickets

import (
	"context"

	"github.com/prubiera85/sd-notifications/internal/model"
	pkgLog "github.com/prubiera85/sd-notifications/pkg/log"
)

// TicketSource lists recent tagged comments enriched with their parent
// issue.
type TicketSource interface {
	RecentTaggedComments(ctx context.Context, daysBack int) ([]model.Ticket, bool, error)
}

type Handler struct {
	source TicketSource
	cfg    Config
	l      pkgLog.Logger
}

func NewHandler(l pkgLog.Logger, source TicketSource, cfg Config) *Handler {
	if cfg.DaysBack <= 0 {
		cfg.DaysBack = DefaultDaysBack
	}
	return &Handler{
		source: source,
		cfg:    cfg,
		l:      l,
	}
}
