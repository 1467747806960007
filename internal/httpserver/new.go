package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	pkgLog "github.com/prubiera85/sd-notifications/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	// Webhook ingestion
	webhookHandler interface {
		HandleLinearWebhook(c *gin.Context)
	}

	// Dashboard read path
	ticketsHandler interface {
		ListTickets(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	WebhookHandler interface {
		HandleLinearWebhook(c *gin.Context)
	}

	TicketsHandler interface {
		ListTickets(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		webhookHandler: cfg.WebhookHandler,
		ticketsHandler: cfg.TicketsHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
