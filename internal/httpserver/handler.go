package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/prubiera85/sd-notifications/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.Cors())
	srv.gin.Use(mw.RequestID())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.webhookHandler != nil {
		srv.gin.POST("/webhook/linear", srv.webhookHandler.HandleLinearWebhook)
		srv.l.Infof(ctx, "Linear webhook route registered at POST /webhook/linear")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping webhook route")
	}

	if srv.ticketsHandler != nil {
		api := srv.gin.Group("/api/v1")
		api.GET("/tickets", srv.ticketsHandler.ListTickets)
		srv.l.Infof(ctx, "Tickets route registered at GET /api/v1/tickets")
	} else {
		srv.l.Infof(ctx, "Tickets handler not configured, skipping tickets route")
	}

	return nil
}
