package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prubiera85/sd-notifications/config"
	_ "github.com/prubiera85/sd-notifications/docs" // Swagger docs
	"github.com/prubiera85/sd-notifications/internal/httpserver"
	"github.com/prubiera85/sd-notifications/internal/notification"
	"github.com/prubiera85/sd-notifications/internal/tags"
	"github.com/prubiera85/sd-notifications/internal/tickets"
	"github.com/prubiera85/sd-notifications/internal/tracker"
	"github.com/prubiera85/sd-notifications/internal/webhook"
	"github.com/prubiera85/sd-notifications/pkg/linear"
	"github.com/prubiera85/sd-notifications/pkg/log"
	"github.com/prubiera85/sd-notifications/pkg/slack"
)

// @title       Service Desk Notifications API
// @description Relays tagged Linear comments to Slack and serves a dashboard of recent service desk tickets.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Service Desk Notifications...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Monitored tags
	tagConfig := tags.Resolve(ctx, logger, tags.ResolveOptions{
		EnvValue: cfg.Tags.EnvOverride,
		FilePath: cfg.Tags.FilePath,
	})
	matcher := tags.NewMatcher(tagConfig)
	logger.Infof(ctx, "Monitoring tags: %v (caseSensitive=%v)", tagConfig.Patterns, tagConfig.CaseSensitive)

	// 4. Linear gateway
	if cfg.Linear.APIKey == "" {
		logger.Warn(ctx, "LINEAR_API_KEY not set, issue context fetches and the tickets dashboard will fail")
	}
	linearClient := linear.NewClient(cfg.Linear.APIKey)
	gateway := tracker.New(logger, linearClient, matcher, tracker.Config{
		TeamID:   cfg.Linear.TeamID,
		PageSize: cfg.Linear.PageSize,
		MaxPages: cfg.Linear.MaxPages,
	})

	if cfg.Linear.APIKey != "" {
		if viewer, vErr := linearClient.Viewer(ctx); vErr != nil {
			logger.Warnf(ctx, "Linear API key check failed (continuing): %v", vErr)
		} else {
			logger.Infof(ctx, "Linear API authenticated as %s", viewer.Name)
		}
	}

	// 5. Slack notifier
	if cfg.Slack.WebhookURL == "" {
		logger.Warn(ctx, "SLACK_WEBHOOK_URL not set, notifications will fail until it is configured")
	} else if !slack.ValidateWebhookURL(cfg.Slack.WebhookURL) {
		logger.Warn(ctx, "Slack webhook URL does not look like a Slack incoming webhook endpoint")
	}
	notifier := slack.NewClient(cfg.Slack.WebhookURL)

	// 6. Notification pipeline
	notificationUC := notification.New(logger, gateway, notifier, matcher, notification.Config{
		DedupSize: cfg.Webhook.DedupSize,
		DedupTTL:  cfg.Webhook.DedupTTL,
	})

	// 7. Handlers
	webhookHandler := webhook.NewHandler(notificationUC, webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	}, logger)
	if cfg.Webhook.Secret == "" {
		logger.Warn(ctx, "LINEAR_WEBHOOK_SECRET not set, all webhook deliveries will be rejected")
	}

	ticketsHandler := tickets.NewHandler(logger, gateway, tickets.Config{
		APIKeyConfigured: cfg.Linear.APIKey != "",
		DaysBack:         cfg.Linear.DaysBack,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookHandler: webhookHandler,
		TicketsHandler: ticketsHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
