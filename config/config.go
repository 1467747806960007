package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Service desk specifics
	Linear LinearConfig
	Slack  SlackConfig
	Tags   TagsConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type LinearConfig struct {
	APIKey   string
	TeamID   string
	DaysBack int
	PageSize int
	MaxPages int
}

type SlackConfig struct {
	WebhookURL string
}

// TagsConfig points at the monitored-tag sources. EnvOverride carries
// the raw comma-separated MONITORED_TAGS value; FilePath is the JSON
// config file checked when the env override is absent.
type TagsConfig struct {
	EnvOverride string
	FilePath    string
}

type WebhookConfig struct {
	Secret          string
	RateLimitPerMin int
	DedupSize       int
	DedupTTL        time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Linear. Flat env names win over the yaml section so container
	// deployments only need LINEAR_API_KEY et al.
	cfg.Linear.APIKey = viper.GetString("linear.api_key")
	if key := viper.GetString("linear_api_key"); key != "" {
		cfg.Linear.APIKey = key
	}
	cfg.Linear.TeamID = viper.GetString("linear.team_id")
	if teamID := viper.GetString("linear_team_id"); teamID != "" {
		cfg.Linear.TeamID = teamID
	}
	cfg.Linear.DaysBack = viper.GetInt("linear.days_back")
	cfg.Linear.PageSize = viper.GetInt("linear.page_size")
	cfg.Linear.MaxPages = viper.GetInt("linear.max_pages")

	// Slack
	cfg.Slack.WebhookURL = viper.GetString("slack.webhook_url")
	if url := viper.GetString("slack_webhook_url"); url != "" {
		cfg.Slack.WebhookURL = url
	}

	// Monitored tags
	cfg.Tags.EnvOverride = viper.GetString("monitored_tags")
	cfg.Tags.FilePath = viper.GetString("tags.file_path")

	// Webhooks
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if secret := viper.GetString("linear_webhook_secret"); secret != "" {
		cfg.Webhook.Secret = secret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.DedupSize = viper.GetInt("webhook.dedup_size")
	cfg.Webhook.DedupTTL = viper.GetDuration("webhook.dedup_ttl")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("linear.days_back", 14)
	viper.SetDefault("linear.page_size", 250)
	viper.SetDefault("linear.max_pages", 2)
	viper.SetDefault("tags.file_path", "config/monitored-tags.json")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.dedup_size", 1024)
	viper.SetDefault("webhook.dedup_ttl", 10*time.Minute)
}
