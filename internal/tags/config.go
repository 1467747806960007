package tags

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/prubiera85/sd-notifications/internal/model"
	pkgLog "github.com/prubiera85/sd-notifications/pkg/log"
)

// DefaultConfig is the built-in monitored pattern set, used when no
// override or config file is available.
var DefaultConfig = model.TagConfig{
	Patterns:      []string{"#sd", "#service-desk", "#servicedesk"},
	CaseSensitive: false,
}

// ResolveOptions selects where the pattern set is loaded from.
type ResolveOptions struct {
	// EnvValue is the raw comma-separated override (typically the
	// MONITORED_TAGS env var); empty means not set.
	EnvValue string
	// FilePath points at the JSON config file tried after the env
	// override.
	FilePath string
}

// source is one step of the resolution chain.
type source struct {
	name string
	load func() (model.TagConfig, error)
}

// Resolve evaluates the pattern-set sources in order (env override,
// then config file, then built-in default) and returns the first that
// succeeds. Failures fall through with a warning; the default never
// fails.
func Resolve(ctx context.Context, l pkgLog.Logger, opts ResolveOptions) model.TagConfig {
	sources := []source{
		{name: "env override", load: func() (model.TagConfig, error) { return fromEnvValue(opts.EnvValue) }},
		{name: "config file", load: func() (model.TagConfig, error) { return fromFile(opts.FilePath) }},
	}

	for _, src := range sources {
		cfg, err := src.load()
		if err != nil {
			l.Warnf(ctx, "Tag config source %q unavailable: %v", src.name, err)
			continue
		}
		l.Infof(ctx, "Monitored tags loaded from %s: %v", src.name, cfg.Patterns)
		return cfg
	}

	l.Warnf(ctx, "Using default tag patterns: %v", DefaultConfig.Patterns)
	return DefaultConfig
}

func fromEnvValue(raw string) (model.TagConfig, error) {
	if raw == "" {
		return model.TagConfig{}, fmt.Errorf("not set")
	}

	var patterns []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		patterns = append(patterns, p)
	}
	if len(patterns) == 0 {
		return model.TagConfig{}, fmt.Errorf("no patterns in override")
	}

	return model.TagConfig{Patterns: patterns, CaseSensitive: false}, nil
}

func fromFile(path string) (model.TagConfig, error) {
	if path == "" {
		return model.TagConfig{}, fmt.Errorf("no file path configured")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return model.TagConfig{}, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg model.TagConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return model.TagConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Patterns) == 0 {
		return model.TagConfig{}, fmt.Errorf("%s has no patterns", path)
	}

	return cfg, nil
}
