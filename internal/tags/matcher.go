// Package tags implements hashtag extraction and matching against the
// monitored pattern set.
package tags

import (
	"regexp"
	"strings"

	"github.com/prubiera85/sd-notifications/internal/model"
)

// hashtagRe matches # followed by word characters or hyphens.
var hashtagRe = regexp.MustCompile(`#[\w-]+`)

// Extract returns all hashtag tokens in text, in order of first
// occurrence, duplicates preserved.
func Extract(text string) []string {
	if text == "" {
		return nil
	}
	return hashtagRe.FindAllString(text, -1)
}

// Matcher filters extracted hashtags against a static pattern set.
type Matcher struct {
	config model.TagConfig
	// lowered patterns, precomputed for the case-insensitive path
	folded map[string]struct{}
	exact  map[string]struct{}
}

// NewMatcher builds a matcher for the given pattern set.
func NewMatcher(config model.TagConfig) *Matcher {
	m := &Matcher{
		config: config,
		folded: make(map[string]struct{}, len(config.Patterns)),
		exact:  make(map[string]struct{}, len(config.Patterns)),
	}
	for _, p := range config.Patterns {
		m.exact[p] = struct{}{}
		m.folded[strings.ToLower(p)] = struct{}{}
	}
	return m
}

// Config returns the pattern set the matcher was built with.
func (m *Matcher) Config() model.TagConfig {
	return m.config
}

// Match extracts hashtags from text and keeps those equal to a
// monitored pattern. Original casing is preserved in the result; an
// empty result means no monitored tag is present.
func (m *Matcher) Match(text string) []string {
	hashtags := Extract(text)
	if len(hashtags) == 0 {
		return nil
	}

	var matched []string
	for _, tag := range hashtags {
		if m.config.CaseSensitive {
			if _, ok := m.exact[tag]; ok {
				matched = append(matched, tag)
			}
			continue
		}
		if _, ok := m.folded[strings.ToLower(tag)]; ok {
			matched = append(matched, tag)
		}
	}
	return matched
}
