package notification_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prubiera85/sd-notifications/internal/model"
	"github.com/prubiera85/sd-notifications/internal/notification"
	"github.com/prubiera85/sd-notifications/pkg/slack"
)

func sampleIssue() *model.Issue {
	return &model.Issue{
		ID:         "i1",
		Identifier: "SD-42",
		Title:      "Printer on fire",
		URL:        "https://linear.app/acme/issue/SD-42",
		Priority:   1,
		State:      model.State{Name: "In Progress"},
		Assignee:   &model.User{ID: "u2", Name: "Robin"},
	}
}

func sampleComment() *model.Comment {
	return &model.Comment{
		ID:        "c1",
		Body:      "please look at this #sd",
		IssueID:   "i1",
		Author:    &model.User{ID: "u1", Name: "Dana"},
		CreatedAt: time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
	}
}

func fieldTexts(msg slack.Message) []string {
	var out []string
	for _, b := range msg.Blocks {
		for _, f := range b.Fields {
			out = append(out, f.Text)
		}
	}
	return out
}

func TestFormat(t *testing.T) {
	t.Run("summary includes identifier", func(t *testing.T) {
		msg := notification.Format(sampleIssue(), sampleComment(), []string{"#sd"}, false)
		if !strings.Contains(msg.Text, "SD-42") || !strings.Contains(msg.Text, "Printer on fire") {
			t.Errorf("unexpected summary: %s", msg.Text)
		}
	})

	t.Run("priority field rendered for urgent", func(t *testing.T) {
		msg := notification.Format(sampleIssue(), sampleComment(), []string{"#sd"}, false)
		joined := strings.Join(fieldTexts(msg), "\n")
		if !strings.Contains(joined, "🔴 Urgent") {
			t.Errorf("expected urgent priority field, got:\n%s", joined)
		}
	})

	t.Run("priority zero omits the line", func(t *testing.T) {
		issue := sampleIssue()
		issue.Priority = 0
		msg := notification.Format(issue, sampleComment(), []string{"#sd"}, false)
		joined := strings.Join(fieldTexts(msg), "\n")
		if strings.Contains(joined, "Priority") {
			t.Errorf("expected no priority field, got:\n%s", joined)
		}
	})

	t.Run("author fallback", func(t *testing.T) {
		comment := sampleComment()
		comment.Author = nil
		msg := notification.Format(sampleIssue(), comment, []string{"#sd"}, false)
		found := false
		for _, b := range msg.Blocks {
			if b.Text != nil && strings.Contains(b.Text.Text, "Comment by "+notification.AuthorPlaceholder) {
				found = true
			}
		}
		if !found {
			t.Error("expected author placeholder in comment block")
		}
	})

	t.Run("edit indicator", func(t *testing.T) {
		msg := notification.Format(sampleIssue(), sampleComment(), []string{"#sd"}, true)
		if !strings.Contains(msg.Text, "(edited)") {
			t.Errorf("expected edit marker in summary: %s", msg.Text)
		}
	})

	t.Run("body not truncated or highlighted", func(t *testing.T) {
		comment := sampleComment()
		comment.Body = strings.Repeat("x", 500) + " #sd"
		msg := notification.Format(sampleIssue(), comment, []string{"#sd"}, false)
		found := false
		for _, b := range msg.Blocks {
			if b.Text != nil && strings.Contains(b.Text.Text, comment.Body) {
				found = true
			}
		}
		if !found {
			t.Error("expected full comment body in message")
		}
	})
}

func TestPriorityLabel(t *testing.T) {
	tests := []struct {
		priority int
		want     string
	}{
		{0, "🔵 None"},
		{1, "🔴 Urgent"},
		{2, "🟠 High"},
		{3, "🟡 Normal"},
		{4, "⚪ Low"},
		{7, "Unknown"},
		{-1, "Unknown"},
	}
	for _, tt := range tests {
		if got := model.PriorityLabel(tt.priority); got != tt.want {
			t.Errorf("PriorityLabel(%d) = %q, want %q", tt.priority, got, tt.want)
		}
	}
}
