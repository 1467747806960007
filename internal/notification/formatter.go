package notification

import (
	"fmt"
	"strings"

	"github.com/prubiera85/sd-notifications/internal/model"
	"github.com/prubiera85/sd-notifications/pkg/slack"
)

// AuthorPlaceholder is shown when the comment author is unknown.
const AuthorPlaceholder = "Unknown"

// Format builds the chat message for a matched comment. Pure function:
// no truncation, no in-text tag highlighting. Matched tags get their
// own field instead, since per-tag substring replacement corrupts
// overlapping matches.
func Format(issue *model.Issue, comment *model.Comment, matchedTags []string, isEdit bool) slack.Message {
	summary := fmt.Sprintf("🔔 Service Desk Mention in %s: %s", issue.Identifier, issue.Title)
	if isEdit {
		summary += " (edited)"
	}

	author := AuthorPlaceholder
	if comment.Author != nil && comment.Author.Name != "" {
		author = comment.Author.Name
	}

	fields := []slack.Text{
		{Type: slack.TextMarkdown, Text: fmt.Sprintf("*Status:*\n%s", stateName(issue))},
		{Type: slack.TextMarkdown, Text: fmt.Sprintf("*Assignee:*\n%s", assigneeName(issue))},
	}
	// Priority 0 is "no priority"; the line is omitted entirely.
	if issue.Priority != 0 {
		fields = append(fields, slack.Text{
			Type: slack.TextMarkdown,
			Text: fmt.Sprintf("*Priority:*\n%s", model.PriorityLabel(issue.Priority)),
		})
	}
	fields = append(fields, slack.Text{
		Type: slack.TextMarkdown,
		Text: fmt.Sprintf("*Tags:*\n%s", strings.Join(matchedTags, ", ")),
	})

	commentHeading := fmt.Sprintf("*Comment by %s:*", author)
	if isEdit {
		commentHeading = fmt.Sprintf("*Comment by %s (edited):*", author)
	}

	blocks := []slack.Block{
		{
			Type: slack.BlockHeader,
			Text: &slack.Text{Type: slack.TextPlain, Text: "🔔 Service Desk Mention"},
		},
		{
			Type: slack.BlockSection,
			Text: &slack.Text{
				Type: slack.TextMarkdown,
				Text: fmt.Sprintf("*<%s|%s: %s>*", issue.URL, issue.Identifier, issue.Title),
			},
		},
		{
			Type:   slack.BlockSection,
			Fields: fields,
		},
		{
			Type: slack.BlockSection,
			Text: &slack.Text{
				Type: slack.TextMarkdown,
				Text: commentHeading + "\n" + comment.Body,
			},
		},
		{
			Type: slack.BlockActions,
			Elements: []slack.Element{
				{
					Type:     slack.ElementButton,
					Text:     &slack.Text{Type: slack.TextPlain, Text: "Open in Linear"},
					URL:      issue.URL,
					ActionID: "open_linear",
				},
			},
		},
		{
			Type: slack.BlockContext,
			Elements: []slack.Element{
				{
					Type: slack.ElementMarkdown,
					Text: fmt.Sprintf("<!date^%d^{date_short_pretty} at {time}|%s>",
						comment.CreatedAt.Unix(), comment.CreatedAt.Format("2006-01-02 15:04")),
				},
			},
		},
	}

	return slack.Message{Text: summary, Blocks: blocks}
}

func stateName(issue *model.Issue) string {
	if issue.State.Name == "" {
		return "Unknown"
	}
	return issue.State.Name
}

func assigneeName(issue *model.Issue) string {
	if issue.Assignee == nil || issue.Assignee.Name == "" {
		return "Unassigned"
	}
	return issue.Assignee.Name
}
