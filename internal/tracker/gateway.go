// Package tracker wraps the Linear API behind the gateway the
// notification pipeline and the dashboard read path consume.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prubiera85/sd-notifications/internal/model"
	"github.com/prubiera85/sd-notifications/internal/tags"
	"github.com/prubiera85/sd-notifications/pkg/linear"
	pkgLog "github.com/prubiera85/sd-notifications/pkg/log"
)

// ErrNotFound is returned when an issue or comment lookup resolves to
// nothing.
var ErrNotFound = errors.New("tracker: not found")

const (
	DefaultPageSize = 250
	DefaultMaxPages = 2
)

// Config bounds the bulk comment scan. MaxPages exists to keep the
// worst-case scan inside an external execution-time budget; raising it
// trades availability for completeness.
type Config struct {
	TeamID   string
	PageSize int
	MaxPages int
}

// Gateway exposes the tracker operations this service needs.
type Gateway struct {
	client  *linear.Client
	matcher *tags.Matcher
	cfg     Config
	l       pkgLog.Logger
}

// New creates a Gateway. Zero page settings fall back to defaults.
func New(l pkgLog.Logger, client *linear.Client, matcher *tags.Matcher, cfg Config) *Gateway {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	return &Gateway{
		client:  client,
		matcher: matcher,
		cfg:     cfg,
		l:       l,
	}
}

// GetIssue fetches one issue by id.
func (g *Gateway) GetIssue(ctx context.Context, id string) (*model.Issue, error) {
	issue, err := g.client.Issue(ctx, id)
	if err != nil {
		if errors.Is(err, linear.ErrNotFound) {
			return nil, fmt.Errorf("issue %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch issue %s: %w", id, err)
	}
	converted := toModelIssue(issue)
	return &converted, nil
}

// GetComment fetches one comment by id.
func (g *Gateway) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	comment, err := g.client.Comment(ctx, id)
	if err != nil {
		if errors.Is(err, linear.ErrNotFound) {
			return nil, fmt.Errorf("comment %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch comment %s: %w", id, err)
	}
	converted := toModelComment(comment)
	return &converted, nil
}

// RecentTaggedComments walks comments created within the last daysBack
// days, tag-matches each body inline, and returns only matches enriched
// with their parent issue. The walk stops at the configured page cap;
// truncated reports whether more matching comments may exist beyond it.
func (g *Gateway) RecentTaggedComments(ctx context.Context, daysBack int) (tickets []model.Ticket, truncated bool, err error) {
	since := time.Now().AddDate(0, 0, -daysBack).UTC().Format(time.RFC3339)

	cursor := ""
	for page := 0; page < g.cfg.MaxPages; page++ {
		result, err := g.client.Comments(ctx, linear.CommentsQuery{
			Since:  since,
			TeamID: g.cfg.TeamID,
			First:  g.cfg.PageSize,
			After:  cursor,
		})
		if err != nil {
			return nil, false, fmt.Errorf("failed to scan comments (page %d): %w", page+1, err)
		}

		for _, node := range result.Nodes {
			matched := g.matcher.Match(node.Body)
			if len(matched) == 0 {
				continue
			}
			if node.Issue == nil {
				g.l.Warnf(ctx, "Comment %s matched but has no parent issue, skipping", node.ID)
				continue
			}
			tickets = append(tickets, model.Ticket{
				Issue:       toModelIssue(node.Issue),
				Comment:     toModelComment(&node),
				MatchedTags: matched,
			})
		}

		if !result.PageInfo.HasNextPage {
			return tickets, false, nil
		}
		cursor = result.PageInfo.EndCursor
	}

	g.l.Warnf(ctx, "Comment scan hit the %d-page cap, results are partial", g.cfg.MaxPages)
	return tickets, true, nil
}

func toModelIssue(issue *linear.Issue) model.Issue {
	out := model.Issue{
		ID:          issue.ID,
		Identifier:  issue.Identifier,
		Title:       issue.Title,
		Description: issue.Description,
		URL:         issue.URL,
		Priority:    issue.Priority,
		CreatedAt:   issue.CreatedAt,
		UpdatedAt:   issue.UpdatedAt,
	}
	if issue.State != nil {
		out.State = model.State{Name: issue.State.Name, Color: issue.State.Color, Type: issue.State.Type}
	}
	if issue.Assignee != nil {
		out.Assignee = &model.User{ID: issue.Assignee.ID, Name: issue.Assignee.Name, Email: issue.Assignee.Email}
	}
	return out
}

func toModelComment(comment *linear.Comment) model.Comment {
	out := model.Comment{
		ID:        comment.ID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if comment.Issue != nil {
		out.IssueID = comment.Issue.ID
	}
	if comment.User != nil {
		out.Author = &model.User{ID: comment.User.ID, Name: comment.User.Name, Email: comment.User.Email}
	}
	return out
}
