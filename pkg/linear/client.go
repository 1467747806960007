// Package linear is a thin client for the Linear GraphQL API, covering
// only the operations this service needs: single issue/comment lookups
// and a paginated comment scan.
package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// DefaultEndpoint is the Linear GraphQL endpoint.
const DefaultEndpoint = "https://api.linear.app/graphql"

// ErrNotFound is returned when a lookup resolves to no entity.
var ErrNotFound = errors.New("linear: not found")

// Client talks to the Linear GraphQL API. It holds only configuration
// and is safe to share across concurrent requests.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient builds a client authenticated with the given API key,
// carried as a bearer token via an oauth2 static token source.
func NewClient(apiKey string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey})
	return &Client{
		endpoint:   DefaultEndpoint,
		httpClient: oauth2.NewClient(context.Background(), src),
	}
}

// SetEndpoint overrides the GraphQL endpoint for testing purposes.
func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint = endpoint
}

// Issue fetches a single issue by id. Returns ErrNotFound when the API
// resolves no issue.
func (c *Client) Issue(ctx context.Context, id string) (*Issue, error) {
	var out struct {
		Issue *Issue `json:"issue"`
	}
	vars := map[string]any{"id": id}
	if err := c.query(ctx, issueQuery, vars, &out); err != nil {
		return nil, err
	}
	if out.Issue == nil || out.Issue.ID == "" {
		return nil, fmt.Errorf("issue %s: %w", id, ErrNotFound)
	}
	return out.Issue, nil
}

// Comment fetches a single comment by id. Returns ErrNotFound when the
// API resolves no comment.
func (c *Client) Comment(ctx context.Context, id string) (*Comment, error) {
	var out struct {
		Comment *Comment `json:"comment"`
	}
	vars := map[string]any{"id": id}
	if err := c.query(ctx, commentQuery, vars, &out); err != nil {
		return nil, err
	}
	if out.Comment == nil || out.Comment.ID == "" {
		return nil, fmt.Errorf("comment %s: %w", id, ErrNotFound)
	}
	return out.Comment, nil
}

// CommentsQuery scopes a paginated comment scan.
type CommentsQuery struct {
	// Since is the createdAt lower bound, ISO 8601.
	Since string
	// TeamID optionally restricts the scan to one team's issues.
	TeamID string
	// First is the page size.
	First int
	// After is the pagination cursor; empty for the first page.
	After string
}

// Comments fetches one page of comments created at or after the
// threshold, newest filter semantics left to the API.
func (c *Client) Comments(ctx context.Context, q CommentsQuery) (*CommentPage, error) {
	filter := map[string]any{
		"createdAt": map[string]any{"gte": q.Since},
	}
	if q.TeamID != "" {
		filter["issue"] = map[string]any{
			"team": map[string]any{"id": map[string]any{"eq": q.TeamID}},
		}
	}

	vars := map[string]any{
		"first":  q.First,
		"filter": filter,
	}
	if q.After != "" {
		vars["after"] = q.After
	}

	var out struct {
		Comments *CommentPage `json:"comments"`
	}
	if err := c.query(ctx, commentsQuery, vars, &out); err != nil {
		return nil, err
	}
	if out.Comments == nil {
		return nil, fmt.Errorf("comments query returned no connection")
	}
	return out.Comments, nil
}

// Viewer returns the authenticated user, used as a connection check.
func (c *Client) Viewer(ctx context.Context) (*User, error) {
	var out struct {
		Viewer *User `json:"viewer"`
	}
	if err := c.query(ctx, viewerQuery, nil, &out); err != nil {
		return nil, err
	}
	if out.Viewer == nil {
		return nil, fmt.Errorf("viewer: %w", ErrNotFound)
	}
	return out.Viewer, nil
}

// query posts a GraphQL request and decodes data into out.
func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	reqBody, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal graphql request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to build graphql request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call linear API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("linear API error %d: %s", resp.StatusCode, string(raw))
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode linear response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("linear API error: %s", envelope.Errors[0].Message)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode linear data: %w", err)
	}
	return nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}
