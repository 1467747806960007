package linear

import "time"

// User is a Linear user node.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// WorkflowState is a Linear workflow state node.
type WorkflowState struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Type  string `json:"type,omitempty"`
}

// Issue is a Linear issue node.
type Issue struct {
	ID          string         `json:"id"`
	Identifier  string         `json:"identifier"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url"`
	Priority    int            `json:"priority"`
	State       *WorkflowState `json:"state,omitempty"`
	Assignee    *User          `json:"assignee,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Comment is a Linear comment node. Issue is populated by the queries
// that request it inline.
type Comment struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	User      *User     `json:"user,omitempty"`
	Issue     *Issue    `json:"issue,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PageInfo carries cursor pagination state.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// CommentPage is one page of a comment connection.
type CommentPage struct {
	Nodes    []Comment `json:"nodes"`
	PageInfo PageInfo  `json:"pageInfo"`
}

const issueQuery = `query IssueByID($id: String!) {
  issue(id: $id) {
    id
    identifier
    title
    description
    url
    priority
    createdAt
    updatedAt
    state { id name color type }
    assignee { id name email }
  }
}`

const commentQuery = `query CommentByID($id: String!) {
  comment(id: $id) {
    id
    body
    createdAt
    updatedAt
    user { id name email }
    issue { id identifier }
  }
}`

const commentsQuery = `query RecentComments($first: Int!, $after: String, $filter: CommentFilter) {
  comments(first: $first, after: $after, filter: $filter) {
    nodes {
      id
      body
      createdAt
      updatedAt
      user { id name }
      issue {
        id
        identifier
        title
        url
        priority
        createdAt
        updatedAt
        state { name color type }
        assignee { id name }
      }
    }
    pageInfo { hasNextPage endCursor }
  }
}`

const viewerQuery = `query Viewer {
  viewer { id name email }
}`
