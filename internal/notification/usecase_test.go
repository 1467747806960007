package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/prubiera85/sd-notifications/internal/model"
	"github.com/prubiera85/sd-notifications/internal/notification"
	"github.com/prubiera85/sd-notifications/internal/tags"
	"github.com/prubiera85/sd-notifications/pkg/slack"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, ...any) {}
func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any) {}
func (nopLogger) Warn(context.Context, ...any) {}
func (nopLogger) Warnf(context.Context, string, ...any) {}
func (nopLogger) Error(context.Context, ...any) {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

type fakeTracker struct {
	issue      *model.Issue
	comment    *model.Comment
	issueErr   error
	commentErr error
	calls      int
}

func (f *fakeTracker) GetIssue(ctx context.Context, id string) (*model.Issue, error) {
	f.calls++
	return f.issue, f.issueErr
}

func (f *fakeTracker) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	f.calls++
	return f.comment, f.commentErr
}

type fakeNotifier struct {
	sent     []slack.Message
	err      error
	failures int // fail this many sends before succeeding
}

func (f *fakeNotifier) Send(ctx context.Context, msg slack.Message) error {
	if f.err != nil {
		return f.err
	}
	if f.failures > 0 {
		f.failures--
		return errors.New("webhook 503")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func commentEvent(action, body string) model.WebhookEvent {
	return model.WebhookEvent{
		Type:   model.EventTypeComment,
		Action: action,
		Comment: model.CommentData{
			ID:        "c1",
			Body:      body,
			IssueID:   "i1",
			UpdatedAt: "2026-08-20T10:30:00.000Z",
		},
	}
}

func newUseCase(tr *fakeTracker, n *fakeNotifier) notification.UseCase {
	return notification.New(nopLogger{}, tr, n, tags.NewMatcher(tags.DefaultConfig), notification.Config{})
}

func TestProcessEventFilters(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		event      model.WebhookEvent
		wantReason string
	}{
		{
			name:       "non-comment type skipped regardless of body",
			event:      model.WebhookEvent{Type: "Issue", Action: "create", Comment: model.CommentData{ID: "c1", Body: "#sd help", IssueID: "i1"}},
			wantReason: "Not a comment event",
		},
		{
			name:       "remove action skipped",
			event:      commentEvent(model.ActionRemove, "#sd help"),
			wantReason: "Not a create or update action",
		},
		{
			name:       "empty body skipped",
			event:      commentEvent(model.ActionCreate, ""),
			wantReason: "Comment has no body",
		},
		{
			name:       "no monitored tags skipped",
			event:      commentEvent(model.ActionCreate, "nothing interesting #random"),
			wantReason: "No monitored tags found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &fakeTracker{}
			uc := newUseCase(tr, &fakeNotifier{})

			out, err := uc.ProcessEvent(ctx, tt.event)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Outcome != notification.OutcomeSkipped || out.Reason != tt.wantReason {
				t.Errorf("expected skip %q, got %+v", tt.wantReason, out)
			}
			// Short-circuit must happen before any fetch.
			if tr.calls != 0 {
				t.Errorf("expected no tracker calls, got %d", tr.calls)
			}
		})
	}
}

func TestProcessEventNotifies(t *testing.T) {
	ctx := context.Background()
	tr := &fakeTracker{
		issue:   &model.Issue{ID: "i1", Identifier: "SD-42", Title: "Printer on fire", URL: "https://linear.app/x"},
		comment: &model.Comment{ID: "c1", Body: "#sd help", IssueID: "i1"},
	}
	n := &fakeNotifier{}
	uc := newUseCase(tr, n)

	out, err := uc.ProcessEvent(ctx, commentEvent(model.ActionCreate, "#sd help"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Outcome != notification.OutcomeNotified {
		t.Fatalf("expected notified, got %+v", out)
	}
	if out.IssueIdentifier != "SD-42" {
		t.Errorf("unexpected identifier: %s", out.IssueIdentifier)
	}
	if diff := cmp.Diff([]string{"#sd"}, out.MatchedTags); diff != "" {
		t.Errorf("matched tags mismatch (-want +got):\n%s", diff)
	}
	if len(n.sent) != 1 {
		t.Fatalf("expected one message sent, got %d", len(n.sent))
	}
}

func TestProcessEventDuplicateDelivery(t *testing.T) {
	ctx := context.Background()
	tr := &fakeTracker{
		issue:   &model.Issue{ID: "i1", Identifier: "SD-42"},
		comment: &model.Comment{ID: "c1", Body: "#sd help"},
	}
	n := &fakeNotifier{}
	uc := newUseCase(tr, n)

	event := commentEvent(model.ActionCreate, "#sd help")

	first, err := uc.ProcessEvent(ctx, event)
	if err != nil || first.Outcome != notification.OutcomeNotified {
		t.Fatalf("first delivery: %+v, %v", first, err)
	}

	second, err := uc.ProcessEvent(ctx, event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Outcome != notification.OutcomeSkipped || second.Reason != "Duplicate delivery" {
		t.Errorf("expected duplicate skip, got %+v", second)
	}
	if len(n.sent) != 1 {
		t.Errorf("expected exactly one notification, got %d", len(n.sent))
	}

	// A new revision of the same comment notifies again.
	edited := commentEvent(model.ActionUpdate, "#sd help please")
	edited.Comment.UpdatedAt = "2026-08-20T11:00:00.000Z"
	third, err := uc.ProcessEvent(ctx, edited)
	if err != nil || third.Outcome != notification.OutcomeNotified {
		t.Errorf("edited delivery: %+v, %v", third, err)
	}
}

func TestProcessEventRedeliveryAfterFailure(t *testing.T) {
	ctx := context.Background()
	tr := &fakeTracker{
		issue:   &model.Issue{ID: "i1", Identifier: "SD-42"},
		comment: &model.Comment{ID: "c1", Body: "#sd help"},
	}
	n := &fakeNotifier{failures: 1}
	uc := newUseCase(tr, n)

	event := commentEvent(model.ActionCreate, "#sd help")

	// First delivery fails at send; nothing goes out.
	if _, err := uc.ProcessEvent(ctx, event); !errors.Is(err, notification.ErrDeliver) {
		t.Fatalf("expected ErrDeliver, got %v", err)
	}
	if len(n.sent) != 0 {
		t.Fatalf("expected no message after failed send, got %d", len(n.sent))
	}

	// An identical redelivery must not be swallowed as a duplicate.
	out, err := uc.ProcessEvent(ctx, event)
	if err != nil {
		t.Fatalf("unexpected error on redelivery: %v", err)
	}
	if out.Outcome != notification.OutcomeNotified {
		t.Fatalf("expected redelivery to notify, got %+v", out)
	}
	if len(n.sent) != 1 {
		t.Errorf("expected exactly one message, got %d", len(n.sent))
	}

	// A failed context fetch keeps the key unrecorded too.
	tr.issueErr = errors.New("upstream 502")
	fetchEvent := commentEvent(model.ActionCreate, "#sd other")
	fetchEvent.Comment.ID = "c2"
	if _, err := uc.ProcessEvent(ctx, fetchEvent); !errors.Is(err, notification.ErrFetchContext) {
		t.Fatalf("expected ErrFetchContext, got %v", err)
	}
	tr.issueErr = nil
	retried, err := uc.ProcessEvent(ctx, fetchEvent)
	if err != nil || retried.Outcome != notification.OutcomeNotified {
		t.Errorf("expected redelivery after fetch failure to notify, got %+v, %v", retried, err)
	}
}

func TestProcessEventFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch failure", func(t *testing.T) {
		tr := &fakeTracker{issueErr: errors.New("upstream 502")}
		uc := newUseCase(tr, &fakeNotifier{})

		_, err := uc.ProcessEvent(ctx, commentEvent(model.ActionCreate, "#sd help"))
		if !errors.Is(err, notification.ErrFetchContext) {
			t.Errorf("expected ErrFetchContext, got %v", err)
		}
	})

	t.Run("delivery failure", func(t *testing.T) {
		tr := &fakeTracker{
			issue:   &model.Issue{ID: "i1", Identifier: "SD-42"},
			comment: &model.Comment{ID: "c1", Body: "#sd help"},
		}
		uc := newUseCase(tr, &fakeNotifier{err: errors.New("webhook 410")})

		_, err := uc.ProcessEvent(ctx, commentEvent(model.ActionCreate, "#sd help"))
		if !errors.Is(err, notification.ErrDeliver) {
			t.Errorf("expected ErrDeliver, got %v", err)
		}
	})
}
