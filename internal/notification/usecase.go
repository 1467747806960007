package notification

import (
	"context"
	"fmt"

	"github.com/prubiera85/sd-notifications/internal/model"
)

// ProcessEvent runs one delivery through the filter chain to a terminal
// outcome. Skips are not errors; returned errors are wrapped with
// ErrFetchContext or ErrDeliver so the handler can map them to a
// status. Processing is synchronous and never retried.
func (uc *useCase) ProcessEvent(ctx context.Context, event model.WebhookEvent) (ProcessOutput, error) {
	if event.Type != model.EventTypeComment {
		return skip("Not a comment event"), nil
	}
	if event.Action != model.ActionCreate && event.Action != model.ActionUpdate {
		return skip("Not a create or update action"), nil
	}
	if event.Comment.Body == "" {
		return skip("Comment has no body"), nil
	}

	matchedTags := uc.matcher.Match(event.Comment.Body)
	if len(matchedTags) == 0 {
		return skip("No monitored tags found"), nil
	}
	uc.l.Infof(ctx, "Matched tags: %v", matchedTags)

	if event.Comment.IssueID == "" {
		return skip("Comment has no issueId"), nil
	}
	if event.Comment.ID == "" {
		return skip("Comment has no id"), nil
	}

	// Redelivery guard: same action on the same comment revision only
	// notifies once per window. The key is recorded after Send, so a
	// failed fetch or delivery leaves the redelivery eligible.
	key := fmt.Sprintf("%s:%s:%s", event.Action, event.Comment.ID, event.Comment.UpdatedAt)
	if uc.dedup.delivered(key) {
		uc.l.Infof(ctx, "Duplicate delivery for comment %s, skipping", event.Comment.ID)
		return skip("Duplicate delivery"), nil
	}

	issue, err := uc.tracker.GetIssue(ctx, event.Comment.IssueID)
	if err != nil {
		return ProcessOutput{}, fmt.Errorf("%w: %v", ErrFetchContext, err)
	}
	comment, err := uc.tracker.GetComment(ctx, event.Comment.ID)
	if err != nil {
		return ProcessOutput{}, fmt.Errorf("%w: %v", ErrFetchContext, err)
	}

	msg := Format(issue, comment, matchedTags, event.Action == model.ActionUpdate)
	if err := uc.notifier.Send(ctx, msg); err != nil {
		return ProcessOutput{}, fmt.Errorf("%w: %v", ErrDeliver, err)
	}
	uc.dedup.record(key)

	uc.l.Infof(ctx, "Notified for %s with tags %v", issue.Identifier, matchedTags)
	return ProcessOutput{
		Outcome:         OutcomeNotified,
		IssueIdentifier: issue.Identifier,
		MatchedTags:     matchedTags,
	}, nil
}

func skip(reason string) ProcessOutput {
	return ProcessOutput{Outcome: OutcomeSkipped, Reason: reason}
}
