package domain

import "context"

// MessageRef addresses a notification message on the external chat surface.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// DecisionNotifier is the outbound messaging port. All sends are
// best-effort and bounded in time; callers log failures and carry on.
type DecisionNotifier interface {
	// RequestDecision notifies the administrator about a new request and
	// returns the external id of the sent message.
	RequestDecision(ctx context.Context, req *DonationRequest) (string, error)
	// PublishDecision rewrites the original notification to show the
	// decided status. The target comes from the callback's own message
	// identifiers, not from the stored notification ref.
	PublishDecision(ctx context.Context, ref MessageRef, req *DonationRequest) error
	// ConfirmDecision answers the callback query with a short
	// confirmation shown to the administrator.
	ConfirmDecision(ctx context.Context, callbackID string, status Status) error
}
