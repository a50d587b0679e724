package domain

import "context"

// DonationRequestRepository handles donation request persistence. The store
// is the only shared state between intake and decision handling; its atomic
// update semantics are the sole consistency mechanism (concurrent decisions
// for the same id resolve last-write-wins).
type DonationRequestRepository interface {
	// Create inserts a pending request and fills in the assigned ID and
	// timestamps.
	Create(ctx context.Context, req *DonationRequest) error
	// SetNotificationRef records the external message id after a
	// successful notification send.
	SetNotificationRef(ctx context.Context, id int64, ref string) error
	// ApplyDecision sets the status and refreshes updated_at, returning
	// the request with nickname and amount loaded for message rendering.
	// ErrNotFound when no request with that id exists.
	ApplyDecision(ctx context.Context, id int64, status Status) (*DonationRequest, error)
	// OverrideStatus writes the given status verbatim. Administrative
	// bypass: no enum check and no existence check.
	OverrideStatus(ctx context.Context, id int64, status string) error
}
