package domain

import "time"

// Status is the approval state of a donation request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusRejected Status = "rejected"
)

// DonationRequest is a supporter's request to donate, waiting for the
// administrator to confirm whether the money actually arrived.
type DonationRequest struct {
	ID       int64
	Nickname string
	Amount   int64
	Status   Status
	// NotificationRef is the external id of the message sent to the
	// administrator, set once after a successful send. Nil when the
	// transport was not configured or the send failed.
	NotificationRef *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewDonationRequest builds a pending request from intake input.
// An empty nickname or non-positive amount is ErrValidation; nothing
// is persisted for invalid input.
func NewDonationRequest(nickname string, amount int64) (*DonationRequest, error) {
	if nickname == "" || amount <= 0 {
		return nil, ErrValidation
	}
	return &DonationRequest{
		Nickname: nickname,
		Amount:   amount,
		Status:   StatusPending,
	}, nil
}
