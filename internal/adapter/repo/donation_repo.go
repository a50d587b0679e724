package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"donategate/internal/domain"
	"donategate/internal/infra"
)

// DonationRequestRepositoryPG implements domain.DonationRequestRepository
// using PostgreSQL.
type DonationRequestRepositoryPG struct {
	db infra.SQLExecutor
}

// NewDonationRequestRepository creates a new donation request repo.
func NewDonationRequestRepository(db infra.SQLExecutor) *DonationRequestRepositoryPG {
	return &DonationRequestRepositoryPG{db: db}
}

// Create inserts a pending request and fills in the assigned id and timestamps.
func (r *DonationRequestRepositoryPG) Create(ctx context.Context, req *domain.DonationRequest) error {
	row := r.db.QueryRow(ctx, `
INSERT INTO donation_requests (nickname, amount, status)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at;
`, req.Nickname, req.Amount, req.Status)
	if err := row.Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt); err != nil {
		return fmt.Errorf("insert donation request: %w", err)
	}
	return nil
}

// SetNotificationRef records the admin notification message id.
func (r *DonationRequestRepositoryPG) SetNotificationRef(ctx context.Context, id int64, ref string) error {
	_, err := r.db.Exec(ctx, `
UPDATE donation_requests SET telegram_message_id = $1 WHERE id = $2;
`, ref, id)
	if err != nil {
		return fmt.Errorf("set notification ref: %w", err)
	}
	return nil
}

// ApplyDecision writes the decided status and returns the request with the
// fields needed to re-render the notification. The update and the read are
// one statement so a concurrent decision cannot interleave between them.
func (r *DonationRequestRepositoryPG) ApplyDecision(ctx context.Context, id int64, status domain.Status) (*domain.DonationRequest, error) {
	row := r.db.QueryRow(ctx, `
UPDATE donation_requests
SET status = $1, updated_at = CURRENT_TIMESTAMP
WHERE id = $2
RETURNING nickname, amount;
`, status, id)
	req := &domain.DonationRequest{ID: id, Status: status}
	if err := row.Scan(&req.Nickname, &req.Amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("apply decision: %w", err)
	}
	return req, nil
}

// OverrideStatus writes the status verbatim, matching whatever the caller
// supplied. No existence check: updating zero rows is not an error.
func (r *DonationRequestRepositoryPG) OverrideStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.Exec(ctx, `
UPDATE donation_requests SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2;
`, status, id)
	if err != nil {
		return fmt.Errorf("override status: %w", err)
	}
	return nil
}

var _ domain.DonationRequestRepository = (*DonationRequestRepositoryPG)(nil)
