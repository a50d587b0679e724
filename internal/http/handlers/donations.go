package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"donategate/internal/domain"
)

type intakeRequest struct {
	Nickname string `json:"nickname"`
	Amount   int64  `json:"amount"`
}

type overrideRequest struct {
	RequestID int64  `json:"request_id"`
	Status    string `json:"status"`
}

// DonationsCreate handles POST /intake: validate, persist as pending, then
// notify the administrator. Notification failure never fails the intake.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var in intakeRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	req, err := domain.NewDonationRequest(in.Nickname, in.Amount)
	if err != nil {
		a.error(w, http.StatusBadRequest, "Nickname and amount are required")
		return
	}

	if err := a.Repo.Create(r.Context(), req); err != nil {
		a.Log.Error().Err(err).Msg("create donation request")
		a.error(w, http.StatusInternalServerError, "failed to create request")
		return
	}

	a.notifyAdmin(r.Context(), req)

	a.json(w, http.StatusCreated, map[string]any{"success": true, "request_id": req.ID})
}

// notifyAdmin sends the decision prompt and records the message id on the
// request. Each step is best-effort; the outcome is logged so it can be
// observed independently of the intake result.
func (a *App) notifyAdmin(ctx context.Context, req *domain.DonationRequest) {
	if a.Notifier == nil {
		a.Log.Warn().Int64("request_id", req.ID).Msg("telegram not configured, notification skipped")
		return
	}
	ref, err := a.Notifier.RequestDecision(ctx, req)
	if err != nil {
		a.Log.Error().Err(err).Int64("request_id", req.ID).Msg("notification send failed")
		return
	}
	if err := a.Repo.SetNotificationRef(ctx, req.ID, ref); err != nil {
		a.Log.Error().Err(err).Int64("request_id", req.ID).Msg("persist notification ref")
		return
	}
	req.NotificationRef = &ref
	a.Log.Info().Int64("request_id", req.ID).Str("notification_ref", ref).Msg("notification sent")
}

// DonationsOverride handles PUT /intake, the administrative bypass. The
// status is written exactly as supplied, against any current state, with no
// check that the row exists. An omitted status means "paid".
func (a *App) DonationsOverride(w http.ResponseWriter, r *http.Request) {
	var in overrideRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if in.Status == "" {
		in.Status = string(domain.StatusPaid)
	}

	if err := a.Repo.OverrideStatus(r.Context(), in.RequestID, in.Status); err != nil {
		a.Log.Error().Err(err).Int64("request_id", in.RequestID).Msg("override status")
		a.error(w, http.StatusInternalServerError, "failed to update request")
		return
	}

	a.json(w, http.StatusOK, map[string]any{"success": true})
}
