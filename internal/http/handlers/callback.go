package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	tele "gopkg.in/telebot.v4"

	"donategate/internal/domain"
	"donategate/internal/telegram"
)

// TelegramCallback handles POST /callback, the bot webhook. Telegram
// redelivers updates that do not get a 200 back, so every path through here
// acknowledges; failures are logged, never surfaced.
func (a *App) TelegramCallback(w http.ResponseWriter, r *http.Request) {
	var upd tele.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		a.Log.Warn().Err(err).Msg("undecodable webhook payload")
		a.ack(w)
		return
	}

	// Updates without a callback query (health checks, chat noise) are a
	// no-op by design.
	if upd.Callback == nil {
		a.ack(w)
		return
	}

	a.handleDecision(r.Context(), upd.Callback)
	a.ack(w)
}

func (a *App) ack(w http.ResponseWriter) {
	a.json(w, http.StatusOK, map[string]any{"ok": true})
}

func (a *App) handleDecision(ctx context.Context, cb *tele.Callback) {
	dec, err := telegram.ParseDecisionToken(cb.Data)
	if err != nil {
		a.Log.Warn().Err(err).Msg("ignoring malformed decision token")
		return
	}

	req, err := a.Repo.ApplyDecision(ctx, dec.RequestID, dec.Status())
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// Stale callback: the request is gone, nothing to edit.
		a.Log.Warn().Int64("request_id", dec.RequestID).Msg("decision for unknown request")
		return
	case err != nil:
		a.Log.Error().Err(err).Int64("request_id", dec.RequestID).Msg("apply decision")
		return
	}

	a.Log.Info().
		Int64("request_id", req.ID).
		Str("status", string(req.Status)).
		Msg("decision applied")

	if a.Notifier == nil {
		return
	}
	// The edit targets the message the admin actually clicked, so even a
	// request whose notification ref was never stored gets updated.
	if cb.Message != nil && cb.Message.Chat != nil {
		ref := domain.MessageRef{ChatID: cb.Message.Chat.ID, MessageID: cb.Message.ID}
		if err := a.Notifier.PublishDecision(ctx, ref, req); err != nil {
			a.Log.Error().Err(err).Int64("request_id", req.ID).Msg("edit notification")
		}
	}
	if err := a.Notifier.ConfirmDecision(ctx, cb.ID, req.Status); err != nil {
		a.Log.Error().Err(err).Int64("request_id", req.ID).Msg("answer callback")
	}
}
