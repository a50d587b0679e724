package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"

	"donategate/internal/domain"
)

// Notifier delivers decision prompts to the administrator chat through the
// Telegram Bot API. It implements domain.DecisionNotifier.
//
// The Bot API client has no context plumbing; calls are bounded by the
// injected HTTP client timeout instead.
type Notifier struct {
	bot   *tele.Bot
	admin tele.ChatID
	log   zerolog.Logger
}

// NewNotifier builds a notifier for the given bot credential and fixed
// administrator destination. Construction verifies the credential against
// the Bot API, so a bad token fails here rather than on first send.
func NewNotifier(token string, adminChatID int64, timeout time.Duration, log zerolog.Logger) (*Notifier, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Client: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Notifier{bot: bot, admin: tele.ChatID(adminChatID), log: log}, nil
}

// RequestDecision sends the new-request prompt with the paid / not-paid
// buttons and returns the sent message id.
func (n *Notifier) RequestDecision(_ context.Context, req *domain.DonationRequest) (string, error) {
	markup := &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{{
		{Text: "✅ Оплатил", Data: DecisionToken(ActionPaid, req.ID)},
		{Text: "❌ Не оплатил", Data: DecisionToken(ActionUnpaid, req.ID)},
	}}}
	msg, err := n.bot.Send(n.admin, RenderRequest(req), markup)
	if err != nil {
		return "", fmt.Errorf("send notification: %w", err)
	}
	n.log.Debug().Int("message_id", msg.ID).Int64("request_id", req.ID).Msg("decision prompt sent")
	return strconv.Itoa(msg.ID), nil
}

// PublishDecision edits the original prompt to show the decision.
func (n *Notifier) PublishDecision(_ context.Context, ref domain.MessageRef, req *domain.DonationRequest) error {
	target := tele.StoredMessage{
		MessageID: strconv.Itoa(ref.MessageID),
		ChatID:    ref.ChatID,
	}
	if _, err := n.bot.Edit(target, RenderDecision(req)); err != nil {
		return fmt.Errorf("edit notification: %w", err)
	}
	return nil
}

// ConfirmDecision answers the callback query so the admin's client stops
// showing the progress spinner.
func (n *Notifier) ConfirmDecision(_ context.Context, callbackID string, status domain.Status) error {
	cb := &tele.Callback{ID: callbackID}
	if err := n.bot.Respond(cb, &tele.CallbackResponse{Text: ConfirmationText(status)}); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}

var _ domain.DecisionNotifier = (*Notifier)(nil)
