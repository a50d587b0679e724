// Package telegram implements the notification protocol between the service
// and the administrator chat: decision tokens carried in inline-button
// callback data, and the rendered message texts.
package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"donategate/internal/domain"
)

const (
	ActionPaid   = "paid"
	ActionUnpaid = "unpaid"
)

// ruPrinter formats amounts with Russian digit grouping for message texts.
var ruPrinter = message.NewPrinter(language.Russian)

// Decision is a parsed administrator choice delivered through a callback query.
type Decision struct {
	Action    string
	RequestID int64
}

// Status maps the action onto a status. Only "paid" confirms payment;
// every other action rejects, mirroring the two-button prompt.
func (d Decision) Status() domain.Status {
	if d.Action == ActionPaid {
		return domain.StatusPaid
	}
	return domain.StatusRejected
}

// DecisionToken encodes an action and a request id as <action>_<id>.
func DecisionToken(action string, requestID int64) string {
	return fmt.Sprintf("%s_%d", action, requestID)
}

// ParseDecisionToken parses callback data of the exact shape <action>_<id>.
// Anything else is domain.ErrProtocol; alternate encodings are not guessed.
func ParseDecisionToken(data string) (Decision, error) {
	parts := strings.Split(data, "_")
	if len(parts) != 2 {
		return Decision{}, fmt.Errorf("%w: %q", domain.ErrProtocol, data)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: %q", domain.ErrProtocol, data)
	}
	return Decision{Action: parts[0], RequestID: id}, nil
}

// FormatAmount renders the amount with locale digit grouping. Request ids
// stay plain so the admin can copy them.
func FormatAmount(amount int64) string {
	return ruPrinter.Sprintf("%d", amount)
}

// RenderRequest is the notification text sent when a new request arrives.
func RenderRequest(req *domain.DonationRequest) string {
	return fmt.Sprintf("🔔 Новая заявка на донат!\n\n👤 Ник: %s\n💰 Сумма: %s донат рублей\n🆔 ID заявки: %d", req.Nickname, FormatAmount(req.Amount), req.ID)
}

// RenderDecision rewrites the notification after the administrator decided.
func RenderDecision(req *domain.DonationRequest) string {
	return fmt.Sprintf("%s\n\n👤 Ник: %s\n💰 Сумма: %s донат рублей\n🆔 ID заявки: %d", StatusLabel(req.Status), req.Nickname, FormatAmount(req.Amount), req.ID)
}

// StatusLabel is the banner line for a decided request.
func StatusLabel(status domain.Status) string {
	if status == domain.StatusPaid {
		return "✅ ОПЛАЧЕНО"
	}
	return "❌ ОТКЛОНЕНО"
}

// ConfirmationText is the short answer shown to the administrator after a
// decision is applied.
func ConfirmationText(status domain.Status) string {
	return "Статус обновлён: " + StatusLabel(status)
}
