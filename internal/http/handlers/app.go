package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"donategate/internal/domain"
)

// App aggregates the dependencies shared by HTTP handlers. Notifier may be
// nil when the Telegram transport is not configured; every handler treats
// notification work as best-effort.
type App struct {
	Repo     domain.DonationRequestRepository
	Notifier domain.DecisionNotifier
	Log      zerolog.Logger
}

func NewApp(repo domain.DonationRequestRepository, notifier domain.DecisionNotifier, log zerolog.Logger) *App {
	return &App{Repo: repo, Notifier: notifier, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}

// MethodNotAllowed is wired as the router's fallback for unsupported methods.
func (a *App) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	a.error(w, http.StatusMethodNotAllowed, "Method not allowed")
}
