// Package rest is the driving HTTP adapter. It exposes the conversation,
// queue, catalog and settings surface that the web client consumes.
package rest

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/sonic-labs/sonic-backend/internal/core/ports"
	"github.com/sonic-labs/sonic-backend/internal/core/services"
)

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc      *services.ChatService
	settings ports.SettingsRepository
	log      *zap.Logger
	router   *http.ServeMux // Standard library router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.ChatService, settings ports.SettingsRepository, log *zap.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		settings: settings,
		log:      log,
		router:   http.NewServeMux(),
	}

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
// It acts as a proxy, passing the request to our internal router.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	// Health Check
	h.router.HandleFunc("GET /health", h.HealthCheck)

	// Session lifecycle
	h.router.HandleFunc("POST /sessions", h.CreateSession)
	h.router.HandleFunc("GET /sessions/{id}", h.GetSession)
	h.router.HandleFunc("POST /sessions/{id}/reset", h.ResetSession)

	// Conversation
	h.router.HandleFunc("GET /sessions/{id}/messages", h.ListMessages)
	h.router.HandleFunc("POST /sessions/{id}/messages", h.SendMessage)
	h.router.HandleFunc("POST /sessions/{id}/languages", h.ConfirmLanguages)
	h.router.HandleFunc("POST /sessions/{id}/languages/change", h.RequestLanguageChange)
	h.router.HandleFunc("POST /sessions/{id}/discover", h.DiscoverMore)

	// Queue and history
	h.router.HandleFunc("GET /sessions/{id}/queue", h.GetQueue)
	h.router.HandleFunc("POST /sessions/{id}/queue", h.AddToQueue)
	h.router.HandleFunc("POST /sessions/{id}/queue/reorder", h.ReorderQueue)
	h.router.HandleFunc("DELETE /sessions/{id}/queue/{songId}", h.RemoveFromQueue)
	h.router.HandleFunc("DELETE /sessions/{id}/queue", h.ClearQueue)
	h.router.HandleFunc("GET /sessions/{id}/history", h.GetHistory)

	// Catalog
	h.router.HandleFunc("GET /languages", h.GetLanguages)
	h.router.HandleFunc("GET /moods/quick", h.GetQuickMoods)
	h.router.HandleFunc("GET /moods/themes", h.GetMoodThemes)
	h.router.HandleFunc("GET /links", h.GetLinks)

	// Settings
	h.router.HandleFunc("GET /settings", h.GetSettings)
	h.router.HandleFunc("PUT /settings", h.PutSettings)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok", "message": "Sonic is live 🎶"})
}
