package rest

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ListMessages handles GET /sessions/{id}/messages
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.Messages(r.PathValue("id"))
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageDTOs(messages))
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

// SendMessage handles POST /sessions/{id}/messages
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	result, err := h.svc.SendMessage(r.Context(), r.PathValue("id"), req.Text)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSendResultDTO(result))
}

type discoverRequest struct {
	MessageID int64 `json:"messageId"`
}

// DiscoverMore handles POST /sessions/{id}/discover
func (h *Handler) DiscoverMore(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req discoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.DiscoverMore(r.Context(), r.PathValue("id"), req.MessageID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSendResultDTO(result))
}
