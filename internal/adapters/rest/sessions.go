package rest

import (
	"encoding/json"
	"net/http"
)

// CreateSession handles POST /sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.CreateSession()

	messages, err := h.svc.Messages(snap.ID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	w.Header().Set("Location", "/sessions/"+snap.ID)
	writeJSON(w, http.StatusCreated, struct {
		Session  sessionDTO   `json:"session"`
		Messages []messageDTO `json:"messages"`
	}{toSessionDTO(snap), toMessageDTOs(messages)})
}

// GetSession handles GET /sessions/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Session(r.PathValue("id"))
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionDTO(snap))
}

// ResetSession handles POST /sessions/{id}/reset
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Reset(r.PathValue("id"))
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionDTO(snap))
}

type confirmLanguagesRequest struct {
	Languages []string `json:"languages"`
}

// ConfirmLanguages handles POST /sessions/{id}/languages
func (h *Handler) ConfirmLanguages(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req confirmLanguagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.ConfirmLanguages(r.PathValue("id"), req.Languages)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSendResultDTO(result))
}

// RequestLanguageChange handles POST /sessions/{id}/languages/change
func (h *Handler) RequestLanguageChange(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.RequestLanguageChange(r.PathValue("id"))
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSendResultDTO(result))
}
