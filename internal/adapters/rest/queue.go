package rest

import (
	"encoding/json"
	"net/http"
)

// GetQueue handles GET /sessions/{id}/queue
func (h *Handler) GetQueue(w http.ResponseWriter, r *http.Request) {
	songs, err := h.svc.QueueSongs(r.PathValue("id"))
	if err != nil {
		h.serviceError(w, err)
		return
	}

	out := toSongDTOs(songs)
	if out == nil {
		out = []songDTO{}
	}
	writeJSON(w, http.StatusOK, out)
}

type addToQueueRequest struct {
	SongID string `json:"songId"`
}

// AddToQueue handles POST /sessions/{id}/queue
func (h *Handler) AddToQueue(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req addToQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SongID == "" {
		writeError(w, http.StatusBadRequest, "songId is required")
		return
	}

	added, err := h.svc.AddToQueue(r.PathValue("id"), req.SongID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	// Duplicate enqueues are silent no-ops, not errors.
	writeJSON(w, http.StatusOK, map[string]bool{"added": added})
}

// RemoveFromQueue handles DELETE /sessions/{id}/queue/{songId}
func (h *Handler) RemoveFromQueue(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.RemoveFromQueue(r.PathValue("id"), r.PathValue("songId"))
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

type reorderQueueRequest struct {
	SongIDs []string `json:"songIds"`
}

// ReorderQueue handles POST /sessions/{id}/queue/reorder
func (h *Handler) ReorderQueue(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req reorderQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.ReorderQueue(r.PathValue("id"), req.SongIDs); err != nil {
		h.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearQueue handles DELETE /sessions/{id}/queue
func (h *Handler) ClearQueue(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearQueue(r.PathValue("id")); err != nil {
		h.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetHistory handles GET /sessions/{id}/history
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.HistoryEntries(r.PathValue("id"))
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryDTOs(entries))
}
