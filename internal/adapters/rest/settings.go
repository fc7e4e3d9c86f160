package rest

import (
	"encoding/json"
	"net/http"

	"github.com/sonic-labs/sonic-backend/internal/core/domain"
)

type settingsDTO struct {
	Theme              string `json:"theme"`
	OnboardingComplete bool   `json:"onboardingComplete"`
}

// GetSettings handles GET /settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Load(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settingsDTO{
		Theme:              string(settings.Theme),
		OnboardingComplete: settings.OnboardingComplete,
	})
}

// PutSettings handles PUT /settings
func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req settingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	theme := domain.Theme(req.Theme)
	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		writeError(w, http.StatusBadRequest, "theme must be light or dark")
		return
	}

	settings := domain.Settings{Theme: theme, OnboardingComplete: req.OnboardingComplete}
	if err := h.settings.Save(r.Context(), settings); err != nil {
		h.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, req)
}
