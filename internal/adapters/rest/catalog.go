package rest

import (
	"net/http"

	"github.com/sonic-labs/sonic-backend/internal/core/domain"
)

// GetLanguages handles GET /languages
func (h *Handler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.LanguageOptions)
}

// GetQuickMoods handles GET /moods/quick
func (h *Handler) GetQuickMoods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.QuickMoods)
}

// GetMoodThemes handles GET /moods/themes
func (h *Handler) GetMoodThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.MoodThemes)
}

// GetLinks handles GET /links?title=&artist=
// It returns the per-platform search links for any song, whether or not it
// was ever recommended.
func (h *Handler) GetLinks(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	artist := r.URL.Query().Get("artist")
	if title == "" || artist == "" {
		writeError(w, http.StatusBadRequest, "title and artist are required")
		return
	}

	links := make(map[string]string, len(domain.Platforms))
	for platform, link := range domain.PlatformLinks(title, artist) {
		links[string(platform)] = link
	}
	writeJSON(w, http.StatusOK, links)
}
