package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sonic-labs/sonic-backend/internal/core/domain"
	"github.com/sonic-labs/sonic-backend/internal/core/ports"
	"github.com/sonic-labs/sonic-backend/internal/core/services"
	"github.com/sonic-labs/sonic-backend/internal/worker"
)

// --- Mocks ---

// The handler depends on the concrete ChatService, so these tests run a
// REAL service with MOCK adapters behind it.

type mockRecommender struct {
	rec ports.Recommendation
	err error
}

func (m *mockRecommender) GetRecommendations(ctx context.Context, userInput string, languages []string) (ports.Recommendation, error) {
	if m.err != nil {
		return ports.Recommendation{}, m.err
	}
	return m.rec, nil
}

type mockSettings struct {
	settings domain.Settings
	saveErr  error
}

func (m *mockSettings) Load(ctx context.Context) (domain.Settings, error) {
	return m.settings, nil
}

func (m *mockSettings) Save(ctx context.Context, s domain.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings = s
	return nil
}

func happyRecommendation() ports.Recommendation {
	return ports.Recommendation{
		Mood:         "happy",
		ResponseText: "Here are some upbeat tracks!",
		Songs: []ports.SongSeed{
			{Title: "Happy", Artist: "Pharrell Williams"},
			{Title: "Walking on Sunshine", Artist: "Katrina and the Waves"},
		},
	}
}

func newTestHandler(t *testing.T, rec *mockRecommender) (*Handler, *mockSettings) {
	t.Helper()

	scheduler := worker.NewScheduler()
	t.Cleanup(scheduler.Stop)

	svc := services.NewChatService(rec, nil, scheduler, zap.NewNop(), 10*time.Millisecond)
	settings := &mockSettings{settings: domain.DefaultSettings()}
	return NewHandler(svc, settings, zap.NewNop()), settings
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func createReadySession(t *testing.T, h *Handler) string {
	t.Helper()

	rr := doJSON(t, h, http.MethodPost, "/sessions", nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create session: status %d", rr.Code)
	}

	var created struct {
		Session sessionDTO `json:"session"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	rr = doJSON(t, h, http.MethodPost, "/sessions/"+created.Session.ID+"/languages",
		confirmLanguagesRequest{Languages: []string{"Bollywood - Hindi"}})
	if rr.Code != http.StatusOK {
		t.Fatalf("confirm languages: status %d", rr.Code)
	}

	return created.Session.ID
}

func TestHealthCheck(t *testing.T) {
	h, _ := newTestHandler(t, &mockRecommender{rec: happyRecommendation()})

	rr := doJSON(t, h, http.MethodGet, "/health", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestCreateSessionIncludesWelcome(t *testing.T) {
	h, _ := newTestHandler(t, &mockRecommender{rec: happyRecommendation()})

	rr := doJSON(t, h, http.MethodPost, "/sessions", nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusCreated)
	}

	var created struct {
		Session  sessionDTO   `json:"session"`
		Messages []messageDTO `json:"messages"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if created.Session.ID == "" {
		t.Error("expected a session id")
	}
	if created.Session.CurrentMood != "neutral" {
		t.Errorf("mood = %q, want neutral", created.Session.CurrentMood)
	}
	if len(created.Messages) != 2 {
		t.Fatalf("welcome messages = %d, want 2", len(created.Messages))
	}
	if created.Messages[1].Kind != string(domain.KindLanguageSelection) {
		t.Errorf("second message kind = %q, want language-selection", created.Messages[1].Kind)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	h, _ := newTestHandler(t, &mockRecommender{rec: happyRecommendation()})

	rr := doJSON(t, h, http.MethodGet, "/sessions/nope", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestSendMessageRecommendationFlow(t *testing.T) {
	h, _ := newTestHandler(t, &mockRecommender{rec: happyRecommendation()})
	id := createReadySession(t, h)

	rr := doJSON(t, h, http.MethodPost, "/sessions/"+id+"/messages", sendMessageRequest{Text: "I feel great today"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	var result sendResultDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Accepted {
		t.Fatal("expected accepted")
	}

	last := result.Messages[len(result.Messages)-1]
	if last.Sender != string(domain.SenderAssistant) {
		t.Fatalf("last sender = %q, want assistant", last.Sender)
	}
	if len(last.Songs) != 2 {
		t.Fatalf("songs = %d, want 2", len(last.Songs))
	}
	if len(last.Songs[0].Links) != len(domain.Platforms) {
		t.Errorf("platform links = %d, want %d", len(last.Songs[0].Links), len(domain.Platforms))
	}

	rr = doJSON(t, h, http.MethodGet, "/sessions/"+id, nil)
	var snap sessionDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.CurrentMood != "happy" {
		t.Errorf("mood = %q, want happy", snap.CurrentMood)
	}
	if snap.HistoryLength != 2 {
		t.Errorf("history = %d, want 2", snap.HistoryLength)
	}
}

func TestSendMessageValidation(t *testing.T) {
	h, _ := newTestHandler(t, &mockRecommender{rec: happyRecommendation()})
	id := createReadySession(t, h)

	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
	}{
		{
			name:        "missing content type",
			contentType: "",
			body:        `{"text":"hello"}`,
			wantStatus:  http.StatusUnsupportedMediaType,
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        `{"text":`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "blank text",
			contentType: "application/json",
			body:        `{"text":"   "}`,
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/messages", bytes.NewBufferString(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status: got %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}

func TestQueueLifecycle(t *testing.T) {
	h, _ := newTestHandler(t, &mockRecommender{rec: happyRecommendation()})
	id := createReadySession(t, h)

	rr := doJSON(t, h, http.MethodPost, "/sessions/"+id+"/messages", sendMessageRequest{Text: "upbeat please"})
	var result sendResultDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	songs := result.Messages[len(result.Messages)-1].Songs

	// Enqueue both, second enqueue of the first is a no-op.
	for _, s := range songs {
		rr = doJSON(t, h, http.MethodPost, "/sessions/"+id+"/queue", addToQueueRequest{SongID: s.ID})
		if rr.Code != http.StatusOK {
			t.Fatalf("enqueue: status %d", rr.Code)
		}
	}
	rr = doJSON(t, h, http.MethodPost, "/sessions/"+id+"/queue", addToQueueRequest{SongID: songs[0].ID})
	var added map[string]bool
	if err := json.Unmarshal(rr.Body.Bytes(), &added); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if added["added"] {
		t.Error("duplicate enqueue should report added=false")
	}

	rr = doJSON(t, h, http.MethodGet, "/sessions/"+id+"/queue", nil)
	var queued []songDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &queued); err != nil {
		t.Fatalf("decode queue: %v", err)
	}
	if len(queued) != 2 {
		t.Fatalf("queue length = %d, want 2", len(queued))
	}

	// Reverse order.
	rr = doJSON(t, h, http.MethodPost, "/sessions/"+id+"/queue/reorder",
		reorderQueueRequest{SongIDs: []string{queued[1].ID, queued[0].ID}})
	if rr.Code != http.StatusNoContent {
		t.Fatalf("reorder: status %d", rr.Code)
	}

	// Dropping a song is not a valid reorder.
	rr = doJSON(t, h, http.MethodPost, "/sessions/"+id+"/queue/reorder",
		reorderQueueRequest{SongIDs: []string{queued[0].ID}})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("partial reorder: status %d, want %d", rr.Code, http.StatusBadRequest)
	}

	rr = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/sessions/%s/queue/%s", id, queued[0].ID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("dequeue: status %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodDelete, "/sessions/"+id+"/queue", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("clear: status %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodGet, "/sessions/"+id+"/queue", nil)
	if err := json.Unmarshal(rr.Body.Bytes(), &queued); err != nil {
		t.Fatalf("decode queue: %v", err)
	}
	if len(queued) != 0 {
		t.Fatalf("queue length after clear = %d, want 0", len(queued))
	}
}

func TestHistoryEndpoint(t *testing.T) {
	h, _ := newTestHandler(t, &mockRecommender{rec: happyRecommendation()})
	id := createReadySession(t, h)

	doJSON(t, h, http.MethodPost, "/sessions/"+id+"/messages", sendMessageRequest{Text: "upbeat please"})

	rr := doJSON(t, h, http.MethodGet, "/sessions/"+id+"/history", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}

	var entries []historyEntryDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Mood != "happy" {
			t.Errorf("mood = %q, want happy", e.Mood)
		}
	}
	if entries[1].Timestamp <= entries[0].Timestamp {
		t.Error("timestamps must be strictly increasing")
	}
}

func TestResetSession(t *testing.T) {
	h, _ := newTestHandler(t, &mockRecommender{rec: happyRecommendation()})
	id := createReadySession(t, h)

	doJSON(t, h, http.MethodPost, "/sessions/"+id+"/messages", sendMessageRequest{Text: "upbeat please"})

	rr := doJSON(t, h, http.MethodPost, "/sessions/"+id+"/reset", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}

	var snap sessionDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.CurrentMood != "neutral" || snap.LanguageSelectionDone || snap.HistoryLength != 0 {
		t.Errorf("snapshot after reset = %+v", snap)
	}

	rr = doJSON(t, h, http.MethodGet, "/sessions/"+id+"/messages", nil)
	var messages []messageDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &messages); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("messages after reset = %d, want 2", len(messages))
	}
}

func TestCatalogEndpoints(t *testing.T) {
	h, _ := newTestHandler(t, &mockRecommender{rec: happyRecommendation()})

	rr := doJSON(t, h, http.MethodGet, "/moods/quick", nil)
	var moods []string
	if err := json.Unmarshal(rr.Body.Bytes(), &moods); err != nil {
		t.Fatalf("decode moods: %v", err)
	}
	if len(moods) != 5 {
		t.Errorf("quick moods = %d, want 5", len(moods))
	}

	rr = doJSON(t, h, http.MethodGet, "/moods/themes", nil)
	var themes map[string]domain.MoodTheme
	if err := json.Unmarshal(rr.Body.Bytes(), &themes); err != nil {
		t.Fatalf("decode themes: %v", err)
	}
	if _, ok := themes["neutral"]; !ok {
		t.Error("themes must include neutral")
	}

	rr = doJSON(t, h, http.MethodGet, "/languages", nil)
	var languages []string
	if err := json.Unmarshal(rr.Body.Bytes(), &languages); err != nil {
		t.Fatalf("decode languages: %v", err)
	}
	if len(languages) == 0 {
		t.Error("expected language options")
	}
}

func TestGetLinks(t *testing.T) {
	h, _ := newTestHandler(t, &mockRecommender{rec: happyRecommendation()})

	rr := doJSON(t, h, http.MethodGet, "/links?title=Happy&artist=Pharrell+Williams", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}

	var links map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &links); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(links) != len(domain.Platforms) {
		t.Fatalf("links = %d, want %d", len(links), len(domain.Platforms))
	}

	rr = doJSON(t, h, http.MethodGet, "/links?title=Happy", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("missing artist: status %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	h, settings := newTestHandler(t, &mockRecommender{rec: happyRecommendation()})

	rr := doJSON(t, h, http.MethodGet, "/settings", nil)
	var got settingsDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Theme != string(domain.ThemeLight) {
		t.Errorf("theme = %q, want light", got.Theme)
	}

	rr = doJSON(t, h, http.MethodPut, "/settings", settingsDTO{Theme: "dark", OnboardingComplete: true})
	if rr.Code != http.StatusOK {
		t.Fatalf("put: status %d", rr.Code)
	}
	if settings.settings.Theme != domain.ThemeDark || !settings.settings.OnboardingComplete {
		t.Errorf("saved settings = %+v", settings.settings)
	}

	rr = doJSON(t, h, http.MethodPut, "/settings", settingsDTO{Theme: "sepia"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("invalid theme: status %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestDiscoverEndpoint(t *testing.T) {
	h, _ := newTestHandler(t, &mockRecommender{rec: happyRecommendation()})
	id := createReadySession(t, h)

	rr := doJSON(t, h, http.MethodPost, "/sessions/"+id+"/messages", sendMessageRequest{Text: "upbeat please"})
	var result sendResultDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	withSongs := result.Messages[len(result.Messages)-1]

	rr = doJSON(t, h, http.MethodPost, "/sessions/"+id+"/discover", discoverRequest{MessageID: withSongs.ID})
	if rr.Code != http.StatusOK {
		t.Fatalf("discover: status %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodPost, "/sessions/"+id+"/discover", discoverRequest{MessageID: 99999})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("discover unknown message: status %d, want %d", rr.Code, http.StatusNotFound)
	}
}
