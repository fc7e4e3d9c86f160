// Package gemini provides the adapter for the remote mood-inference service.
// It sends user text and language preferences as JSON and parses the
// structured recommendation response, validating it against the expected
// shape before anything reaches the domain model.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sonic-labs/sonic-backend/internal/core/ports"
)

const (
	defaultBaseURL = "http://localhost:8787"
	defaultTimeout = 30 * time.Second

	recommendationsPath = "/recommendations"
)

// Client is an HTTP client for the mood-inference service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// compile-time interface assertion
var _ ports.Recommender = (*Client)(nil)

type recommendationRequest struct {
	UserInput string   `json:"userInput"`
	Languages []string `json:"languages"`
}

type songPayload struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

type recommendationResponse struct {
	Mood         string        `json:"mood"`
	ResponseText string        `json:"responseText"`
	Songs        []songPayload `json:"songs"`
	Error        string        `json:"error,omitempty"`
}

// NewClient constructs a Client. An empty baseURL falls back to the local
// development default; apiKey may be empty for unauthenticated deployments.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetRecommendations performs one recommendation exchange. Any transport
// failure, non-2xx status, or malformed body is reported as the matching
// error kind; there are no retries.
func (c *Client) GetRecommendations(ctx context.Context, userInput string, languages []string) (ports.Recommendation, error) {
	if languages == nil {
		languages = []string{}
	}
	payload := recommendationRequest{
		UserInput: userInput,
		Languages: languages,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ports.Recommendation{}, fmt.Errorf("gemini: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+recommendationsPath, bytes.NewReader(body))
	if err != nil {
		return ports.Recommendation{}, fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.Recommendation{}, fmt.Errorf("gemini: request failed: %w: %v", ports.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ports.Recommendation{}, fmt.Errorf("gemini: unexpected status %d: %w", resp.StatusCode, ports.ErrService)
	}

	var parsed recommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return ports.Recommendation{}, fmt.Errorf("gemini: decode response: %w", ports.ErrSchema)
	}
	if parsed.Error != "" {
		return ports.Recommendation{}, fmt.Errorf("gemini: %s: %w", parsed.Error, ports.ErrService)
	}

	return validate(parsed)
}

// validate checks the decoded body against the response contract. Mood and
// songs are validated independently: an empty song list is legal with any
// mood, and a mood is legal with or without songs.
func validate(resp recommendationResponse) (ports.Recommendation, error) {
	mood := strings.TrimSpace(resp.Mood)
	if mood == "" {
		return ports.Recommendation{}, fmt.Errorf("gemini: missing mood: %w", ports.ErrSchema)
	}
	if strings.ContainsAny(mood, " \t\n") {
		return ports.Recommendation{}, fmt.Errorf("gemini: mood %q is not a single word: %w", mood, ports.ErrSchema)
	}
	if strings.TrimSpace(resp.ResponseText) == "" {
		return ports.Recommendation{}, fmt.Errorf("gemini: missing responseText: %w", ports.ErrSchema)
	}

	rec := ports.Recommendation{
		Mood:         strings.ToLower(mood),
		ResponseText: resp.ResponseText,
		Songs:        make([]ports.SongSeed, 0, len(resp.Songs)),
	}
	for i, s := range resp.Songs {
		title := strings.TrimSpace(s.Title)
		artist := strings.TrimSpace(s.Artist)
		if title == "" || artist == "" {
			return ports.Recommendation{}, fmt.Errorf("gemini: song %d missing title or artist: %w", i, ports.ErrSchema)
		}
		rec.Songs = append(rec.Songs, ports.SongSeed{Title: title, Artist: artist})
	}
	return rec, nil
}
