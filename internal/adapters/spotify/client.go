// Package spotify resolves canonical Spotify track links for recommended
// songs using the Web API client-credentials flow.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/sonic-labs/sonic-backend/internal/core/ports"
)

const (
	defaultBaseURL  = "https://api.spotify.com/v1"
	defaultTokenURL = "https://accounts.spotify.com/api/token"

	searchLimit = 5
)

// Client is an HTTP client for the Spotify Web API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxRetries  int
	baseBackoff time.Duration
}

// compile-time interface assertion
var _ ports.LinkResolver = (*Client)(nil)

// NewClient constructs a resolver that authenticates with the
// client-credentials grant. The returned client refreshes its token
// automatically.
func NewClient(ctx context.Context, clientID string, clientSecret string) *Client {
	creds := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     defaultTokenURL,
	}

	maxRetries, baseBackoff := getRetryConfig()
	return &Client{
		httpClient:  creds.Client(ctx),
		baseURL:     defaultBaseURL,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
	}
}

// ResolveTrackURL searches for the track and returns its canonical
// open.spotify.com link. Returns a NoConfidentMatchError when no search
// result scores high enough.
func (c *Client) ResolveTrackURL(ctx context.Context, title string, artist string) (string, error) {
	track, err := c.searchTrack(ctx, title, artist)
	if err != nil {
		return "", err
	}

	if link, ok := track.ExternalURLs["spotify"]; ok && link != "" {
		return link, nil
	}
	return fmt.Sprintf("https://open.spotify.com/track/%s", track.ID), nil
}

func (c *Client) searchTrack(ctx context.Context, title string, artist string) (spotifyTrack, error) {
	searchURL, err := url.Parse(fmt.Sprintf("%s/search", c.baseURL))
	if err != nil {
		return spotifyTrack{}, fmt.Errorf("spotify resolver: invalid search url: %w", err)
	}

	queryTitle := fallbackIfEmpty(normalizeSearchInput(title), title)
	queryArtist := fallbackIfEmpty(normalizeSearchInput(artist), artist)

	query := searchURL.Query()
	query.Set("q", fmt.Sprintf("track:%s artist:%s", queryTitle, queryArtist))
	query.Set("type", "track")
	query.Set("limit", strconv.Itoa(searchLimit))
	searchURL.RawQuery = query.Encode()

	searchReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return spotifyTrack{}, fmt.Errorf("spotify resolver: failed to create search request: %w", err)
	}

	searchResp, err := c.doRequestWithRetry(searchReq)
	if err != nil {
		return spotifyTrack{}, fmt.Errorf("spotify resolver: search request failed: %w", err)
	}
	defer searchResp.Body.Close()

	if searchResp.StatusCode != http.StatusOK {
		return spotifyTrack{}, fmt.Errorf("spotify resolver: search status %d", searchResp.StatusCode)
	}

	var searchBody searchResponse
	if err := json.NewDecoder(searchResp.Body).Decode(&searchBody); err != nil {
		return spotifyTrack{}, fmt.Errorf("spotify resolver: search decode error: %w", err)
	}

	if len(searchBody.Tracks.Items) == 0 {
		return spotifyTrack{}, fmt.Errorf("spotify resolver: %w", &ports.NoConfidentMatchError{Title: title, Artist: artist})
	}

	bestScore := 0.0
	bestIndex := -1
	for i, candidate := range searchBody.Tracks.Items {
		score, ok := trackMatchScore(title, artist, candidate)
		log.Printf("DEBUG spotify resolver: candidate %s - %s (score: %.2f)", joinArtistNames(candidate), candidate.Name, score)
		if ok && score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}

	if bestIndex == -1 {
		return spotifyTrack{}, fmt.Errorf("spotify resolver: %w", &ports.NoConfidentMatchError{Title: title, Artist: artist})
	}

	return searchBody.Tracks.Items[bestIndex], nil
}

func joinArtistNames(track spotifyTrack) string {
	parts := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		parts = append(parts, artist.Name)
	}
	return strings.Join(parts, " ")
}
