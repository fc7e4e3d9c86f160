package ports

import (
	"context"
	"errors"

	"github.com/sonic-labs/sonic-backend/internal/core/domain"
)

// Error kinds for a failed recommendation exchange. They matter for
// logging and diagnostics only; the service layer collapses all three into
// one user-facing apologetic message.
var (
	// ErrNetwork is a transport-level failure.
	ErrNetwork = errors.New("recommender: network failure")
	// ErrService is a non-2xx response from the recommendation service.
	ErrService = errors.New("recommender: service error")
	// ErrSchema means the response body did not match the expected shape.
	ErrSchema = errors.New("recommender: schema validation failure")
)

// SongSeed is a title/artist pair as returned by the remote service.
// Seeds carry no id; the service layer assigns fresh ids before seeds
// enter the message, queue, or history model.
type SongSeed struct {
	Title  string
	Artist string
}

// Recommendation is a validated response from the mood-inference service.
// Mood and Songs are independently meaningful: an empty song list usually
// accompanies mood "neutral", but neither field is derived from the other.
type Recommendation struct {
	Mood         string
	ResponseText string
	Songs        []SongSeed
}

// Recommender is the outbound port to the external mood-inference service.
type Recommender interface {
	GetRecommendations(ctx context.Context, userInput string, languages []string) (Recommendation, error)
}

// SettingsRepository persists presentation preferences across restarts.
type SettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}
