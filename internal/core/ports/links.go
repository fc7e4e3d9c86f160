package ports

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoConfidentMatch indicates catalog search results did not meet the
// confidence threshold for a canonical link.
var ErrNoConfidentMatch = errors.New("no confident match")

// NoConfidentMatchError provides context for a failed track resolution.
type NoConfidentMatchError struct {
	Title  string
	Artist string
}

func (e NoConfidentMatchError) Error() string {
	if e.Title == "" && e.Artist == "" {
		return ErrNoConfidentMatch.Error()
	}
	return fmt.Sprintf("no confident match found for title %q artist %q", e.Title, e.Artist)
}

func (e NoConfidentMatchError) Is(target error) bool {
	return target == ErrNoConfidentMatch
}

// LinkResolver upgrades a song's generated search link to a canonical track
// URL on a platform's catalog. Resolution is best-effort: failures degrade
// to the generated search link and must never fail a recommendation.
type LinkResolver interface {
	ResolveTrackURL(ctx context.Context, title, artist string) (string, error)
}
