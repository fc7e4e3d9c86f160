package domain

import (
	"errors"
	"strings"
)

// Song represents a recommended track in the domain layer.
type Song struct {
	ID     string
	Title  string
	Artist string
	// SpotifyURL is a canonical track link filled in by the optional
	// resolver adapter. Empty when resolution is disabled or failed.
	SpotifyURL string
}

// NewSong validates and constructs a Song. The id is assigned by the caller
// at recommendation time; the external service never supplies one.
func NewSong(id, title, artist string) (Song, error) {
	title = strings.TrimSpace(title)
	artist = strings.TrimSpace(artist)
	if id == "" || title == "" || artist == "" {
		return Song{}, errors.New("domain: invalid song")
	}
	return Song{ID: id, Title: title, Artist: artist}, nil
}

// SameIdentity reports whether two songs are the same track for queue and
// history purposes. Identity is the (title, artist) pair, case-sensitive as
// received, never the id.
func (s Song) SameIdentity(other Song) bool {
	return s.Title == other.Title && s.Artist == other.Artist
}
