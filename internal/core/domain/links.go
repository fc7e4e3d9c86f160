package domain

import "net/url"

// Platform identifies an external playback platform.
type Platform string

const (
	PlatformYouTube      Platform = "youtube"
	PlatformYouTubeMusic Platform = "youtubemusic"
	PlatformSpotify      Platform = "spotify"
	PlatformGaana        Platform = "gaana"
	PlatformJioSaavn     Platform = "jiosaavn"
)

// Platforms lists the supported playback platforms in display order.
var Platforms = []Platform{
	PlatformYouTube,
	PlatformYouTubeMusic,
	PlatformSpotify,
	PlatformGaana,
	PlatformJioSaavn,
}

// PlatformURL builds a search deep link for a song on the given platform.
// Unknown platforms fall back to the YouTube search URL.
func PlatformURL(title, artist string, platform Platform) string {
	query := url.QueryEscape(title + " " + artist)
	switch platform {
	case PlatformYouTube:
		return "https://www.youtube.com/results?search_query=" + query
	case PlatformYouTubeMusic:
		return "https://music.youtube.com/search?q=" + query
	case PlatformSpotify:
		return "https://open.spotify.com/search/" + query
	case PlatformGaana:
		return "https://gaana.com/search/" + query
	case PlatformJioSaavn:
		return "https://www.jiosaavn.com/search/" + query
	default:
		return "https://www.youtube.com/results?search_query=" + query
	}
}

// PlatformLinks returns the search link for every supported platform.
func PlatformLinks(title, artist string) map[Platform]string {
	links := make(map[Platform]string, len(Platforms))
	for _, p := range Platforms {
		links[p] = PlatformURL(title, artist, p)
	}
	return links
}
