package spotify

// spotifyTrack is the subset of the Web API track object we need to
// score a match and build a canonical link.
type spotifyTrack struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	ExternalURLs map[string]string `json:"external_urls"`
}

// searchResponse is the Web API /search response shape for type=track.
type searchResponse struct {
	Tracks struct {
		Items []spotifyTrack `json:"items"`
	} `json:"tracks"`
}
