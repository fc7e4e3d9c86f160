package rest

import (
	"github.com/sonic-labs/sonic-backend/internal/core/domain"
	"github.com/sonic-labs/sonic-backend/internal/core/services"
)

// songDTO is a song card as the client renders it: identity plus one open
// link per supported platform.
type songDTO struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Artist     string            `json:"artist"`
	SpotifyURL string            `json:"spotifyUrl,omitempty"`
	Links      map[string]string `json:"links"`
}

type messageDTO struct {
	ID     int64     `json:"id"`
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	Kind   string    `json:"kind"`
	Songs  []songDTO `json:"songs,omitempty"`
}

type sessionDTO struct {
	ID                    string   `json:"id"`
	CurrentMood           string   `json:"currentMood"`
	SelectedLanguages     []string `json:"selectedLanguages"`
	LanguageSelectionDone bool     `json:"languageSelectionDone"`
	IsInitialSetup        bool     `json:"isInitialSetup"`
	Loading               bool     `json:"loading"`
	QueueLength           int      `json:"queueLength"`
	HistoryLength         int      `json:"historyLength"`
}

type historyEntryDTO struct {
	Song      songDTO `json:"song"`
	Mood      string  `json:"mood"`
	Timestamp int64   `json:"timestamp"`
}

type sendResultDTO struct {
	Accepted bool         `json:"accepted"`
	Pending  bool         `json:"pending"`
	Messages []messageDTO `json:"messages"`
}

func toSongDTO(s domain.Song) songDTO {
	links := make(map[string]string, len(domain.Platforms))
	for platform, link := range domain.PlatformLinks(s.Title, s.Artist) {
		links[string(platform)] = link
	}
	return songDTO{
		ID:         s.ID,
		Title:      s.Title,
		Artist:     s.Artist,
		SpotifyURL: s.SpotifyURL,
		Links:      links,
	}
}

func toSongDTOs(songs []domain.Song) []songDTO {
	if len(songs) == 0 {
		return nil
	}
	out := make([]songDTO, len(songs))
	for i, s := range songs {
		out[i] = toSongDTO(s)
	}
	return out
}

func toMessageDTO(m domain.Message) messageDTO {
	return messageDTO{
		ID:     m.ID,
		Sender: string(m.Sender),
		Text:   m.Text,
		Kind:   string(m.Kind),
		Songs:  toSongDTOs(m.Songs),
	}
}

func toMessageDTOs(msgs []domain.Message) []messageDTO {
	out := make([]messageDTO, len(msgs))
	for i, m := range msgs {
		out[i] = toMessageDTO(m)
	}
	return out
}

func toSessionDTO(s services.SessionSnapshot) sessionDTO {
	return sessionDTO{
		ID:                    s.ID,
		CurrentMood:           s.CurrentMood,
		SelectedLanguages:     s.SelectedLanguages,
		LanguageSelectionDone: s.LanguageSelectionDone,
		IsInitialSetup:        s.IsInitialSetup,
		Loading:               s.Loading,
		QueueLength:           s.QueueLength,
		HistoryLength:         s.HistoryLength,
	}
}

func toSendResultDTO(r services.SendResult) sendResultDTO {
	return sendResultDTO{
		Accepted: r.Accepted,
		Pending:  r.Pending,
		Messages: toMessageDTOs(r.Messages),
	}
}

func toHistoryDTOs(entries []domain.HistoryEntry) []historyEntryDTO {
	out := make([]historyEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = historyEntryDTO{Song: toSongDTO(e.Song), Mood: e.Mood, Timestamp: e.Timestamp}
	}
	return out
}
