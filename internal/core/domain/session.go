package domain

import (
	"strings"
	"time"
)

// DefaultMood is the session mood before any recommendation succeeds.
const DefaultMood = "neutral"

// DefaultLanguages is substituted when the user confirms an empty selection.
// An empty selection means "use the default catalog", not "no preference".
var DefaultLanguages = []string{"Bollywood - Hindi", "Pollywood - Punjabi"}

const (
	welcomeText        = "🎵 Welcome to Sonic.AI! First, let's personalize your experience."
	languagePromptText = "Please select your preferred music languages or industries from the list below."

	// ChangeLanguagePrompt reopens the picker, both for the settings action
	// and for the "change language" chat intent.
	ChangeLanguagePrompt = "Of course! Please select your new preferred music languages or industries below."

	followUpInitial = "Awesome choice! Now, how are you feeling today?"
	followUpUpdate  = "Great, your preferences have been updated! So, what's the mood now?"
)

// Session holds all conversation-wide state. It is not safe for concurrent
// use; the service layer serializes access per session.
type Session struct {
	ID                    string
	CurrentMood           string
	SelectedLanguages     []string
	LanguageSelectionDone bool
	IsInitialSetup        bool
	Queue                 Queue
	History               History

	messages []Message
	nextID   int64
}

// NewSession creates a fresh session in the awaiting-language-selection state
// with the two-message welcome sequence already enqueued.
func NewSession(id string) *Session {
	s := &Session{ID: id}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.CurrentMood = DefaultMood
	s.SelectedLanguages = nil
	s.LanguageSelectionDone = false
	s.IsInitialSetup = true
	s.Queue.Clear()
	s.History.Clear()
	s.messages = nil
	s.nextID = time.Now().UnixMilli()
	s.Append(SenderAssistant, welcomeText, KindPlain, nil)
	s.Append(SenderAssistant, languagePromptText, KindLanguageSelection, nil)
}

// Reset returns the session to its initial state exactly as at construction.
// The caller is responsible for cancelling any pending deferred replies first
// so nothing appends to the cleared log.
func (s *Session) Reset() {
	s.reset()
}

// Append adds a message to the log and returns it. IDs are monotonically
// increasing within the session; seeding from wall-clock time keeps them
// unique across the welcome sequence and any later resets.
func (s *Session) Append(sender Sender, text string, kind MessageKind, songs []Song) Message {
	id := s.nextID
	s.nextID++
	msg := Message{ID: id, Sender: sender, Text: text, Kind: kind, Songs: songs}
	s.messages = append(s.messages, msg)
	return msg
}

// Messages returns a copy of the conversation log in append order.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// FindMessage returns the message with the given id.
func (s *Session) FindMessage(id int64) (Message, bool) {
	for _, m := range s.messages {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}

// FindSong looks up a recommended song by id across the conversation log.
func (s *Session) FindSong(id string) (Song, bool) {
	for _, m := range s.messages {
		for _, song := range m.Songs {
			if song.ID == id {
				return song, true
			}
		}
	}
	return Song{}, false
}

// ConfirmLanguages records the user's language selection, opens the free-text
// gate, and appends the summary and follow-up messages. An empty selection
// falls back to DefaultLanguages.
func (s *Session) ConfirmLanguages(selected []string) {
	final := selected
	if len(final) == 0 {
		final = DefaultLanguages
	}
	s.SelectedLanguages = append([]string(nil), final...)
	s.LanguageSelectionDone = true

	labels := make([]string, len(final))
	for i, l := range final {
		labels[i] = languageDisplayName(l)
	}
	s.Append(SenderUser, "Selected: "+strings.Join(labels, ", ")+".", KindPlain, nil)

	followUp := followUpUpdate
	if s.IsInitialSetup {
		followUp = followUpInitial
	}
	s.Append(SenderAssistant, followUp, KindPlain, nil)

	if s.IsInitialSetup {
		s.IsInitialSetup = false
	}
}

// RequestLanguageChange reopens language selection. It is a strict no-op
// while the session is already awaiting a selection: no message is appended
// and no state changes.
func (s *Session) RequestLanguageChange() bool {
	if !s.LanguageSelectionDone {
		return false
	}
	s.LanguageSelectionDone = false
	if s.IsInitialSetup {
		s.IsInitialSetup = false
	}
	s.Append(SenderAssistant, ChangeLanguagePrompt, KindLanguageSelection, nil)
	return true
}

// languageDisplayName shortens a catalog label like "Bollywood - Hindi" to
// its language part for the selection summary.
func languageDisplayName(label string) string {
	parts := strings.Split(label, " - ")
	if len(parts) > 1 {
		return parts[1]
	}
	return parts[0]
}
