package domain

import (
	"strings"
	"testing"
)

func TestNewSession_WelcomeSequence(t *testing.T) {
	s := NewSession("sess-1")

	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 welcome messages, got %d", len(msgs))
	}
	if msgs[0].Sender != SenderAssistant || msgs[0].Kind != KindPlain {
		t.Fatalf("unexpected first welcome message: %+v", msgs[0])
	}
	if msgs[1].Kind != KindLanguageSelection {
		t.Fatalf("expected language-selection prompt, got kind %q", msgs[1].Kind)
	}
	if msgs[1].ID <= msgs[0].ID {
		t.Fatalf("expected monotonically increasing ids, got %d then %d", msgs[0].ID, msgs[1].ID)
	}
	if s.CurrentMood != DefaultMood {
		t.Fatalf("expected mood %q, got %q", DefaultMood, s.CurrentMood)
	}
	if s.LanguageSelectionDone {
		t.Fatal("expected gate closed on fresh session")
	}
	if !s.IsInitialSetup {
		t.Fatal("expected initial setup flag set")
	}
}

func TestSession_ConfirmLanguages(t *testing.T) {
	tests := []struct {
		name          string
		selected      []string
		wantLanguages []string
		wantSummary   string
	}{
		{
			name:          "explicit selection",
			selected:      []string{"Bollywood - Hindi", "Hollywood - English"},
			wantLanguages: []string{"Bollywood - Hindi", "Hollywood - English"},
			wantSummary:   "Selected: Hindi, English.",
		},
		{
			name:          "empty selection falls back to defaults",
			selected:      nil,
			wantLanguages: DefaultLanguages,
			wantSummary:   "Selected: Hindi, Punjabi.",
		},
		{
			name:          "label without separator used whole",
			selected:      []string{"Ghazals"},
			wantLanguages: []string{"Ghazals"},
			wantSummary:   "Selected: Ghazals.",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession("sess-1")
			s.ConfirmLanguages(tc.selected)

			if !s.LanguageSelectionDone {
				t.Fatal("expected gate open after confirmation")
			}
			if s.IsInitialSetup {
				t.Fatal("expected initial setup cleared after first confirmation")
			}
			if len(s.SelectedLanguages) == 0 {
				t.Fatal("selected languages must never be empty after confirmation")
			}
			for i, want := range tc.wantLanguages {
				if s.SelectedLanguages[i] != want {
					t.Fatalf("language %d: expected %q, got %q", i, want, s.SelectedLanguages[i])
				}
			}

			msgs := s.Messages()
			summary := msgs[len(msgs)-2]
			if summary.Sender != SenderUser || summary.Text != tc.wantSummary {
				t.Fatalf("expected user summary %q, got %q from %s", tc.wantSummary, summary.Text, summary.Sender)
			}
			followUp := msgs[len(msgs)-1]
			if followUp.Sender != SenderAssistant || !strings.Contains(followUp.Text, "how are you feeling today") {
				t.Fatalf("expected initial-setup follow-up, got %q", followUp.Text)
			}
		})
	}
}

func TestSession_ConfirmLanguages_UpdateWording(t *testing.T) {
	s := NewSession("sess-1")
	s.ConfirmLanguages([]string{"Bollywood - Hindi"})
	if !s.RequestLanguageChange() {
		t.Fatal("expected language change to be accepted while ready")
	}
	s.ConfirmLanguages([]string{"Kollywood - Tamil"})

	msgs := s.Messages()
	followUp := msgs[len(msgs)-1]
	if !strings.Contains(followUp.Text, "preferences have been updated") {
		t.Fatalf("expected update wording on second confirmation, got %q", followUp.Text)
	}
}

func TestSession_RequestLanguageChange_NoOpWhileAwaiting(t *testing.T) {
	s := NewSession("sess-1")
	before := len(s.Messages())

	if s.RequestLanguageChange() {
		t.Fatal("expected no-op while already awaiting selection")
	}
	if got := len(s.Messages()); got != before {
		t.Fatalf("expected no message appended, log grew from %d to %d", before, got)
	}
	if s.LanguageSelectionDone {
		t.Fatal("gate must stay closed")
	}
}

func TestSession_Reset(t *testing.T) {
	s := NewSession("sess-1")
	s.ConfirmLanguages([]string{"Bollywood - Hindi"})
	s.CurrentMood = "happy"
	song := Song{ID: "s1", Title: "Kala Chashma", Artist: "Amar Arshi"}
	s.Queue.Enqueue(song)
	s.History.Record(song, "happy")
	s.Append(SenderAssistant, "Here you go!", KindPlain, []Song{song})

	s.Reset()

	if got := len(s.Messages()); got != 2 {
		t.Fatalf("expected exactly the two-message welcome sequence, got %d messages", got)
	}
	if s.CurrentMood != DefaultMood {
		t.Fatalf("expected mood reset to %q, got %q", DefaultMood, s.CurrentMood)
	}
	if len(s.SelectedLanguages) != 0 || s.LanguageSelectionDone || !s.IsInitialSetup {
		t.Fatal("expected language state reset")
	}
	if s.Queue.Len() != 0 || s.History.Len() != 0 {
		t.Fatal("expected queue and history emptied")
	}
}

func TestSession_FindSong(t *testing.T) {
	s := NewSession("sess-1")
	song := Song{ID: "abc", Title: "Ilahi", Artist: "Arijit Singh"}
	s.Append(SenderAssistant, "Some songs", KindPlain, []Song{song})

	got, ok := s.FindSong("abc")
	if !ok || got.Title != "Ilahi" {
		t.Fatalf("expected to find song, got %+v ok=%v", got, ok)
	}
	if _, ok := s.FindSong("missing"); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}
