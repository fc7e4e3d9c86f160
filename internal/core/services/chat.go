package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sonic-labs/sonic-backend/internal/core/domain"
	"github.com/sonic-labs/sonic-backend/internal/core/intent"
	"github.com/sonic-labs/sonic-backend/internal/core/ports"
	"github.com/sonic-labs/sonic-backend/internal/worker"
)

const (
	failureText         = "I'm sorry, I had trouble finding songs. Please try a different mood or check your connection."
	discoverFailureText = "I'm sorry, I had trouble finding more songs. Please try a different mood or check your connection."
	discoverUserText    = "Find more songs like these!"

	defaultReplyDelay = 500 * time.Millisecond
)

// ChatService coordinates sessions, the local intent matcher, and the
// remote recommendation port. It is the only writer of session state; all
// access to a session is serialized through its per-session lock.
type ChatService struct {
	recommender ports.Recommender
	resolver    ports.LinkResolver // optional, may be nil
	scheduler   *worker.Scheduler
	log         *zap.Logger
	replyDelay  time.Duration

	mu       sync.RWMutex
	sessions map[string]*sessionState
}

// sessionState wraps a domain session with the concurrency bookkeeping the
// domain layer deliberately does not carry.
type sessionState struct {
	mu      sync.Mutex
	sess    *domain.Session
	loading bool
	pending *worker.Task
	// generation increments on every reset so deferred replies and
	// in-flight recommendation results scheduled against an older
	// incarnation of the session are dropped instead of appended.
	generation int
}

// NewChatService constructs a ChatService. resolver may be nil to disable
// canonical link resolution.
func NewChatService(recommender ports.Recommender, resolver ports.LinkResolver, scheduler *worker.Scheduler, log *zap.Logger, replyDelay time.Duration) *ChatService {
	if log == nil {
		log = zap.NewNop()
	}
	if replyDelay <= 0 {
		replyDelay = defaultReplyDelay
	}
	return &ChatService{
		recommender: recommender,
		resolver:    resolver,
		scheduler:   scheduler,
		log:         log,
		replyDelay:  replyDelay,
		sessions:    make(map[string]*sessionState),
	}
}

// SessionSnapshot is a read-only view of conversation-wide state.
type SessionSnapshot struct {
	ID                    string
	CurrentMood           string
	SelectedLanguages     []string
	LanguageSelectionDone bool
	IsInitialSetup        bool
	Loading               bool
	QueueLength           int
	HistoryLength         int
}

// SendResult reports what a send-style operation did. Accepted is false for
// silently ignored calls (gate closed, request already in flight). Pending
// is true when the assistant reply is deferred and will appear in the log
// after the simulated thinking delay.
type SendResult struct {
	Accepted bool
	Pending  bool
	Messages []domain.Message
}

// CreateSession starts a fresh conversation and returns its snapshot.
func (s *ChatService) CreateSession() SessionSnapshot {
	id := uuid.NewString()
	st := &sessionState{sess: domain.NewSession(id)}

	s.mu.Lock()
	s.sessions[id] = st
	s.mu.Unlock()

	s.log.Info("session created", zap.String("session_id", id))
	return snapshot(st)
}

func (s *ChatService) state(id string) (*sessionState, error) {
	s.mu.RLock()
	st, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("service: session %s: %w", id, domain.ErrNotFound)
	}
	return st, nil
}

// Session returns the current snapshot of a session.
func (s *ChatService) Session(id string) (SessionSnapshot, error) {
	st, err := s.state(id)
	if err != nil {
		return SessionSnapshot{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return snapshot(st), nil
}

// Messages returns the conversation log.
func (s *ChatService) Messages(id string) ([]domain.Message, error) {
	st, err := s.state(id)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sess.Messages(), nil
}

// QueueSongs returns the play queue in order.
func (s *ChatService) QueueSongs(id string) ([]domain.Song, error) {
	st, err := s.state(id)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sess.Queue.Songs(), nil
}

// HistoryEntries returns the recommendation history in order.
func (s *ChatService) HistoryEntries(id string) ([]domain.HistoryEntry, error) {
	st, err := s.state(id)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sess.History.Entries(), nil
}

// SendMessage handles one free-form user turn: local intents are resolved
// without touching the network, everything else goes through the
// recommendation port. While the language gate is closed or a request is
// already outstanding the call is a silent no-op.
func (s *ChatService) SendMessage(ctx context.Context, id, text string) (SendResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SendResult{}, nil
	}

	st, err := s.state(id)
	if err != nil {
		return SendResult{}, err
	}

	st.mu.Lock()
	if st.loading || !st.sess.LanguageSelectionDone {
		st.mu.Unlock()
		return SendResult{}, nil
	}

	userMsg := st.sess.Append(domain.SenderUser, text, domain.KindPlain, nil)

	if res, ok := intent.Match(text); ok {
		result := s.handleLocalIntent(st, res, userMsg)
		st.mu.Unlock()
		return result, nil
	}

	gen := st.generation
	st.loading = true
	languages := append([]string(nil), st.sess.SelectedLanguages...)
	st.mu.Unlock()

	rec, err := s.recommender.GetRecommendations(ctx, text, languages)
	return s.foldRecommendation(ctx, st, gen, userMsg, rec, err, failureText), nil
}

// handleLocalIntent resolves a matched intent. Called with st.mu held.
func (s *ChatService) handleLocalIntent(st *sessionState, res intent.Result, userMsg domain.Message) SendResult {
	if res.Category == intent.CategoryLanguageChange {
		st.sess.RequestLanguageChange()
		msgs := st.sess.Messages()
		prompt := msgs[len(msgs)-1]
		s.log.Info("language selection reopened",
			zap.String("session_id", st.sess.ID))
		return SendResult{Accepted: true, Messages: []domain.Message{userMsg, prompt}}
	}

	gen := st.generation
	reply := res.Response
	st.pending = s.scheduler.After(s.replyDelay, func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		if st.generation != gen {
			// session was reset while the reply was pending
			return
		}
		st.sess.Append(domain.SenderAssistant, reply, domain.KindPlain, nil)
		st.pending = nil
	})
	s.log.Debug("local intent matched",
		zap.String("session_id", st.sess.ID),
		zap.String("category", string(res.Category)))
	return SendResult{Accepted: true, Pending: true, Messages: []domain.Message{userMsg}}
}

// foldRecommendation applies a recommendation exchange's outcome to the
// session. On failure the mood and history stay untouched and only the
// apologetic message is appended.
func (s *ChatService) foldRecommendation(ctx context.Context, st *sessionState, gen int, userMsg domain.Message, rec ports.Recommendation, recErr error, apology string) SendResult {
	var songs []domain.Song
	if recErr == nil && len(rec.Songs) > 0 {
		songs = s.buildSongs(ctx, rec.Songs)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.generation != gen {
		// the session was reset while the request was in flight;
		// folding the result into the fresh log would resurrect a
		// conversation the user discarded. Reset already cleared the
		// loading flag for the new generation, which may have its own
		// request outstanding.
		s.log.Warn("dropping recommendation for reset session",
			zap.String("session_id", st.sess.ID))
		return SendResult{}
	}
	st.loading = false

	if recErr != nil {
		s.log.Warn("recommendation failed",
			zap.String("session_id", st.sess.ID),
			zap.Error(recErr))
		msg := st.sess.Append(domain.SenderAssistant, apology, domain.KindPlain, nil)
		return SendResult{Accepted: true, Messages: []domain.Message{userMsg, msg}}
	}

	st.sess.CurrentMood = rec.Mood

	if len(songs) == 0 {
		// informational reply: no songs are fabricated and nothing
		// enters the history
		msg := st.sess.Append(domain.SenderAssistant, rec.ResponseText, domain.KindPlain, nil)
		return SendResult{Accepted: true, Messages: []domain.Message{userMsg, msg}}
	}

	for _, song := range songs {
		st.sess.History.Record(song, rec.Mood)
	}
	msg := st.sess.Append(domain.SenderAssistant, rec.ResponseText, domain.KindPlain, songs)

	s.log.Info("recommendations delivered",
		zap.String("session_id", st.sess.ID),
		zap.String("mood", rec.Mood),
		zap.Int("songs", len(songs)))
	return SendResult{Accepted: true, Messages: []domain.Message{userMsg, msg}}
}

// buildSongs assigns fresh unique ids to the service's title/artist seeds
// and best-effort resolves canonical links. Runs without the session lock
// because resolution may hit the network.
func (s *ChatService) buildSongs(ctx context.Context, seeds []ports.SongSeed) []domain.Song {
	songs := make([]domain.Song, 0, len(seeds))
	for _, seed := range seeds {
		song, err := domain.NewSong(uuid.NewString(), seed.Title, seed.Artist)
		if err != nil {
			continue
		}
		if s.resolver != nil {
			if link, err := s.resolver.ResolveTrackURL(ctx, song.Title, song.Artist); err == nil {
				song.SpotifyURL = link
			} else {
				s.log.Debug("link resolution failed",
					zap.String("title", song.Title),
					zap.String("artist", song.Artist),
					zap.Error(err))
			}
		}
		songs = append(songs, song)
	}
	return songs
}

// ConfirmLanguages applies the user's picker selection. Only accepted while
// the session is awaiting a selection; otherwise a silent no-op.
func (s *ChatService) ConfirmLanguages(id string, selected []string) (SendResult, error) {
	st, err := s.state(id)
	if err != nil {
		return SendResult{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.sess.LanguageSelectionDone {
		return SendResult{}, nil
	}

	before := len(st.sess.Messages())
	st.sess.ConfirmLanguages(selected)
	msgs := st.sess.Messages()

	s.log.Info("languages confirmed",
		zap.String("session_id", id),
		zap.Strings("languages", st.sess.SelectedLanguages))
	return SendResult{Accepted: true, Messages: msgs[before:]}, nil
}

// RequestLanguageChange reopens the language picker, e.g. from the settings
// menu. A no-op while selection is already open.
func (s *ChatService) RequestLanguageChange(id string) (SendResult, error) {
	st, err := s.state(id)
	if err != nil {
		return SendResult{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.sess.RequestLanguageChange() {
		return SendResult{}, nil
	}
	msgs := st.sess.Messages()
	return SendResult{Accepted: true, Messages: msgs[len(msgs)-1:]}, nil
}

// DiscoverMore asks for additional songs in the current mood, distinct from
// the ones carried by the given message. The prior songs are named in the
// request payload; the service cannot force the remote side to comply.
func (s *ChatService) DiscoverMore(ctx context.Context, id string, messageID int64) (SendResult, error) {
	st, err := s.state(id)
	if err != nil {
		return SendResult{}, err
	}

	st.mu.Lock()
	if st.loading || !st.sess.LanguageSelectionDone {
		st.mu.Unlock()
		return SendResult{}, nil
	}

	origin, ok := st.sess.FindMessage(messageID)
	if !ok || len(origin.Songs) == 0 {
		st.mu.Unlock()
		return SendResult{}, fmt.Errorf("service: message %d has no songs: %w", messageID, domain.ErrNotFound)
	}

	userMsg := st.sess.Append(domain.SenderUser, discoverUserText, domain.KindPlain, nil)
	prompt := discoverPrompt(st.sess.CurrentMood, origin.Songs)
	gen := st.generation
	st.loading = true
	languages := append([]string(nil), st.sess.SelectedLanguages...)
	st.mu.Unlock()

	rec, err := s.recommender.GetRecommendations(ctx, prompt, languages)
	return s.foldRecommendation(ctx, st, gen, userMsg, rec, err, discoverFailureText), nil
}

// discoverPrompt names the prior songs so the remote service can avoid
// repeating them.
func discoverPrompt(mood string, prior []domain.Song) string {
	named := make([]string, len(prior))
	for i, song := range prior {
		named[i] = fmt.Sprintf("'%s by %s'", song.Title, song.Artist)
	}
	return fmt.Sprintf(
		"I'm still in a '%s' mood. I liked these songs: %s. Could you find 3-5 more songs that fit this vibe? Please suggest different tracks from what I've already seen.",
		mood, strings.Join(named, ", "))
}

// Reset restores the session to its initial state. Any pending deferred
// reply is cancelled first so it cannot append to the cleared log.
func (s *ChatService) Reset(id string) (SessionSnapshot, error) {
	st, err := s.state(id)
	if err != nil {
		return SessionSnapshot{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.pending != nil {
		st.pending.Cancel()
		st.pending = nil
	}
	st.generation++
	st.loading = false
	st.sess.Reset()

	s.log.Info("session reset", zap.String("session_id", id))
	return snapshot(st), nil
}

// AddToQueue enqueues a previously recommended song by id. Queue identity
// dedup applies, so re-adding the same track is a no-op.
func (s *ChatService) AddToQueue(id, songID string) (bool, error) {
	st, err := s.state(id)
	if err != nil {
		return false, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	song, ok := st.sess.FindSong(songID)
	if !ok {
		return false, fmt.Errorf("service: song %s: %w", songID, domain.ErrNotFound)
	}
	return st.sess.Queue.Enqueue(song), nil
}

// RemoveFromQueue removes a song by id; identity matching means any queued
// entry with the same title and artist goes.
func (s *ChatService) RemoveFromQueue(id, songID string) (bool, error) {
	st, err := s.state(id)
	if err != nil {
		return false, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	song, ok := st.sess.FindSong(songID)
	if !ok {
		return false, fmt.Errorf("service: song %s: %w", songID, domain.ErrNotFound)
	}
	return st.sess.Queue.Dequeue(song), nil
}

// ReorderQueue replaces the queue order with the given song ids.
func (s *ChatService) ReorderQueue(id string, songIDs []string) error {
	st, err := s.state(id)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	newOrder := make([]domain.Song, 0, len(songIDs))
	for _, sid := range songIDs {
		song, ok := st.sess.FindSong(sid)
		if !ok {
			return fmt.Errorf("service: song %s: %w", sid, domain.ErrNotFound)
		}
		newOrder = append(newOrder, song)
	}
	return st.sess.Queue.Reorder(newOrder)
}

// ClearQueue empties the play queue without touching anything else.
func (s *ChatService) ClearQueue(id string) error {
	st, err := s.state(id)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sess.Queue.Clear()
	return nil
}

func snapshot(st *sessionState) SessionSnapshot {
	return SessionSnapshot{
		ID:                    st.sess.ID,
		CurrentMood:           st.sess.CurrentMood,
		SelectedLanguages:     append([]string(nil), st.sess.SelectedLanguages...),
		LanguageSelectionDone: st.sess.LanguageSelectionDone,
		IsInitialSetup:        st.sess.IsInitialSetup,
		Loading:               st.loading,
		QueueLength:           st.sess.Queue.Len(),
		HistoryLength:         st.sess.History.Len(),
	}
}
