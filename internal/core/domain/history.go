package domain

import "time"

// HistoryEntry records one recommended song and the mood that produced it.
type HistoryEntry struct {
	Song      Song
	Mood      string
	Timestamp int64 // unix milliseconds, strictly increasing within a session
}

// History is the append-only chronological record of every song ever
// recommended. Entries are never deduplicated: the same song recommended
// twice under different moods yields two entries.
type History struct {
	entries []HistoryEntry
	lastTS  int64
}

// Record appends an entry stamped with the current time. Entries recorded
// within the same millisecond get a monotonic tiebreaker so timestamps never
// collide.
func (h *History) Record(s Song, mood string) HistoryEntry {
	ts := time.Now().UnixMilli()
	if ts <= h.lastTS {
		ts = h.lastTS + 1
	}
	h.lastTS = ts
	entry := HistoryEntry{Song: s, Mood: mood, Timestamp: ts}
	h.entries = append(h.entries, entry)
	return entry
}

// Entries returns a copy of the history in recording order.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear discards all entries.
func (h *History) Clear() {
	h.entries = nil
	h.lastTS = 0
}
