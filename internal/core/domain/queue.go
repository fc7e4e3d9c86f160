package domain

import "errors"

// ErrNotPermutation is returned by Queue.Reorder when the proposed order is
// not a permutation of the current queue contents.
var ErrNotPermutation = errors.New("domain: reorder is not a permutation of the queue")

// Queue is the user's ordered "to play" list. No two entries ever share the
// same (title, artist) identity.
type Queue struct {
	songs []Song
}

// Songs returns a copy of the queue in play order.
func (q *Queue) Songs() []Song {
	out := make([]Song, len(q.songs))
	copy(out, q.songs)
	return out
}

// Len returns the number of queued songs.
func (q *Queue) Len() int {
	return len(q.songs)
}

// Enqueue appends a song unless an identity-equal song is already queued.
// Returns true if the song was added.
func (q *Queue) Enqueue(s Song) bool {
	for _, ex := range q.songs {
		if ex.SameIdentity(s) {
			return false
		}
	}
	q.songs = append(q.songs, s)
	return true
}

// Dequeue removes the first entry matching the song's identity. Returns true
// if an entry was removed; absent songs are a no-op.
func (q *Queue) Dequeue(s Song) bool {
	for i, ex := range q.songs {
		if ex.SameIdentity(s) {
			q.songs = append(q.songs[:i], q.songs[i+1:]...)
			return true
		}
	}
	return false
}

// Reorder replaces the queue order with newOrder, which must contain exactly
// the songs currently queued.
func (q *Queue) Reorder(newOrder []Song) error {
	if len(newOrder) != len(q.songs) {
		return ErrNotPermutation
	}
	used := make([]bool, len(q.songs))
	for _, s := range newOrder {
		found := false
		for i, ex := range q.songs {
			if !used[i] && ex.SameIdentity(s) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return ErrNotPermutation
		}
	}
	replaced := make([]Song, len(newOrder))
	copy(replaced, newOrder)
	q.songs = replaced
	return nil
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.songs = nil
}
