// Package worker provides deferred single-shot execution for canned chat
// replies. The assistant's local-intent responses are appended after a short
// simulated "thinking" delay; a session reset cancels any reply still
// pending so it cannot touch a cleared conversation log.
package worker

import (
	"sync"
	"time"
)

// Scheduler owns the timers behind deferred replies.
type Scheduler struct {
	mu      sync.Mutex
	wg      sync.WaitGroup
	stopped bool
	tasks   map[*Task]struct{}
}

// Task is a single scheduled callback. Cancel is safe to call from any
// goroutine and more than once.
type Task struct {
	s         *Scheduler
	timer     *time.Timer
	completed bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[*Task]struct{})}
}

// After runs fn once after the delay unless the task is cancelled first.
// After Stop, scheduling becomes a no-op.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &Task{s: s}
	if s.stopped {
		t.completed = true
		return t
	}

	s.wg.Add(1)
	s.tasks[t] = struct{}{}
	t.timer = time.AfterFunc(d, func() {
		if !t.finish() {
			return
		}
		fn()
	})
	return t
}

// Cancel stops the task if it has not fired yet. Returns true if the
// callback was prevented from running.
func (t *Task) Cancel() bool {
	if t == nil || t.timer == nil {
		return false
	}
	t.timer.Stop()
	return t.finish()
}

// finish marks the task complete exactly once, whichever of the timer
// callback or Cancel gets there first.
func (t *Task) finish() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.completed {
		return false
	}
	t.completed = true
	delete(t.s.tasks, t)
	t.s.wg.Done()
	return true
}

// Stop cancels every pending task and waits for in-flight callbacks.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	pending := make([]*Task, 0, len(s.tasks))
	for t := range s.tasks {
		pending = append(pending, t)
	}
	s.mu.Unlock()

	for _, t := range pending {
		t.Cancel()
	}
	s.wg.Wait()
}
