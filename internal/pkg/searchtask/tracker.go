// Package searchtask tags searches with per-session sequence numbers so that
// a slow, superseded search can never overwrite a newer result.
//
// Beginning a search for a key cancels the context of the previous in-flight
// search for that key on this instance. Before publishing, a search checks
// that its number is still the latest in the SequenceStore, which also
// catches searches superseded on another instance.
package searchtask

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/ijalalfrz/travel-search-service/internal/pkg/exception"
)

var ErrSearchSuperseded = exception.ApplicationError{
	Kind:       exception.KindSuperseded,
	StatusCode: http.StatusConflict,
	Message:    "search superseded by a newer request",
}

// SessionKey scopes a sequence to one feature of one client session. An
// empty session id yields an empty key, which disables sequencing.
func SessionKey(feature, sessionID string) string {
	if sessionID == "" {
		return ""
	}

	return feature + ":" + sessionID
}

type Tracker struct {
	store SequenceStore

	mu       sync.Mutex
	inflight map[string]*Task
}

func NewTracker(store SequenceStore) *Tracker {
	return &Tracker{
		store:    store,
		inflight: make(map[string]*Task),
	}
}

type Task struct {
	key     string
	seq     int64
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	tracker *Tracker
}

// Begin starts a search for key. If a sequence cannot be allocated the search
// runs untracked rather than failing.
func (t *Tracker) Begin(ctx context.Context, key string) *Task {
	taskCtx, cancel := context.WithCancel(ctx)
	task := &Task{parent: ctx, ctx: taskCtx, cancel: cancel, tracker: t}

	if key == "" {
		return task
	}

	seq, err := t.store.Next(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "failed to allocate search sequence, running untracked",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return task
	}

	task.key = key
	task.seq = seq

	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.inflight[key]; ok {
		if prev.seq > seq {
			// a newer search already started here; this one is stale on arrival
			cancel()
			return task
		}
		prev.cancel()
	}
	t.inflight[key] = task

	return task
}

// Context is cancelled when the task finishes or is superseded.
func (t *Task) Context() context.Context {
	return t.ctx
}

// Sequence is zero for untracked tasks.
func (t *Task) Sequence() int64 {
	return t.seq
}

// Current reports whether the task may publish its result. Untracked tasks
// are always current; so is a task whose store lookup fails.
func (t *Task) Current() bool {
	if t.key == "" {
		return true
	}

	latest, err := t.tracker.store.Latest(context.WithoutCancel(t.parent), t.key)
	if err != nil {
		slog.WarnContext(t.parent, "failed to read latest search sequence",
			slog.String("key", t.key),
			slog.String("error", err.Error()))
		return true
	}

	return latest == t.seq
}

// Finish releases the task's context and its in-flight slot.
func (t *Task) Finish() {
	t.cancel()

	if t.key == "" {
		return
	}

	t.tracker.mu.Lock()
	defer t.tracker.mu.Unlock()

	if t.tracker.inflight[t.key] == t {
		delete(t.tracker.inflight, t.key)
	}
}
