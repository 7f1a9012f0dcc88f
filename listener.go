package rendercache

import (
	"context"
	"sync"

	"github.com/rendercache/rendercache/eventbus"
)

// MutationOp names a direct document mutation.
type MutationOp string

const (
	OpCreated      MutationOp = "created"
	OpEdited       MutationOp = "edited"
	OpDeleted      MutationOp = "deleted"
	OpTrashed      MutationOp = "trashed"
	OpCacheCleared MutationOp = "cache_cleared"
)

// MutationEvent is a direct document mutation; every occurrence invalidates.
type MutationEvent struct {
	Op MutationOp
	ID DocID
}

// TransitionEvent is a document status change. It invalidates only when it
// crosses the publish boundary.
type TransitionEvent struct {
	Old Status
	New Status
	ID  DocID
}

// Listener subscribes engine invalidation to document lifecycle events.
// Register at process start, Close at shutdown for deterministic
// unsubscription. Deletes are fire-and-forget: failures are logged and the
// stale entry rides out its TTL.
type Listener struct {
	engine  Engine
	log     Logger
	cancels []func()
	once    sync.Once
}

// NewListener subscribes e to the given buses. Either bus may be nil.
func NewListener(e Engine, mutations *eventbus.Bus[MutationEvent], transitions *eventbus.Bus[TransitionEvent], log Logger) *Listener {
	l := &Listener{
		engine: e,
		log:    coalesce[Logger](log, NopLogger{}),
	}
	if mutations != nil {
		l.cancels = append(l.cancels, mutations.Subscribe(l.onMutation))
	}
	if transitions != nil {
		l.cancels = append(l.cancels, transitions.Subscribe(l.onTransition))
	}
	return l
}

func (l *Listener) onMutation(ctx context.Context, ev MutationEvent) {
	if err := l.engine.Invalidate(ctx, ev.ID); err != nil {
		l.log.Warn("mutation invalidate dropped", Fields{"id": ev.ID, "op": ev.Op, "err": err})
	}
}

func (l *Listener) onTransition(ctx context.Context, ev TransitionEvent) {
	if err := l.engine.OnTransition(ctx, ev.Old, ev.New, ev.ID); err != nil {
		l.log.Warn("transition invalidate dropped", Fields{"id": ev.ID, "old": ev.Old, "new": ev.New, "err": err})
	}
}

// Close unsubscribes from all buses. Safe to call multiple times.
func (l *Listener) Close() {
	l.once.Do(func() {
		for _, cancel := range l.cancels {
			cancel()
		}
	})
}
