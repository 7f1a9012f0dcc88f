package rendercache

import (
	"context"
	"errors"
	"testing"

	"github.com/rendercache/rendercache/eventbus"
)

func seedEntry(t *testing.T, e Engine, ctx context.Context, id DocID) {
	t.Helper()
	if _, err := e.RenderReturn(ctx, id, RenderOptions{}); err != nil {
		t.Fatalf("seed render: %v", err)
	}
}

// TestListenerMutationEvents: every direct mutation event deletes the
// document's entries.
func TestListenerMutationEvents(t *testing.T) {
	ops := []MutationOp{OpCreated, OpEdited, OpDeleted, OpTrashed, OpCacheCleared}

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			ctx := cacheCtx()
			mp := newMemProvider()
			r := &stubRenderer{out: "body"}
			e := newTestEngine(t, mp, publishedDocs(42), r, nil)
			defer e.Close(context.Background())

			mutations := eventbus.New[MutationEvent]()
			l := NewListener(e, mutations, nil, nil)
			defer l.Close()

			seedEntry(t, e, ctx, 42)
			mutations.Publish(ctx, MutationEvent{Op: op, ID: 42})
			if mp.entries() != 0 {
				t.Fatalf("mutation %q should invalidate", op)
			}
		})
	}
}

// TestListenerTransitionEvents: only publish-boundary crossings invalidate.
func TestListenerTransitionEvents(t *testing.T) {
	ctx := cacheCtx()
	mp := newMemProvider()
	r := &stubRenderer{out: "body"}
	e := newTestEngine(t, mp, publishedDocs(42), r, nil)
	defer e.Close(context.Background())

	transitions := eventbus.New[TransitionEvent]()
	l := NewListener(e, nil, transitions, nil)
	defer l.Close()

	seedEntry(t, e, ctx, 42)
	transitions.Publish(ctx, TransitionEvent{Old: StatusDraft, New: StatusPending, ID: 42})
	if mp.entries() == 0 {
		t.Fatalf("draft->pending must not invalidate")
	}

	transitions.Publish(ctx, TransitionEvent{Old: StatusPublished, New: StatusTrash, ID: 42})
	if mp.entries() != 0 {
		t.Fatalf("published->trash must invalidate")
	}

	// Fresh render works again after the trash transition.
	before := r.calls
	seedEntry(t, e, ctx, 42)
	if r.calls != before+1 {
		t.Fatalf("expected fresh render after invalidation")
	}
}

// TestListenerClose: a closed listener receives nothing.
func TestListenerClose(t *testing.T) {
	ctx := cacheCtx()
	mp := newMemProvider()
	r := &stubRenderer{out: "body"}
	e := newTestEngine(t, mp, publishedDocs(42), r, nil)
	defer e.Close(context.Background())

	mutations := eventbus.New[MutationEvent]()
	transitions := eventbus.New[TransitionEvent]()
	l := NewListener(e, mutations, transitions, nil)

	if mutations.Len() != 1 || transitions.Len() != 1 {
		t.Fatalf("listener should hold one subscription per bus")
	}

	l.Close()
	l.Close() // idempotent
	if mutations.Len() != 0 || transitions.Len() != 0 {
		t.Fatalf("Close must unsubscribe from all buses")
	}

	seedEntry(t, e, ctx, 42)
	mutations.Publish(ctx, MutationEvent{Op: OpEdited, ID: 42})
	if mp.entries() == 0 {
		t.Fatalf("closed listener must not invalidate")
	}
}

// Deletes are fire-and-forget from the listener's perspective: a failing
// store must not panic or surface anywhere past the log.
func TestListenerSwallowsDeleteFailures(t *testing.T) {
	ctx := cacheCtx()
	mp := newMemProvider()
	mp.delErr = errors.New("store down")
	hooks := &recHooks{}
	r := &stubRenderer{out: "body"}
	e := newTestEngine(t, mp, publishedDocs(42), r, func(o *Options) { o.Hooks = hooks })
	defer e.Close(context.Background())

	mutations := eventbus.New[MutationEvent]()
	l := NewListener(e, mutations, nil, nil)
	defer l.Close()

	mutations.Publish(ctx, MutationEvent{Op: OpDeleted, ID: 42})
	if len(hooks.dropped) != len(namespaces) {
		t.Fatalf("expected InvalidationDropped per namespace, got %d", len(hooks.dropped))
	}
}
