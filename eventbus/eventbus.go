// Package eventbus is a typed in-process publish/subscribe bus. Subscriptions
// are explicit and return a cancel func, so listeners can unregister
// deterministically at shutdown instead of leaking global hook state.
package eventbus

import (
	"context"
	"sync"
)

// Handler consumes one event. Handlers run synchronously on the publisher's
// goroutine, in subscription order.
type Handler[E any] func(ctx context.Context, ev E)

// Bus fans events out to subscribers. The zero value is not usable; construct
// with New. Safe for concurrent use.
type Bus[E any] struct {
	mu   sync.RWMutex
	next int
	ids  []int
	subs map[int]Handler[E]
}

func New[E any]() *Bus[E] {
	return &Bus[E]{subs: make(map[int]Handler[E])}
}

// Subscribe registers h and returns a cancel func. Cancel is idempotent.
func (b *Bus[E]) Subscribe(h Handler[E]) (cancel func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.ids = append(b.ids, id)
	b.subs[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			for i, v := range b.ids {
				if v == id {
					b.ids = append(b.ids[:i], b.ids[i+1:]...)
					break
				}
			}
			b.mu.Unlock()
		})
	}
}

// Publish delivers ev to every current subscriber.
func (b *Bus[E]) Publish(ctx context.Context, ev E) {
	b.mu.RLock()
	hs := make([]Handler[E], 0, len(b.ids))
	for _, id := range b.ids {
		hs = append(hs, b.subs[id])
	}
	b.mu.RUnlock()

	for _, h := range hs {
		h(ctx, ev)
	}
}

// Len returns the current subscriber count.
func (b *Bus[E]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
