// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/rendercache/rendercache"
//	"github.com/rendercache/rendercache/hooks/async"
//	"github.com/rendercache/rendercache/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    SelfHealEvery:    10, // sample logs: ~every 10th self-heal
//	    AddRejectedEvery: 1,  // log every declined add
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	engine, _ := rendercache.New(rendercache.Options{
//	    Provider:  provider,
//	    Documents: docs,
//	    Renderer:  renderer,
//	    Hooks:     hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/rendercache/rendercache"
)

type Hooks struct {
	inner rendercache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ rendercache.Hooks = (*Hooks)(nil)

func New(inner rendercache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) SelfHeal(k, r string) { h.try(func() { h.inner.SelfHeal(k, r) }) }
func (h *Hooks) AddRejected(k string) { h.try(func() { h.inner.AddRejected(k) }) }
func (h *Hooks) StoreDegraded(op, k string, err error) {
	h.try(func() { h.inner.StoreDegraded(op, k, err) })
}
func (h *Hooks) InvalidationDropped(k string, err error) {
	h.try(func() { h.inner.InvalidationDropped(k, err) })
}
