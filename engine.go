package rendercache

import (
	"context"
	"fmt"
	"io"
	"time"

	c "github.com/rendercache/rendercache/codec"
	"github.com/rendercache/rendercache/internal/util"
	pr "github.com/rendercache/rendercache/provider"
)

const defaultTTL = 24 * time.Hour

type engine struct {
	provider pr.Provider
	docs     DocumentSource
	renderer Renderer
	filters  *FilterChain
	codec    c.Codec
	log      Logger
	hooks    Hooks
	ttl      time.Duration
	cost     AddCostFunc
	now      func() time.Time
	enabled  bool
}

func newEngine(opts Options) (*engine, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("rendercache: provider is required")
	}
	if opts.Documents == nil {
		return nil, fmt.Errorf("rendercache: document source is required")
	}
	if opts.Renderer == nil {
		return nil, fmt.Errorf("rendercache: renderer is required")
	}

	e := &engine{
		provider: opts.Provider,
		docs:     opts.Documents,
		renderer: opts.Renderer,
		filters:  opts.Filters,
		enabled:  !opts.Disabled,
	}

	// defaults
	e.log = coalesce[Logger](opts.Logger, NopLogger{})
	e.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	e.codec = coalesce[c.Codec](opts.Codec, c.Raw{})
	e.ttl = coalesce[time.Duration](opts.TTL, defaultTTL)
	if e.filters == nil {
		e.filters = &FilterChain{}
	}
	if opts.ComputeAddCost != nil {
		e.cost = opts.ComputeAddCost
	} else {
		e.cost = func(_ string, _ []byte) int64 { return 1 }
	}
	if opts.Clock != nil {
		e.now = opts.Clock
	} else {
		e.now = time.Now
	}

	return e, nil
}

func (e *engine) Enabled() bool { return e.enabled }

func (e *engine) Filters() *FilterChain { return e.filters }

func (e *engine) Close(ctx context.Context) error {
	if e.provider != nil {
		return e.provider.Close(ctx)
	}
	return nil
}

func (e *engine) RenderEmit(ctx context.Context, w io.Writer, id DocID, opts RenderOptions) error {
	if e.bypass(ctx, id, opts) {
		return e.renderer.RenderTo(ctx, w, id, opts)
	}

	key := util.EntryKey(string(NamespaceContent), int64(id))
	if body, ok := e.lookup(ctx, key); ok {
		_, err := w.Write(body)
		return err
	}

	// Miss. Eligibility decides persistence only; emit happens regardless.
	if e.eligible(ctx, id) {
		release := e.capture(id, key)
		defer release()
	}
	return e.renderer.RenderTo(ctx, w, id, opts)
}

func (e *engine) RenderReturn(ctx context.Context, id DocID, opts RenderOptions) ([]byte, error) {
	if e.bypass(ctx, id, opts) {
		return e.renderer.Render(ctx, id, opts)
	}

	key := util.EntryKey(string(NamespaceContentReturn), int64(id))
	if body, ok := e.lookup(ctx, key); ok {
		return body, nil
	}

	body, err := e.renderer.Render(ctx, id, opts)
	if err != nil {
		return nil, err
	}
	// Eligibility is re-checked at write time: cacheability can change
	// between independent concurrent requests.
	if e.eligible(ctx, id) {
		e.store(ctx, key, body)
	}
	return body, nil
}

func (e *engine) Invalidate(ctx context.Context, id DocID) error {
	if !e.enabled || id == 0 {
		return nil
	}
	var firstErr error
	for _, ns := range namespaces {
		key := util.EntryKey(string(ns), int64(id))
		if err := e.provider.Del(ctx, key); err != nil {
			e.hooks.InvalidationDropped(key, err)
			e.log.Warn("invalidation delete failed; entry expires via TTL", Fields{"key": key, "err": err})
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	e.log.Debug("invalidated document", Fields{"id": id})
	return firstErr
}

func (e *engine) OnTransition(ctx context.Context, oldStatus, newStatus Status, id DocID) error {
	// Only a publish/unpublish boundary crossing invalidates. Edits inside
	// one state are covered by the direct mutation events.
	if (oldStatus == StatusPublished) == (newStatus == StatusPublished) {
		return nil
	}
	return e.Invalidate(ctx, id)
}

func (e *engine) bypass(ctx context.Context, id DocID, opts RenderOptions) bool {
	if id == 0 || !opts.IsDefault() {
		return true
	}
	info, ok := RequestInfoFrom(ctx)
	if reason := ShouldBypass(e.enabled, info, ok); reason != "" {
		e.log.Debug("bypassing cache", Fields{"id": id, "reason": reason})
		return true
	}
	return false
}

// lookup returns the stored body for key, treating every failure as a miss.
func (e *engine) lookup(ctx context.Context, key string) ([]byte, bool) {
	raw, ok, err := e.provider.Get(ctx, key)
	if err != nil {
		e.hooks.StoreDegraded("get", key, err)
		e.log.Warn("cache lookup failed; rendering uncached", Fields{"key": key, "err": err})
		return nil, false
	}
	if !ok {
		return nil, false
	}
	ent, err := e.codec.Decode(raw)
	if err != nil {
		_ = e.provider.Del(ctx, key) // self-heal corrupt
		e.hooks.SelfHeal(key, "decode")
		return nil, false
	}
	return ent.Body, true
}

// store persists body plus the generation marker under key. Write failures
// are swallowed; the cache simply stays cold for that key.
func (e *engine) store(ctx context.Context, key string, body []byte) {
	now := e.now()
	marked := make([]byte, 0, len(body)+64)
	marked = append(marked, body...)
	marked = append(marked, generationMarker(now)...)

	raw, err := e.codec.Encode(c.Entry{Body: marked, GeneratedAt: now})
	if err != nil {
		e.log.Error("entry encode failed", Fields{"key": key, "err": err})
		return
	}
	ok, err := e.provider.Add(ctx, key, raw, e.cost(key, raw), e.ttl)
	if err != nil {
		e.hooks.StoreDegraded("add", key, err)
		e.log.Warn("cache write failed; key stays cold", Fields{"key": key, "err": err})
		return
	}
	if !ok {
		// first-writer-wins: someone beat us, or the provider shed load
		e.hooks.AddRejected(key)
		e.log.Debug("add declined by provider", Fields{"key": key})
	}
}

func (e *engine) eligible(ctx context.Context, id DocID) bool {
	doc, ok, err := e.docs.Lookup(ctx, id)
	if err != nil || !ok {
		return false
	}
	return doc.Status == StatusPublished && !doc.Protected()
}

// generationMarker is the human-readable comment appended to stored bodies.
// Observability only; it is never parsed back.
func generationMarker(t time.Time) []byte {
	return []byte("\n<!-- cached copy generated " + t.UTC().Format("2006-01-02 15:04:05") + " -->")
}
