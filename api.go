package rendercache

import (
	"context"
	"io"
	"time"

	c "github.com/rendercache/rendercache/codec"
	pr "github.com/rendercache/rendercache/provider"
)

// AddCostFunc computes the admission cost for a stored entry (Ristretto and
// similar cost-based providers honor it; others ignore it).
type AddCostFunc func(storageKey string, raw []byte) int64

// Engine is the read-through render cache. Both render entry points share one
// decision tree: bypass gate, then lookup, then render fresh with conditional
// persistence. On a hit the renderer is never invoked.
type Engine interface {
	Enabled() bool
	Close(context.Context) error

	// RenderEmit writes the document body to w. On a miss for an eligible
	// document the output is captured through the filter chain and stored
	// under NamespaceContent.
	RenderEmit(ctx context.Context, w io.Writer, id DocID, opts RenderOptions) error

	// RenderReturn returns the document body. On a miss for an eligible
	// document the bytes are stored under NamespaceContentReturn.
	RenderReturn(ctx context.Context, id DocID, opts RenderOptions) ([]byte, error)

	// Invalidate deletes the document's entries in every namespace.
	// Best-effort: a failed delete self-heals via TTL expiry.
	Invalidate(ctx context.Context, id DocID) error

	// OnTransition invalidates iff the status change crosses the publish
	// boundary (exactly one of old/new is published).
	OnTransition(ctx context.Context, oldStatus, newStatus Status, id DocID) error

	// Filters exposes the chain the host renderer must Apply to emit-mode
	// output so the capture interceptor can observe it.
	Filters() *FilterChain
}

// Options tune the engine. Provider, Documents and Renderer are required;
// others have sensible defaults.
type Options struct {
	// Required
	Provider  pr.Provider
	Documents DocumentSource
	Renderer  Renderer

	Filters        *FilterChain     // nil => engine-owned chain (wire via Engine.Filters)
	Codec          c.Codec          // nil => codec.Raw{}
	Logger         Logger           // nil => NopLogger
	Hooks          Hooks            // nil => NopHooks
	TTL            time.Duration    // 0 => 24h
	ComputeAddCost AddCostFunc      // nil => cost 1
	Clock          func() time.Time // nil => time.Now; tests inject here
	Disabled       bool             // default false (enabled)
}

func New(opts Options) (Engine, error) {
	return newEngine(opts)
}
