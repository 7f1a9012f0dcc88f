// Package rendercache implements a read-through cache for expensive document
// rendering. The engine decides per request whether to bypass caching, serve a
// stored rendering, or render fresh and conditionally persist the result;
// document mutation events invalidate stored entries.
//
// Components:
//   - Provider: byte store with TTL and add-if-absent semantics
//     (e.g. Redis, Memcached, Ristretto, BigCache).
//   - Codec: (de)serializes the stored Entry <-> []byte.
//   - DocumentSource: resolves a document's status and password protection.
//   - Renderer: produces output bytes for a document, either into a writer
//     (emit mode, tapped through a FilterChain) or as a return value.
//   - Listener: subscribes invalidation to document lifecycle events.
//
// Keys:
//
//	render:content:<id>        - emit-mode renderings
//	render:content-return:<id> - return-mode renderings
//
// Read-through pattern:
//
//	ctx = rendercache.WithRequestInfo(ctx, info) // host request signals
//	out, _ := engine.RenderReturn(ctx, id, rendercache.RenderOptions{})
//
// Only published, password-free documents are ever persisted, and only for
// requests carrying the default option set. Every failure mode degrades to an
// uncached render; a stale entry survives at most one TTL (24h by default).
package rendercache
