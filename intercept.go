package rendercache

import (
	"context"
	"sync/atomic"
)

// capture installs a one-shot output-capture filter guarding exactly one
// renderer invocation. The returned release func MUST run on every exit path
// (success, error, renderer panic); callers defer it immediately.
//
// The filter observes the final transformed output, persists it, and passes
// it through unchanged.
func (e *engine) capture(id DocID, key string) (release func()) {
	var done atomic.Bool
	return e.filters.Append(func(ctx context.Context, fid DocID, out []byte) []byte {
		if fid != id || !done.CompareAndSwap(false, true) {
			return out
		}
		e.store(ctx, key, out)
		return out
	})
}
