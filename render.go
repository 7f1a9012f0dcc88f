package rendercache

import (
	"context"
	"io"
)

// RenderOptions tunes how a document body is produced. The cache key does not
// encode options, so only the zero value is eligible for caching; any other
// value forces a bypass.
type RenderOptions struct {
	// MoreLinkText replaces the default "read more" link label.
	MoreLinkText string
	// StripTeaser removes the teaser from output after a more-link split.
	StripTeaser bool
}

// IsDefault reports whether o is the cache-eligible default option set.
func (o RenderOptions) IsDefault() bool { return o == RenderOptions{} }

// Renderer produces the body of a document. Implementations are expected to
// be expensive; that is the point of caching them.
//
// RenderTo is emit mode: output is written to w, and implementations MUST run
// the final output through the engine's FilterChain (Apply) as their last
// transform so the capture interceptor can observe it. Render is return mode:
// output comes back as a value and is persisted by the engine directly,
// without the chain.
type Renderer interface {
	Render(ctx context.Context, id DocID, opts RenderOptions) ([]byte, error)
	RenderTo(ctx context.Context, w io.Writer, id DocID, opts RenderOptions) error
}
