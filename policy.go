package rendercache

import "context"

// RequestInfo carries the host's request-classification signals. The host
// resolves these once per request and attaches them with WithRequestInfo; the
// bypass policy is a pure function of them.
type RequestInfo struct {
	// Method is the HTTP method ("GET" is the only cacheable one).
	Method string
	// FrontEnd is true when the request came through the primary themed
	// content-serving entry point (not admin, API, cron, ...).
	FrontEnd bool
	// Authenticated is true for logged-in requesters.
	Authenticated bool

	// Uncacheable view flags.
	Search    bool
	NotFound  bool
	Feed      bool
	Trackback bool
	Robots    bool
	Preview   bool

	// PasswordRequired is true when the current document demands a password
	// the requester has not supplied.
	PasswordRequired bool
	// NoCache is the explicit "do not cache this page" override, an escape
	// hatch for host plugins (checkout pages and the like).
	NoCache bool
}

type requestInfoKey struct{}

// WithRequestInfo attaches the host's request signals to ctx.
func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// RequestInfoFrom extracts request signals attached by WithRequestInfo.
func RequestInfoFrom(ctx context.Context) (RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info, ok
}

// BypassReason explains a bypass decision. The empty value means "cache".
type BypassReason string

const (
	BypassStoreUnavailable BypassReason = "store_unavailable"
	BypassNoRequestInfo    BypassReason = "no_request_info"
	BypassMethod           BypassReason = "method"
	BypassNotFrontEnd      BypassReason = "not_front_end"
	BypassAuthenticated    BypassReason = "authenticated"
	BypassUncacheableView  BypassReason = "uncacheable_view"
	BypassPasswordRequired BypassReason = "password_required"
	BypassNoCacheFlag      BypassReason = "no_cache_flag"
)

// ShouldBypass evaluates the bypass policy: no I/O, no side effects, and no
// false negatives. When a signal is missing (hasInfo false) the request
// bypasses; serving a wrong cached page costs more than a redundant render.
func ShouldBypass(storeAvailable bool, info RequestInfo, hasInfo bool) BypassReason {
	if !storeAvailable {
		return BypassStoreUnavailable
	}
	if !hasInfo {
		return BypassNoRequestInfo
	}
	if info.Method != "GET" {
		return BypassMethod
	}
	if !info.FrontEnd {
		return BypassNotFrontEnd
	}
	if info.Authenticated {
		return BypassAuthenticated
	}
	if info.Search || info.NotFound || info.Feed || info.Trackback || info.Robots || info.Preview {
		return BypassUncacheableView
	}
	if info.PasswordRequired {
		return BypassPasswordRequired
	}
	if info.NoCache {
		return BypassNoCacheFlag
	}
	return ""
}
