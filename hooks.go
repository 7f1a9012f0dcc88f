package rendercache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The engine calls them on hot paths.
type Hooks interface {
	// A store call failed and the request degraded to an uncached render.
	// op ∈ {"get", "add"}
	StoreDegraded(op, storageKey string, err error)

	// An entry that failed to decode was deleted on read.
	// reason ∈ {"decode"}
	SelfHeal(storageKey, reason string)

	// Provider declined an add-if-absent (already present, or rejected
	// under pressure). Not an error; the losing writer's output is still
	// served to its own caller.
	AddRejected(storageKey string)

	// An invalidation delete failed; the stale entry rides out its TTL.
	InvalidationDropped(storageKey string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) StoreDegraded(string, string, error) {}
func (NopHooks) SelfHeal(string, string)             {}
func (NopHooks) AddRejected(string)                  {}
func (NopHooks) InvalidationDropped(string, error)   {}
