// Package provider defines the storage abstraction used by rendercache.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Add for a key (no
// prepended/appended metadata, no re-encoding, no mutation). If a store
// performs internal transforms (e.g., compression), they MUST be fully
// reversed so that the bytes returned by Get are identical to the bytes
// provided to Add.
//
// Important: the keyspace "render:<ns>:" is owned by rendercache. External
// code MUST NOT write values under this prefix. Foreign writes may be treated
// as corruption by codec validation and deleted.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs and add-if-absent writes.
// Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// The found flag is authoritative: false must be trustworthy and an
	// expired entry must never surface as a hit. If an IO/remote error
	// happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Add stores value with the given TTL only if the key is absent
	// (first-writer-wins). Returns ok=false when the key was already
	// present or the store rejected the write under pressure. May ignore
	// cost if unsupported.
	Add(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort). Deleting an absent key is not an
	// error.
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
