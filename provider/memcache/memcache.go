package memcache

import (
	"context"
	"errors"
	"time"

	mc "github.com/bradfitz/gomemcache/memcache"

	pr "github.com/rendercache/rendercache/provider"
)

// memcached caps relative expirations at 30 days; anything longer is
// interpreted as a unix timestamp. Clamp just under the ceiling.
const maxExpiry = 30*24*60*60 - 60

type Memcache struct {
	c *mc.Client
}

var _ pr.Provider = (*Memcache)(nil)

type Config struct {
	// Servers in host:port form; ignored when Client is set.
	Servers []string
	Client  *mc.Client
}

func New(cfg Config) (*Memcache, error) {
	if cfg.Client != nil {
		return &Memcache{c: cfg.Client}, nil
	}
	if len(cfg.Servers) == 0 {
		return nil, errors.New("memcache provider: no servers")
	}
	return &Memcache{c: mc.New(cfg.Servers...)}, nil
}

func (p *Memcache) Get(_ context.Context, key string) ([]byte, bool, error) {
	it, err := p.c.Get(key)
	if err == mc.ErrCacheMiss {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return it.Value, true, nil
}

// Add uses memcached's native add command: the server arbitrates
// first-writer-wins.
func (p *Memcache) Add(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	err := p.c.Add(&mc.Item{
		Key:        key,
		Value:      value,
		Expiration: expiry(ttl),
	})
	if err == mc.ErrNotStored {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *Memcache) Del(_ context.Context, key string) error {
	err := p.c.Delete(key)
	if err == mc.ErrCacheMiss {
		return nil // idempotent
	}
	return err
}

func (p *Memcache) Close(context.Context) error {
	return p.c.Close()
}

func expiry(ttl time.Duration) int32 {
	if ttl <= 0 {
		return 0 // no expiry
	}
	secs := int64(ttl / time.Second)
	if secs > maxExpiry {
		return maxExpiry
	}
	if secs < 1 {
		secs = 1
	}
	return int32(secs)
}
