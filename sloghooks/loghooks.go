package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/rendercache/rendercache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery    uint64
	AddRejectedEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr    atomic.Uint64
	addRejectedCtr atomic.Uint64
}

var _ rendercache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) StoreDegraded(op, storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("rendercache.store_degraded",
		"op", op,
		"key", storageKey,
		"err", err)
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("rendercache.self_heal",
		"key", storageKey,
		"reason", reason)
}

func (h *Hooks) AddRejected(storageKey string) {
	if h.l == nil || !sample(h.opts.AddRejectedEvery, &h.addRejectedCtr) {
		return
	}
	h.l.Debug("rendercache.add_rejected",
		"key", storageKey)
}

func (h *Hooks) InvalidationDropped(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("rendercache.invalidation_dropped",
		"key", storageKey,
		"err", err)
}
