package block

import (
	"log/slog"

	"github.com/brentp/intintmap"
	"github.com/cespare/xxhash/v2"
)

// Snapshot is an immutable name→state lookup built once at generator
// construction. It replaces runtime-grown caches: after NewSnapshot returns,
// the underlying map is never written again, so lookups are safe from every
// worker without locking.
type Snapshot struct {
	states *intintmap.Map
	reg    Registry
	log    *slog.Logger
}

// NewSnapshot resolves every fully qualified block name passed against the
// registry and returns the finished snapshot. Names that do not resolve are
// logged and left out; State falls back to a direct registry query for them.
func NewSnapshot(reg Registry, log *slog.Logger, names ...string) *Snapshot {
	if log == nil {
		log = slog.Default()
	}
	m := intintmap.New(max(len(names)*2, 8), 0.6)
	for _, full := range names {
		ns, n := splitName(full)
		id, ok := reg.BlockID(ns, n)
		if !ok {
			log.Warn("block not in registry, left out of snapshot", "block", full)
			continue
		}
		ref, ok := reg.BlockByID(id)
		if !ok {
			log.Warn("registry returned dangling block id", "block", full, "id", id)
			continue
		}
		m.Put(int64(xxhash.Sum64String(full)), int64(ref.DefaultState()))
	}
	return &Snapshot{states: m, reg: reg, log: log}
}

// State returns the default state of the block with the fully qualified name
// passed. A snapshot miss falls back to a direct registry query before giving
// up; the caller is expected to skip the write when the bool is false.
func (s *Snapshot) State(name string) (StateRef, bool) {
	if v, ok := s.states.Get(int64(xxhash.Sum64String(name))); ok {
		return StateRef(v), true
	}
	ns, n := splitName(name)
	if id, ok := s.reg.BlockID(ns, n); ok {
		if ref, ok := s.reg.BlockByID(id); ok {
			s.log.Warn("block resolved outside snapshot", "block", name)
			return ref.DefaultState(), true
		}
	}
	s.log.Warn("unknown block", "block", name)
	return 0, false
}
