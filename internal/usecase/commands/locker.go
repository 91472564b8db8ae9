package commands

import (
	"sync"

	"crewcal/internal/pkg/errs"
)

// InflightGuard serializes mutating commands per key. A second command on
// the same key fails fast with ErrConcurrentModification instead of racing;
// commands on unrelated keys proceed independently. In a networked
// deployment this generalizes to a per-booking lease with expiry.
type InflightGuard struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func NewInflightGuard() *InflightGuard {
	return &InflightGuard{keys: make(map[string]struct{})}
}

// Acquire reserves the key. The returned release function must be called
// exactly once, typically deferred.
func (g *InflightGuard) Acquire(key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.keys[key]; busy {
		return nil, errs.ErrConcurrentModification
	}
	g.keys[key] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.keys, key)
		g.mu.Unlock()
	}, nil
}
