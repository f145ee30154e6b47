package usecase

import "sync"

// scrollGuard is the default in-memory scroll lock. Lock pins the page
// and preserves the reported offset; Unlock releases it and returns the
// offset to restore. Double locks and double unlocks are tolerated so
// reconnecting clients cannot wedge the guard.
type scrollGuard struct {
	mu     sync.Mutex
	locked bool
	offset int
}

func (g *scrollGuard) Lock(offset int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.locked {
		return
	}
	g.locked = true
	g.offset = offset
}

func (g *scrollGuard) Unlock() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.locked {
		return g.offset
	}
	g.locked = false
	return g.offset
}

func (g *scrollGuard) Locked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.locked
}

func (g *scrollGuard) Offset() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.offset
}
