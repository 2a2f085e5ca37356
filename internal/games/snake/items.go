package snake

import (
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ItemRegistry is the set of item coordinates shared by the engine and the
// spawner. Each method holds the lock for its whole check-then-mutate.
type ItemRegistry struct {
	mu    sync.Mutex
	items map[core.Coordinate]struct{}
}

// NewItemRegistry creates an empty registry.
func NewItemRegistry() *ItemRegistry {
	return &ItemRegistry{items: make(map[core.Coordinate]struct{})}
}

// Contains reports whether an item sits at c.
func (r *ItemRegistry) Contains(c core.Coordinate) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[c]
	return ok
}

// Insert adds an item at c. Inserting an existing coordinate is a no-op.
func (r *ItemRegistry) Insert(c core.Coordinate) {
	r.mu.Lock()
	r.items[c] = struct{}{}
	r.mu.Unlock()
}

// Remove deletes the item at c, if any.
func (r *ItemRegistry) Remove(c core.Coordinate) {
	r.mu.Lock()
	delete(r.items, c)
	r.mu.Unlock()
}

// InsertIfAbsent adds an item at c and reports whether it was not already
// present.
func (r *ItemRegistry) InsertIfAbsent(c core.Coordinate) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c]; ok {
		return false
	}
	r.items[c] = struct{}{}
	return true
}

// Take removes the item at c and reports whether one was there.
func (r *ItemRegistry) Take(c core.Coordinate) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c]; !ok {
		return false
	}
	delete(r.items, c)
	return true
}

// Len returns the number of items.
func (r *ItemRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Items returns the item coordinates in row, then column order.
func (r *ItemRegistry) Items() []core.Coordinate {
	r.mu.Lock()
	out := make([]core.Coordinate, 0, len(r.items))
	for c := range r.items {
		out = append(out, c)
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
