package catalog

import "sync"

// Collection is a concurrency-safe, ordered entity collection. Entities keep
// their insertion order, which List and the persistence layer preserve; an id
// index gives O(1) lookup.
//
// Id assignment happens inside Append under the write lock, so computing the
// next id and inserting the entity cannot interleave with another writer on
// the same collection.
type Collection[I comparable, E any] struct {
	mu    sync.RWMutex
	keyOf func(E) I
	items []E
	index map[I]int
}

// NewCollection creates an empty collection. keyOf extracts the id from an
// entity.
func NewCollection[I comparable, E any](keyOf func(E) I) *Collection[I, E] {
	return &Collection[I, E]{
		keyOf: keyOf,
		index: make(map[I]int),
	}
}

// Get returns the entity with the given id and whether it exists.
func (c *Collection[I, E]) Get(id I) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[id]
	if !ok {
		var zero E
		return zero, false
	}
	return c.items[pos], true
}

// Exists checks if an entity exists without returning it.
func (c *Collection[I, E]) Exists(id I) bool {
	c.mu.RLock()
	_, ok := c.index[id]
	c.mu.RUnlock()
	return ok
}

// Len returns the number of entities.
func (c *Collection[I, E]) Len() int {
	c.mu.RLock()
	n := len(c.items)
	c.mu.RUnlock()
	return n
}

// List returns a copy of all entities in insertion order.
func (c *Collection[I, E]) List() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]E, len(c.items))
	copy(items, c.items)
	return items
}

// Append builds a new entity from the current contents and appends it, all
// under the write lock. build receives the live slice and must not retain or
// mutate it. The built entity is returned.
func (c *Collection[I, E]) Append(build func(items []E) E) E {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := build(c.items)
	c.index[c.keyOf(item)] = len(c.items)
	c.items = append(c.items, item)
	return item
}

// Update replaces the entity with the given id by merge(current), leaving all
// other entities untouched. It reports whether the id matched.
func (c *Collection[I, E]) Update(id I, merge func(E) E) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return false
	}

	// merge must not change the entity id; patch structs carry no id field.
	c.items[pos] = merge(c.items[pos])
	return true
}

// Delete removes the entity with the given id. It reports whether the id
// matched; deleting an absent id leaves the collection unchanged.
func (c *Collection[I, E]) Delete(id I) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return false
	}

	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.items); i++ {
		c.index[c.keyOf(c.items[i])] = i
	}
	return true
}

// Replace swaps the collection contents for items, keeping their order.
// Later duplicates of an id win in the index, matching last-write-wins
// semantics for malformed input.
func (c *Collection[I, E]) Replace(items []E) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]E, len(items))
	copy(c.items, items)
	c.index = make(map[I]int, len(items))
	for i, item := range c.items {
		c.index[c.keyOf(item)] = i
	}
}

// Clear removes all entities.
func (c *Collection[I, E]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.index = make(map[I]int)
}

// ForEach applies fn to each entity in insertion order. If fn returns false,
// iteration stops early.
func (c *Collection[I, E]) ForEach(fn func(item E) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if !fn(item) {
			break
		}
	}
}
