package optimistic

import (
	"slices"
	"sync"
)

// Entity is a record that can be held in a Collection.
// EntityID must be stable for the lifetime of the value.
type Entity interface {
	EntityID() string
}

// Collection is the local ordered list of entities backing a board.
// Order is insertion order; at most one entry exists per identifier.
type Collection[T Entity] struct {
	items []T
	mu    sync.RWMutex
}

// NewCollection creates a collection holding items (duplicates dropped)
func NewCollection[T Entity](items ...T) *Collection[T] {
	c := &Collection[T]{}
	c.Reset(items)
	return c
}

// Snapshot returns a copy of the current contents in display order
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entries
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the entry with the given id and its position
func (c *Collection[T]) Get(id string) (T, int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, -1, false
	}
	return c.items[i], i, true
}

// Update atomically replaces the entry with fn(current) at its position.
// Returns the previous and the new value. fn must keep the identifier.
func (c *Collection[T]) Update(id string, fn func(T) T) (prev, next T, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return prev, next, false
	}

	prev = c.items[i]
	next = fn(prev)
	if next.EntityID() != id {
		// Смена идентификатора через Update сломала бы уникальность
		return prev, prev, false
	}
	c.items[i] = next
	return prev, next, true
}

// Set replaces the entry with the same id in place.
// Returns false if no such entry exists.
func (c *Collection[T]) Set(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(v.EntityID())
	if i < 0 {
		return false
	}
	c.items[i] = v
	return true
}

// Swap replaces the entry keyed by oldID with v, which may carry a new id.
// If an entry with v's id already exists elsewhere, the oldID entry is
// dropped instead so identifiers stay unique.
func (c *Collection[T]) Swap(oldID string, v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(oldID)
	if i < 0 {
		return false
	}

	newID := v.EntityID()
	if newID != oldID {
		if j := c.indexOf(newID); j >= 0 {
			c.items[j] = v
			c.items = slices.Delete(c.items, i, i+1)
			return true
		}
	}
	c.items[i] = v
	return true
}

// Append adds v to the end of the collection
func (c *Collection[T]) Append(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(v.EntityID()) >= 0 {
		return ErrDuplicateID
	}
	c.items = append(c.items, v)
	return nil
}

// Remove deletes the entry with the given id and reports where it was
func (c *Collection[T]) Remove(id string) (T, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, -1, false
	}
	removed := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	return removed, i, true
}

// InsertAt puts v at index idx, or appends it when idx is out of range.
// Does nothing and returns false if v's id is already present.
func (c *Collection[T]) InsertAt(idx int, v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(v.EntityID()) >= 0 {
		return false
	}
	if idx < 0 || idx > len(c.items) {
		c.items = append(c.items, v)
		return true
	}
	c.items = slices.Insert(c.items, idx, v)
	return true
}

// Reset replaces the whole contents, keeping the first entry per id
func (c *Collection[T]) Reset(items []T) {
	seen := make(map[string]struct{}, len(items))
	fresh := make([]T, 0, len(items))
	for _, it := range items {
		id := it.EntityID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		fresh = append(fresh, it)
	}

	c.mu.Lock()
	c.items = fresh
	c.mu.Unlock()
}

// indexOf ищет позицию записи; вызывающий держит блокировку
func (c *Collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(it T) bool {
		return it.EntityID() == id
	})
}
