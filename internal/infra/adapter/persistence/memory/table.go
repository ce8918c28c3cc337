// Package memory provides the default in-process storage backend.
//
// Each entity kind lives in its own table guarded by a sync.RWMutex. Rows are
// stored by value; every read hands out a copy and every write replaces the
// stored value, so callers can never mutate shared state.
package memory

import "sync"

// table is an insertion-ordered map of values keyed by id.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{
		rows:  make(map[string]T),
		clone: clone,
	}
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(v), true
}

// find returns the first row in insertion order that satisfies match.
func (t *table[T]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		if v := t.rows[id]; match(v) {
			return t.clone(v), true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.clone(t.rows[id]))
	}
	return out
}

func (t *table[T]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// insert stores v under id unless some existing row collides with it.
// The collision check and the write happen under one lock.
func (t *table[T]) insert(id string, v T, collides func(existing T) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if collides != nil {
		for _, existing := range t.rows {
			if collides(existing) {
				return false
			}
		}
	}
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = t.clone(v)
	return true
}

// update applies fn to a copy of the stored row unless the result collides
// with another row. The read, the collision check and the write happen under
// one lock, so fn sees the latest value of every field it does not set.
func (t *table[T]) update(id string, fn func(*T), collides func(existing T) bool) (v T, found, conflict bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur, ok := t.rows[id]
	if !ok {
		return v, false, false
	}
	next := t.clone(cur)
	fn(&next)
	if collides != nil {
		for otherID, existing := range t.rows {
			if otherID != id && collides(existing) {
				return v, true, true
			}
		}
	}
	t.rows[id] = next
	return t.clone(next), true, false
}

// mutate applies fn to a copy of the row and stores the result.
func (t *table[T]) mutate(id string, fn func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	next := t.clone(v)
	fn(&next)
	t.rows[id] = next
	return t.clone(next), true
}

func (t *table[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}
