package store

import (
	"sync"
)

// Entity is a value that can be stored in a Repository.
type Entity[T any] interface {
	Key() string
	Clone() T
}

// Repository maps identifiers to entities and remembers insertion order.
// Values are cloned on every read and write so callers never share
// backing arrays with stored entities.
type Repository[T Entity[T]] struct {
	mu    sync.RWMutex
	byID  map[string]T
	order []string
}

// NewRepository creates an empty repository.
func NewRepository[T Entity[T]]() *Repository[T] {
	return &Repository[T]{byID: make(map[string]T)}
}

// Get returns a copy of the entity with the given id.
func (r *Repository[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return v.Clone(), true
}

// List returns copies of all entities in insertion order.
func (r *Repository[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

// Len returns the number of stored entities.
func (r *Repository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Insert adds a new entity. It fails with ErrDuplicateID if the key is taken.
func (r *Repository[T]) Insert(v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := v.Key()
	if _, exists := r.byID[id]; exists {
		return ErrDuplicateID
	}
	r.byID[id] = v.Clone()
	r.order = append(r.order, id)
	return nil
}

// Upsert inserts the entity or replaces the existing one in place,
// keeping its original position.
func (r *Repository[T]) Upsert(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := v.Key()
	if _, exists := r.byID[id]; !exists {
		r.order = append(r.order, id)
	}
	r.byID[id] = v.Clone()
}

// Update applies fn to the stored entity under the write lock and returns a
// copy of the result. It returns false without calling fn if id is absent.
// fn must not change the entity's key.
func (r *Repository[T]) Update(id string, fn func(*T)) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(&v)
	r.byID[id] = v
	return v.Clone(), true
}
