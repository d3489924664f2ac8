package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"inspovault/internal/models"
)

// Store holds the in-memory vault state: inspiration items, collections and
// items shared with the team.
type Store struct {
	// writeMu serializes mutations, including those spanning repositories.
	writeMu sync.Mutex

	items       *Repository[models.InspoItem]
	collections *Repository[models.Collection]
	shared      *Repository[models.SharedItem]

	newID func() string
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides how identifiers are generated for new records.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock overrides the time source used for creation dates.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		items:       NewRepository[models.InspoItem](),
		collections: NewRepository[models.Collection](),
		shared:      NewRepository[models.SharedItem](),
		newID:       uuid.NewString,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns counts over the current contents.
func (s *Store) Stats() models.VaultStats {
	st := models.VaultStats{ItemsByPlatform: make(map[models.Platform]int)}

	for _, item := range s.items.List() {
		st.Items++
		if item.Used {
			st.UsedItems++
		}
		st.ItemsByPlatform[item.Platform]++
	}
	for _, c := range s.collections.List() {
		st.Collections++
		if c.Shared {
			st.SharedCollections++
		}
	}
	st.SharedItems = s.shared.Len()

	return st
}
