package store

import (
	"fmt"

	"inspovault/internal/models"
)

// ListCollections returns all collections in insertion order.
func (s *Store) ListCollections() []models.Collection {
	return s.collections.List()
}

// GetCollectionByID returns a collection by ID.
func (s *Store) GetCollectionByID(id string) (*models.Collection, error) {
	c, ok := s.collections.Get(id)
	if !ok {
		return nil, ErrCollectionNotFound
	}
	return &c, nil
}

// CreateCollection appends a new, unshared and empty collection with a
// generated ID. Name validation is the caller's job.
func (s *Store) CreateCollection(name, description string) (*models.Collection, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	c := models.Collection{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		Thumbnails:  []string{},
		ItemCount:   0,
		Shared:      false,
		Members:     0,
	}
	if err := s.collections.Insert(c); err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}
	return &c, nil
}

// ShareCollection marks the collection as shared and adds one member.
// Every call adds a member, including calls on an already shared collection.
func (s *Store) ShareCollection(id string) (*models.Collection, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	c, ok := s.collections.Update(id, func(c *models.Collection) {
		c.Shared = true
		c.Members++
	})
	if !ok {
		return nil, ErrCollectionNotFound
	}
	return &c, nil
}
