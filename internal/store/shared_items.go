package store

import (
	"inspovault/internal/models"
)

// ListSharedItems returns all items shared with the team in insertion order.
func (s *Store) ListSharedItems() []models.SharedItem {
	return s.shared.List()
}

// GetSharedItemByID returns a shared item by ID.
func (s *Store) GetSharedItemByID(id string) (*models.SharedItem, error) {
	item, ok := s.shared.Get(id)
	if !ok {
		return nil, ErrSharedItemNotFound
	}
	return &item, nil
}

// UpdatePermission sets the permission level of a shared item.
func (s *Store) UpdatePermission(id string, level models.Permission) (*models.SharedItem, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	item, ok := s.shared.Update(id, func(i *models.SharedItem) {
		i.Permission = level
	})
	if !ok {
		return nil, ErrSharedItemNotFound
	}
	return &item, nil
}
