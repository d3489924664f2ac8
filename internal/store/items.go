package store

import (
	"fmt"

	"inspovault/internal/models"
)

// ListItems returns all inspiration items in insertion order.
func (s *Store) ListItems() []models.InspoItem {
	return s.items.List()
}

// GetItemByID returns an inspiration item by ID.
func (s *Store) GetItemByID(id string) (*models.InspoItem, error) {
	item, ok := s.items.Get(id)
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

// CreateItem appends a new inspiration item. An empty ID is replaced with a
// generated one and a zero DateAdded is set to the current time. The item's
// ID and DateAdded fields are updated in place.
func (s *Store) CreateItem(item *models.InspoItem) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if item.ID == "" {
		item.ID = s.newID()
	}
	if item.DateAdded.IsZero() {
		item.DateAdded = s.now()
	}
	item.Tags = models.NormalizeTags(item.Tags)
	if item.Tags == nil {
		item.Tags = []string{}
	}

	if err := s.items.Insert(*item); err != nil {
		return fmt.Errorf("failed to create item %s: %w", item.ID, err)
	}
	return nil
}

// ToggleUsed flips the used flag of a single item and returns the updated item.
func (s *Store) ToggleUsed(id string) (*models.InspoItem, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	item, ok := s.items.Update(id, func(i *models.InspoItem) {
		i.Used = !i.Used
	})
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

// AddItemToCollection records the item as a member of the collection. The
// collection's item count grows by one and the item's thumbnail is appended
// to the collection's thumbnails. Adding an item twice is a no-op.
func (s *Store) AddItemToCollection(itemID, collectionID string) (*models.Collection, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	item, ok := s.items.Get(itemID)
	if !ok {
		return nil, ErrItemNotFound
	}
	collection, ok := s.collections.Get(collectionID)
	if !ok {
		return nil, ErrCollectionNotFound
	}
	if item.InCollection(collectionID) {
		return &collection, nil
	}

	s.items.Update(itemID, func(i *models.InspoItem) {
		i.CollectionIDs = append(i.CollectionIDs, collectionID)
	})
	updated, _ := s.collections.Update(collectionID, func(c *models.Collection) {
		c.ItemCount++
		if item.Thumbnail != "" {
			c.Thumbnails = append(c.Thumbnails, item.Thumbnail)
		}
	})
	return &updated, nil
}
