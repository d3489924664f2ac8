package vault

import (
	"log/slog"
	"strings"

	"inspovault/internal/models"
	"inspovault/internal/notify"
	"inspovault/internal/validation"
)

// ListCollections returns all collections.
func (s *Service) ListCollections() []models.Collection {
	return s.store.ListCollections()
}

// CreateCollection validates the name and appends an empty, unshared
// collection. On a validation failure nothing is stored and a *Rejection is
// returned.
func (s *Service) CreateCollection(name, description string) (*models.Collection, error) {
	if err := validation.ValidateCollection(name); err != nil {
		return nil, s.reject(err)
	}

	c, err := s.store.CreateCollection(strings.TrimSpace(name), description)
	if err != nil {
		return nil, err
	}

	slog.Info("collection created", "id", c.ID, "name", c.Name)
	s.notifier.Toast(notify.Toast{
		Title:       "Collection Created",
		Description: "Your new collection has been created successfully.",
	})
	return c, nil
}

// ShareCollection shares a collection with one more member.
func (s *Service) ShareCollection(id string) (*models.Collection, error) {
	c, err := s.store.ShareCollection(id)
	if err != nil {
		return nil, err
	}

	slog.Info("collection shared", "id", c.ID, "members", c.Members)
	s.notifier.Toast(notify.Toast{
		Title:       "Collection Shared",
		Description: "Share link copied to clipboard. Your team can now view this collection.",
	})
	return c, nil
}

// AddItemToCollection files an item under a collection.
func (s *Service) AddItemToCollection(itemID, collectionID string) (*models.Collection, error) {
	c, err := s.store.AddItemToCollection(itemID, collectionID)
	if err != nil {
		return nil, err
	}
	s.notifier.Toast(notify.Toast{
		Title:       "Added to Collection",
		Description: "The inspiration was added to " + c.Name + ".",
	})
	return c, nil
}
