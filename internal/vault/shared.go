package vault

import (
	"fmt"
	"log/slog"

	"inspovault/internal/filter"
	"inspovault/internal/models"
	"inspovault/internal/notify"
	"inspovault/internal/validation"
)

// ListSharedItems returns the shared items matching q.
func (s *Service) ListSharedItems(q filter.SharedQuery) []models.SharedItem {
	return filter.SharedItems(s.store.ListSharedItems(), q)
}

// UpdatePermission sets the permission level of a shared item. An unknown
// level fails with a *validation.Error and leaves the item unchanged.
func (s *Service) UpdatePermission(id string, level models.Permission) (*models.SharedItem, error) {
	if _, err := models.ParsePermission(string(level)); err != nil {
		return nil, &validation.Error{Field: "permission", Message: err.Error()}
	}

	item, err := s.store.UpdatePermission(id, level)
	if err != nil {
		return nil, err
	}

	slog.Info("permission updated", "id", item.ID, "permission", item.Permission)
	s.notifier.Toast(notify.Toast{
		Title:       "Permissions Updated",
		Description: fmt.Sprintf("Permissions set to %q for this shared item.", level),
	})
	return item, nil
}

// CopyLink returns the share link of a shared item.
func (s *Service) CopyLink(id string) (string, error) {
	item, err := s.store.GetSharedItemByID(id)
	if err != nil {
		return "", err
	}
	s.notifier.Toast(notify.Toast{
		Title:       "Link Copied",
		Description: "Share link copied to your clipboard.",
	})
	return item.Link, nil
}

// OpenComments opens the comment thread of a shared item. Threads are not
// implemented yet, so the user is told so.
func (s *Service) OpenComments(id string) (*models.SharedItem, error) {
	item, err := s.store.GetSharedItemByID(id)
	if err != nil {
		return nil, err
	}
	s.notifier.Toast(notify.Toast{
		Title:       "Comments Feature",
		Description: "Comment functionality coming soon!",
	})
	return item, nil
}
