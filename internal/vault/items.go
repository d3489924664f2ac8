package vault

import (
	"log/slog"
	"strings"

	"inspovault/internal/filter"
	"inspovault/internal/models"
	"inspovault/internal/notify"
	"inspovault/internal/validation"
)

// NewInspoItem holds the fields of the save-inspiration form.
type NewInspoItem struct {
	URL         string
	Destination models.Destination
	Platform    models.Platform // empty means detect from URL
	Tags        []string
	Notes       string
	Title       string
	Account     string
	Thumbnail   string
}

// ListItems returns the items matching q.
func (s *Service) ListItems(q filter.ItemQuery) []models.InspoItem {
	return filter.Items(s.store.ListItems(), q)
}

// GetItem returns a single item.
func (s *Service) GetItem(id string) (*models.InspoItem, error) {
	return s.store.GetItemByID(id)
}

// CreateInspoItem validates the form and appends a new, unused item.
// On a validation failure nothing is stored and a *Rejection is returned.
func (s *Service) CreateInspoItem(in NewInspoItem) (*models.InspoItem, error) {
	if err := validation.ValidateInspoItem(in.URL, in.Destination.Calendar); err != nil {
		return nil, s.reject(err)
	}
	calendar := strings.TrimSpace(in.Destination.Calendar)
	if !s.hasCalendar(calendar) {
		return nil, s.reject(&validation.Error{
			Field:   "calendar",
			Message: "Please select one of the available calendars.",
		})
	}

	url := strings.TrimSpace(in.URL)
	platform := in.Platform
	if platform == "" {
		platform = models.DetectPlatform(url)
	} else if _, err := models.ParsePlatform(string(platform)); err != nil {
		return nil, s.reject(&validation.Error{
			Field:   "platform",
			Message: "Please select one of the supported platforms.",
		})
	}

	item := &models.InspoItem{
		URL:       url,
		Platform:  platform,
		Calendar:  calendar,
		Tags:      models.NormalizeTags(in.Tags),
		Notes:     in.Notes,
		Thumbnail: in.Thumbnail,
		Title:     in.Title,
		Account:   in.Account,
	}
	if err := s.store.CreateItem(item); err != nil {
		return nil, err
	}

	slog.Info("inspiration saved", "id", item.ID, "platform", item.Platform, "calendar", item.Calendar)
	s.notifier.Toast(notify.Toast{
		Title:       "Inspiration Saved!",
		Description: "Your content has been added to your vault.",
	})
	return item, nil
}

// ToggleUsed flips the used flag of an item and tells the user which way it went.
func (s *Service) ToggleUsed(id string) (*models.InspoItem, error) {
	item, err := s.store.ToggleUsed(id)
	if err != nil {
		return nil, err
	}

	if item.Used {
		s.notifier.Toast(notify.Toast{
			Title:       "Inspiration Marked as Used",
			Description: "This item has been marked as used in your content.",
		})
	} else {
		s.notifier.Toast(notify.Toast{
			Title:       "Inspiration Unmarked",
			Description: "This item is now back in your active inspiration pool.",
		})
	}
	return item, nil
}

// ShareItem creates a share link for an item. Sharing an item changes no
// state; the user is notified that the link is ready.
func (s *Service) ShareItem(id string) (*models.InspoItem, error) {
	item, err := s.store.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	s.notifier.Toast(notify.Toast{
		Title:       "Share Link Created",
		Description: "Share link copied to clipboard. Your team can now view this inspiration.",
	})
	return item, nil
}
