// Package vault composes the store, the filter engine, validation and the
// notification channel into the operations the views call.
package vault

import (
	"errors"
	"log/slog"

	"github.com/samber/lo"

	"inspovault/internal/models"
	"inspovault/internal/notify"
	"inspovault/internal/store"
	"inspovault/internal/validation"
)

// Rejection is returned when a creation flow fails validation. The failure
// has already been reported to the user through NotificationID.
type Rejection struct {
	NotificationID string
	Err            *validation.Error
}

func (r *Rejection) Error() string {
	return r.Err.Error()
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

// Service exposes the vault operations.
type Service struct {
	store     *store.Store
	notifier  *notify.Center
	calendars []models.Calendar
}

// New creates a vault service. An empty calendar catalog disables the
// calendar membership check on new items.
func New(s *store.Store, notifier *notify.Center, calendars []models.Calendar) *Service {
	return &Service{store: s, notifier: notifier, calendars: calendars}
}

// Notifications returns the notification center the service reports to.
func (s *Service) Notifications() *notify.Center {
	return s.notifier
}

// Store returns the underlying store.
func (s *Service) Store() *store.Store {
	return s.store
}

// Calendars returns the calendar catalog.
func (s *Service) Calendars() []models.Calendar {
	out := make([]models.Calendar, len(s.calendars))
	copy(out, s.calendars)
	return out
}

// reject reports a validation failure to the user and wraps it.
func (s *Service) reject(err error) error {
	var ve *validation.Error
	if !errors.As(err, &ve) {
		return err
	}
	id := s.notifier.Error("Missing Information", ve.Message)
	slog.Info("creation rejected", "field", ve.Field, "reason", ve.Message)
	return &Rejection{NotificationID: id, Err: ve}
}

func (s *Service) hasCalendar(id string) bool {
	if len(s.calendars) == 0 {
		return true
	}
	return lo.ContainsBy(s.calendars, func(c models.Calendar) bool {
		return c.ID == id
	})
}
