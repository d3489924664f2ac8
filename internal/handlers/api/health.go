package api

import (
	"github.com/gofiber/fiber/v3"

	"inspovault/internal/models"
	"inspovault/internal/vault"
)

// HealthHandler reports liveness and the vault contents.
type HealthHandler struct {
	svc *vault.Service
}

// NewHealthHandler creates a new API health handler.
func NewHealthHandler(svc *vault.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Check returns the store counts.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return jsonSuccess(c, models.HealthResponse{
		Healthy:       true,
		Stats:         h.svc.Store().Stats(),
		Notifications: h.svc.Notifications().Len(),
	})
}

// Calendars returns the calendar catalog with display names.
func (h *HealthHandler) Calendars(c fiber.Ctx) error {
	calendars := h.svc.Calendars()
	out := make([]models.CalendarResponse, 0, len(calendars))
	for _, cal := range calendars {
		out = append(out, models.CalendarResponse{
			Calendar:    cal,
			DisplayName: models.CalendarDisplayName(cal.ID),
		})
	}
	return jsonSuccess(c, out)
}
