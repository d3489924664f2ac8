package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"inspovault/internal/notify"
)

// NotificationHandler exposes the notification channel via JSON API.
type NotificationHandler struct {
	center *notify.Center
}

// NewNotificationHandler creates a new API notification handler.
func NewNotificationHandler(center *notify.Center) *NotificationHandler {
	return &NotificationHandler{center: center}
}

// List returns the visible notifications in insertion order.
func (h *NotificationHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, h.center.List())
}

// Create enqueues a notification and returns its ID.
func (h *NotificationHandler) Create(c fiber.Ctx) error {
	var body notificationRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	variant, err := body.variant()
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	id := h.center.Toast(notify.Toast{
		Title:       body.Title,
		Description: body.Description,
		Variant:     variant,
	})
	return jsonCreated(c, fiber.Map{"id": id})
}

// Dismiss removes a notification before it expires.
func (h *NotificationHandler) Dismiss(c fiber.Ctx) error {
	if !h.center.Dismiss(c.Params("id")) {
		return jsonError(c, fiber.StatusNotFound, "notification not found")
	}
	return jsonSuccess(c, fiber.Map{"dismissed": true})
}
