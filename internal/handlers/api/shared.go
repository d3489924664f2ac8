package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"inspovault/internal/filter"
	"inspovault/internal/models"
	"inspovault/internal/vault"
)

// SharedHandler handles the team collaboration view via JSON API.
type SharedHandler struct {
	svc *vault.Service
}

// NewSharedHandler creates a new API shared item handler.
func NewSharedHandler(svc *vault.Service) *SharedHandler {
	return &SharedHandler{svc: svc}
}

// List returns shared items filtered by type and name.
func (h *SharedHandler) List(c fiber.Ctx) error {
	typ, err := filter.ParseSharedType(c.Query("type"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return jsonSuccess(c, h.svc.ListSharedItems(filter.SharedQuery{
		Search: c.Query("q"),
		Type:   typ,
	}))
}

// UpdatePermission sets the permission level of a shared item.
func (h *SharedHandler) UpdatePermission(c fiber.Ctx) error {
	var body struct {
		Permission string `json:"permission"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	level, err := models.ParsePermission(body.Permission)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	item, err := h.svc.UpdatePermission(c.Params("id"), level)
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, item)
}

// CopyLink returns the share link of a shared item.
func (h *SharedHandler) CopyLink(c fiber.Ctx) error {
	link, err := h.svc.CopyLink(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, fiber.Map{"link": link})
}

// OpenComments opens the comment thread of a shared item.
func (h *SharedHandler) OpenComments(c fiber.Ctx) error {
	item, err := h.svc.OpenComments(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, fiber.Map{
		"id":       item.ID,
		"comments": item.Comments,
	})
}
