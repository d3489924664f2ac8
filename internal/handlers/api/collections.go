package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"inspovault/internal/vault"
)

// CollectionHandler handles collection operations via JSON API.
type CollectionHandler struct {
	svc *vault.Service
}

// NewCollectionHandler creates a new API collection handler.
func NewCollectionHandler(svc *vault.Service) *CollectionHandler {
	return &CollectionHandler{svc: svc}
}

// List returns all collections.
func (h *CollectionHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, h.svc.ListCollections())
}

// Create creates a new collection.
func (h *CollectionHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	collection, err := h.svc.CreateCollection(body.Name, body.Description)
	if err != nil {
		return serviceError(c, err)
	}
	return jsonCreated(c, collection)
}

// Share shares a collection with one more member.
func (h *CollectionHandler) Share(c fiber.Ctx) error {
	collection, err := h.svc.ShareCollection(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, collection)
}

// AddItem files an item under a collection.
func (h *CollectionHandler) AddItem(c fiber.Ctx) error {
	var body struct {
		ItemID string `json:"item_id"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil || body.ItemID == "" {
		return jsonError(c, fiber.StatusBadRequest, "item_id is required")
	}

	collection, err := h.svc.AddItemToCollection(body.ItemID, c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, collection)
}
