package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"inspovault/internal/filter"
	"inspovault/internal/models"
	"inspovault/internal/vault"
)

// ItemHandler handles inspiration item operations via JSON API.
type ItemHandler struct {
	svc *vault.Service
}

// NewItemHandler creates a new API item handler.
func NewItemHandler(svc *vault.Service) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// List returns items matching the search, status, platform, tag and
// collection query parameters.
func (h *ItemHandler) List(c fiber.Ctx) error {
	status, err := filter.ParseStatus(c.Query("status"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	platform, err := filter.ParsePlatform(c.Query("platform"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	items := h.svc.ListItems(filter.ItemQuery{
		Search:       c.Query("q"),
		Status:       status,
		Platform:     platform,
		Tag:          c.Query("tag"),
		CollectionID: c.Query("collection"),
	})
	return jsonSuccess(c, items)
}

// Get returns a single item by ID.
func (h *ItemHandler) Get(c fiber.Ctx) error {
	item, err := h.svc.GetItem(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, item)
}

// Create saves a new inspiration item.
func (h *ItemHandler) Create(c fiber.Ctx) error {
	var body struct {
		URL       string   `json:"url"`
		Calendar  string   `json:"calendar"`
		Platform  string   `json:"platform"`
		Tags      []string `json:"tags"`
		Notes     string   `json:"notes"`
		Title     string   `json:"title"`
		Account   string   `json:"account"`
		Thumbnail string   `json:"thumbnail"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	var platform models.Platform
	if body.Platform != "" {
		p, err := models.ParsePlatform(body.Platform)
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		platform = p
	}

	item, err := h.svc.CreateInspoItem(vault.NewInspoItem{
		URL:         body.URL,
		Destination: models.Destination{Calendar: body.Calendar},
		Platform:    platform,
		Tags:        body.Tags,
		Notes:       body.Notes,
		Title:       body.Title,
		Account:     body.Account,
		Thumbnail:   body.Thumbnail,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return jsonCreated(c, item)
}

// ToggleUsed flips the used flag of an item.
func (h *ItemHandler) ToggleUsed(c fiber.Ctx) error {
	item, err := h.svc.ToggleUsed(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, item)
}

// Share creates a share link for an item.
func (h *ItemHandler) Share(c fiber.Ctx) error {
	item, err := h.svc.ShareItem(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, fiber.Map{
		"item": item,
		"url":  item.URL,
	})
}
