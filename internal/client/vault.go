package client

import (
	"context"
	"net/http"
	"net/url"

	"inspovault/internal/filter"
	"inspovault/internal/models"
	"inspovault/internal/vault"
)

func path(prefix, id, suffix string) string {
	return prefix + "/" + url.PathEscape(id) + suffix
}

// Health returns the server liveness report.
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var out models.HealthResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: "/health"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Calendars returns the calendar catalog.
func (c *Client) Calendars(ctx context.Context) ([]models.CalendarResponse, error) {
	var out []models.CalendarResponse
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/calendars"}, &out)
	return out, err
}

// ListItems returns the items matching q.
func (c *Client) ListItems(ctx context.Context, q filter.ItemQuery) ([]models.InspoItem, error) {
	params := map[string]string{
		"q":          q.Search,
		"tag":        q.Tag,
		"collection": q.CollectionID,
	}
	if q.Status != filter.StatusAll {
		params["status"] = string(q.Status)
	}
	if q.Platform != filter.PlatformAll {
		params["platform"] = string(q.Platform)
	}

	var out []models.InspoItem
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/items", params: params}, &out)
	return out, err
}

// GetItem returns a single item.
func (c *Client) GetItem(ctx context.Context, id string) (*models.InspoItem, error) {
	var out models.InspoItem
	if err := c.do(ctx, request{method: http.MethodGet, path: path("/api/v1/items", id, "")}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type createItemRequest struct {
	URL       string   `json:"url"`
	Calendar  string   `json:"calendar"`
	Platform  string   `json:"platform,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Title     string   `json:"title,omitempty"`
	Account   string   `json:"account,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
}

// CreateItem saves a new inspiration item.
func (c *Client) CreateItem(ctx context.Context, in vault.NewInspoItem) (*models.InspoItem, error) {
	body := createItemRequest{
		URL:       in.URL,
		Calendar:  in.Destination.Calendar,
		Platform:  string(in.Platform),
		Tags:      in.Tags,
		Notes:     in.Notes,
		Title:     in.Title,
		Account:   in.Account,
		Thumbnail: in.Thumbnail,
	}

	var out models.InspoItem
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/v1/items", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleUsed flips the used flag of an item.
func (c *Client) ToggleUsed(ctx context.Context, id string) (*models.InspoItem, error) {
	var out models.InspoItem
	if err := c.do(ctx, request{method: http.MethodPost, path: path("/api/v1/items", id, "/toggle-used")}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShareItem creates a share link for an item and returns the item URL.
func (c *Client) ShareItem(ctx context.Context, id string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := c.do(ctx, request{method: http.MethodPost, path: path("/api/v1/items", id, "/share")}, &out)
	return out.URL, err
}

// ListCollections returns all collections.
func (c *Client) ListCollections(ctx context.Context) ([]models.Collection, error) {
	var out []models.Collection
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/collections"}, &out)
	return out, err
}

// CreateCollection creates a collection.
func (c *Client) CreateCollection(ctx context.Context, name, description string) (*models.Collection, error) {
	body := map[string]string{"name": name, "description": description}

	var out models.Collection
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/v1/collections", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShareCollection shares a collection with one more member.
func (c *Client) ShareCollection(ctx context.Context, id string) (*models.Collection, error) {
	var out models.Collection
	if err := c.do(ctx, request{method: http.MethodPost, path: path("/api/v1/collections", id, "/share")}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddItemToCollection files an item under a collection.
func (c *Client) AddItemToCollection(ctx context.Context, collectionID, itemID string) (*models.Collection, error) {
	body := map[string]string{"item_id": itemID}

	var out models.Collection
	if err := c.do(ctx, request{method: http.MethodPost, path: path("/api/v1/collections", collectionID, "/items"), body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSharedItems returns the shared items matching q.
func (c *Client) ListSharedItems(ctx context.Context, q filter.SharedQuery) ([]models.SharedItem, error) {
	params := map[string]string{"q": q.Search}
	if q.Type != filter.TypeAll {
		params["type"] = string(q.Type)
	}

	var out []models.SharedItem
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/shared", params: params}, &out)
	return out, err
}

// UpdatePermission sets the permission level of a shared item.
func (c *Client) UpdatePermission(ctx context.Context, id string, level models.Permission) (*models.SharedItem, error) {
	body := map[string]string{"permission": string(level)}

	var out models.SharedItem
	if err := c.do(ctx, request{method: http.MethodPut, path: path("/api/v1/shared", id, "/permission"), body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CopyLink returns the share link of a shared item.
func (c *Client) CopyLink(ctx context.Context, id string) (string, error) {
	var out struct {
		Link string `json:"link"`
	}
	err := c.do(ctx, request{method: http.MethodPost, path: path("/api/v1/shared", id, "/copy-link")}, &out)
	return out.Link, err
}

// Notifications returns the visible notifications.
func (c *Client) Notifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/notifications"}, &out)
	return out, err
}

// DismissNotification removes a notification before it expires.
func (c *Client) DismissNotification(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: path("/api/v1/notifications", id, "")}, nil)
}
