package models

// VaultStats summarizes the store contents.
type VaultStats struct {
	Items             int              `json:"items"`
	UsedItems         int              `json:"used_items"`
	ItemsByPlatform   map[Platform]int `json:"items_by_platform"`
	Collections       int              `json:"collections"`
	SharedCollections int              `json:"shared_collections"`
	SharedItems       int              `json:"shared_items"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Healthy       bool       `json:"healthy"`
	Stats         VaultStats `json:"stats"`
	Notifications int        `json:"notifications"`
}

// CalendarResponse is a calendar with its display name.
type CalendarResponse struct {
	Calendar
	DisplayName string `json:"display_name"`
}
