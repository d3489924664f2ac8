package models

import "strings"

// Calendar is a labeled content-planning bucket an item can be assigned to.
type Calendar struct {
	ID    string `json:"id" yaml:"id"`       // hyphenated key, e.g. "march-campaign"
	Label string `json:"label" yaml:"label"` // human label, e.g. "March Campaign"
}

// CalendarDisplayName formats a calendar key for display by replacing
// hyphens with spaces. Matching always uses the raw key.
func CalendarDisplayName(key string) string {
	return strings.ReplaceAll(key, "-", " ")
}

// DefaultCalendars is the calendar catalog used when no config file overrides it.
var DefaultCalendars = []Calendar{
	{ID: "march-campaign", Label: "March Campaign"},
	{ID: "general-content", Label: "General Content"},
	{ID: "product-launch", Label: "Product Launch"},
	{ID: "trending", Label: "Trending Ideas"},
}

// Destination assigns a new inspiration item to exactly one calendar.
type Destination struct {
	Calendar string `json:"calendar"`
}
