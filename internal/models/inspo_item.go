package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// InspoItem is a saved reference to a social-media post plus annotations.
type InspoItem struct {
	ID            string    `json:"id" yaml:"id"`
	URL           string    `json:"url" yaml:"url"`
	Platform      Platform  `json:"platform" yaml:"platform"`
	Calendar      string    `json:"calendar" yaml:"calendar"`
	Tags          []string  `json:"tags" yaml:"tags"`
	Notes         string    `json:"notes" yaml:"notes"`
	Thumbnail     string    `json:"thumbnail" yaml:"thumbnail"`
	Used          bool      `json:"used" yaml:"used"`
	Likes         int       `json:"likes" yaml:"likes"`
	Comments      int       `json:"comments" yaml:"comments"`
	DateAdded     time.Time `json:"date_added" yaml:"date_added"`
	Title         string    `json:"title" yaml:"title"`
	Account       string    `json:"account" yaml:"account"`
	CollectionIDs []string  `json:"collection_ids" yaml:"collection_ids"`
}

// Key returns the item's identifier.
func (i InspoItem) Key() string {
	return i.ID
}

// Clone returns a deep copy of the item.
func (i InspoItem) Clone() InspoItem {
	i.Tags = slices.Clone(i.Tags)
	i.CollectionIDs = slices.Clone(i.CollectionIDs)
	return i
}

// Validate checks the invariants every stored item holds.
func (i InspoItem) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return errors.New("id is required")
	}
	if strings.TrimSpace(i.URL) == "" {
		return errors.New("url is required")
	}
	if _, err := ParsePlatform(string(i.Platform)); err != nil {
		return err
	}
	if i.Likes < 0 || i.Comments < 0 {
		return fmt.Errorf("negative counters (likes %d, comments %d)", i.Likes, i.Comments)
	}
	return nil
}

// InCollection returns true if the item belongs to the given collection.
func (i *InspoItem) InCollection(collectionID string) bool {
	return slices.Contains(i.CollectionIDs, collectionID)
}

// CalendarName returns the calendar key formatted for display.
func (i *InspoItem) CalendarName() string {
	return CalendarDisplayName(i.Calendar)
}
