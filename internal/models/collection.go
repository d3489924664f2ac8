package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Collection is a named, optionally shared grouping of inspiration items.
type Collection struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Thumbnails  []string `json:"thumbnails" yaml:"thumbnails"`
	ItemCount   int      `json:"item_count" yaml:"item_count"`
	Shared      bool     `json:"shared" yaml:"shared"`
	Members     int      `json:"members" yaml:"members"` // incremented on every share
}

// Key returns the collection's identifier.
func (c Collection) Key() string {
	return c.ID
}

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	c.Thumbnails = slices.Clone(c.Thumbnails)
	return c
}

// Validate checks the invariants every stored collection holds. A collection
// with members must be shared.
func (c Collection) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if c.ItemCount < 0 || c.Members < 0 {
		return fmt.Errorf("negative counters (item_count %d, members %d)", c.ItemCount, c.Members)
	}
	if c.Members > 0 && !c.Shared {
		return fmt.Errorf("%d members on an unshared collection", c.Members)
	}
	return nil
}
