// Package filter implements the pure predicates behind the vault and
// collaboration views. Results are always an order-preserving subsequence of
// the input.
package filter

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"inspovault/internal/models"
)

// Status selects items by their used flag.
type Status string

// Status filter values
const (
	StatusAll    Status = "all"
	StatusUsed   Status = "used"
	StatusUnused Status = "unused"
)

// PlatformAll matches every platform.
const PlatformAll models.Platform = "all"

// ParseStatus converts user input into a Status. Empty input means all.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case "":
		return StatusAll, nil
	case StatusAll, StatusUsed, StatusUnused:
		return st, nil
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// ParsePlatform converts user input into a platform filter. Empty input
// means all.
func ParsePlatform(s string) (models.Platform, error) {
	if s == "" || s == string(PlatformAll) {
		return PlatformAll, nil
	}
	return models.ParsePlatform(s)
}

// ItemQuery is the filter configuration of the vault view. The zero value
// matches every item.
type ItemQuery struct {
	Search       string
	Status       Status
	Platform     models.Platform
	Tag          string
	CollectionID string
}

// Items returns the items matching every predicate of q, in input order.
func Items(items []models.InspoItem, q ItemQuery) []models.InspoItem {
	search := strings.ToLower(q.Search)
	return lo.Filter(items, func(item models.InspoItem, _ int) bool {
		return matchesSearch(item, search) &&
			matchesStatus(item, q.Status) &&
			matchesPlatform(item, q.Platform) &&
			matchesTag(item, q.Tag) &&
			matchesCollection(item, q.CollectionID)
	})
}

// matchesSearch checks tags, notes and the raw calendar key. search must
// already be lowercased.
func matchesSearch(item models.InspoItem, search string) bool {
	if search == "" {
		return true
	}
	return lo.SomeBy(item.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), search)
	}) ||
		strings.Contains(strings.ToLower(item.Notes), search) ||
		strings.Contains(strings.ToLower(item.Calendar), search)
}

func matchesStatus(item models.InspoItem, status Status) bool {
	switch status {
	case StatusUsed:
		return item.Used
	case StatusUnused:
		return !item.Used
	default:
		return true
	}
}

func matchesPlatform(item models.InspoItem, platform models.Platform) bool {
	return platform == "" || platform == PlatformAll || platform == item.Platform
}

func matchesTag(item models.InspoItem, tag string) bool {
	return tag == "" || models.HasTag(item.Tags, tag)
}

func matchesCollection(item models.InspoItem, collectionID string) bool {
	return collectionID == "" || item.InCollection(collectionID)
}
