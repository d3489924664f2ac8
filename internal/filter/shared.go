package filter

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"inspovault/internal/models"
)

// TypeAll matches shared items of every type.
const TypeAll models.SharedItemType = "all"

// ParseSharedType converts user input into a shared item type filter.
// "collections" is accepted as an alias for "collection".
func ParseSharedType(s string) (models.SharedItemType, error) {
	switch s {
	case "", string(TypeAll):
		return TypeAll, nil
	case string(models.SharedTypeInspo):
		return models.SharedTypeInspo, nil
	case string(models.SharedTypeCollection), "collections":
		return models.SharedTypeCollection, nil
	}
	return "", fmt.Errorf("unknown shared item type %q", s)
}

// SharedQuery is the filter configuration of the collaboration view.
type SharedQuery struct {
	Search string
	Type   models.SharedItemType
}

// SharedItems returns the shared items whose type matches and whose name
// contains the search term, case-insensitively.
func SharedItems(items []models.SharedItem, q SharedQuery) []models.SharedItem {
	search := strings.ToLower(q.Search)
	return lo.Filter(items, func(item models.SharedItem, _ int) bool {
		matchesType := q.Type == "" || q.Type == TypeAll || q.Type == item.Type
		matchesSearch := search == "" || strings.Contains(strings.ToLower(item.Name), search)
		return matchesType && matchesSearch
	})
}
