package filter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspovault/internal/models"
)

func sampleItems() []models.InspoItem {
	return []models.InspoItem{
		{ID: "1", Platform: models.PlatformTikTok, Used: false, Tags: []string{"funny"}, Calendar: "march-campaign", Notes: "Funny dance trend"},
		{ID: "2", Platform: models.PlatformInstagram, Used: true, Tags: []string{"trend"}, Calendar: "product-launch", Notes: "Great reveal", CollectionIDs: []string{"c1"}},
		{ID: "3", Platform: models.PlatformYouTube, Used: false, Tags: []string{"Tutorial", "howto"}, Calendar: "trending", Notes: "Step-by-step"},
	}
}

func ids(items []models.InspoItem) []string {
	out := []string{}
	for _, i := range items {
		out = append(out, i.ID)
	}
	return out
}

func TestItems_ExampleQueries(t *testing.T) {
	items := []models.InspoItem{
		{ID: "1", Platform: models.PlatformTikTok, Used: false, Tags: []string{"funny"}},
		{ID: "2", Platform: models.PlatformInstagram, Used: true, Tags: []string{"trend"}},
	}

	assert.Equal(t, []string{"1"}, ids(Items(items, ItemQuery{Status: StatusUnused})))
	assert.Equal(t, []string{"2"}, ids(Items(items, ItemQuery{Platform: models.PlatformInstagram})))
	assert.Equal(t, []string{"2"}, ids(Items(items, ItemQuery{Search: "trend"})))
}

func TestItems_Predicates(t *testing.T) {
	tests := []struct {
		name  string
		query ItemQuery
		want  []string
	}{
		{"zero value matches all", ItemQuery{}, []string{"1", "2", "3"}},
		{"explicit all", ItemQuery{Status: StatusAll, Platform: PlatformAll}, []string{"1", "2", "3"}},
		{"used", ItemQuery{Status: StatusUsed}, []string{"2"}},
		{"unused", ItemQuery{Status: StatusUnused}, []string{"1", "3"}},
		{"platform", ItemQuery{Platform: models.PlatformYouTube}, []string{"3"}},
		{"platform without matches", ItemQuery{Platform: models.PlatformLinkedIn}, []string{}},
		{"search tag case-insensitive", ItemQuery{Search: "TUTORIAL"}, []string{"3"}},
		{"search notes", ItemQuery{Search: "dance"}, []string{"1"}},
		{"search calendar with hyphen", ItemQuery{Search: "march-camp"}, []string{"1"}},
		{"search calendar with space does not match key", ItemQuery{Search: "march camp"}, []string{}},
		{"search matches tag substring", ItemQuery{Search: "tren"}, []string{"1", "2", "3"}},
		{"combined search and status", ItemQuery{Search: "tren", Status: StatusUnused}, []string{"1", "3"}},
		{"combined search status platform", ItemQuery{Search: "tren", Status: StatusUnused, Platform: models.PlatformTikTok}, []string{"1"}},
		{"tag exact", ItemQuery{Tag: "howto"}, []string{"3"}},
		{"tag is case-sensitive", ItemQuery{Tag: "tutorial"}, []string{}},
		{"collection membership", ItemQuery{CollectionID: "c1"}, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Items(sampleItems(), tt.query)))
		})
	}
}

func TestItems_EmptyInput(t *testing.T) {
	assert.Empty(t, Items(nil, ItemQuery{Search: "x"}))
}

func TestItems_DoesNotMutateInput(t *testing.T) {
	items := sampleItems()
	_ = Items(items, ItemQuery{Status: StatusUsed})
	assert.Equal(t, sampleItems(), items)
}

// Output is always an order-preserving subsequence of the input.
func TestItems_Subsequence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	platforms := append([]models.Platform{PlatformAll}, models.Platforms...)
	statuses := []Status{StatusAll, StatusUsed, StatusUnused}
	words := []string{"", "a", "trend", "FUN", "-", "launch"}

	for n := 0; n < 200; n++ {
		var items []models.InspoItem
		size := rng.Intn(8)
		for i := 0; i < size; i++ {
			items = append(items, models.InspoItem{
				ID:       string(rune('a' + i)),
				Platform: models.Platforms[rng.Intn(len(models.Platforms))],
				Used:     rng.Intn(2) == 0,
				Tags:     []string{words[rng.Intn(len(words))]},
				Notes:    words[rng.Intn(len(words))],
				Calendar: words[rng.Intn(len(words))] + "-launch",
			})
		}
		q := ItemQuery{
			Search:   words[rng.Intn(len(words))],
			Status:   statuses[rng.Intn(len(statuses))],
			Platform: platforms[rng.Intn(len(platforms))],
		}

		got := Items(items, q)
		j := 0
		for _, g := range got {
			for j < len(items) && items[j].ID != g.ID {
				j++
			}
			require.Less(t, j, len(items), "result %v is not a subsequence for query %+v", ids(got), q)
			j++
		}
		assert.Equal(t, got, Items(items, q), "filter must be deterministic")
	}
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusAll, st)

	st, err = ParseStatus("unused")
	require.NoError(t, err)
	assert.Equal(t, StatusUnused, st)

	_, err = ParseStatus("archived")
	assert.Error(t, err)
}

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform("all")
	require.NoError(t, err)
	assert.Equal(t, PlatformAll, p)

	p, err = ParsePlatform("")
	require.NoError(t, err)
	assert.Equal(t, PlatformAll, p)

	p, err = ParsePlatform("linkedin")
	require.NoError(t, err)
	assert.Equal(t, models.PlatformLinkedIn, p)

	_, err = ParsePlatform("myspace")
	assert.Error(t, err)
}
