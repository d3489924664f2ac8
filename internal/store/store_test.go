package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspovault/internal/models"
)

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	seq := 0
	s := New(
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("new-%d", seq)
		}),
		WithClock(func() time.Time {
			return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		}),
	)
	require.NoError(t, s.Seed(DefaultSeed()))
	return s
}

func TestSeed_SkipsExisting(t *testing.T) {
	s := newSeededStore(t)
	require.NoError(t, s.Seed(DefaultSeed()))

	assert.Len(t, s.ListItems(), 4)
	assert.Len(t, s.ListCollections(), 3)
	assert.Len(t, s.ListSharedItems(), 3)
}

func TestSeed_RejectsInvalidRecords(t *testing.T) {
	validItem := models.InspoItem{ID: "i", URL: "https://tiktok.com/@a/video/1", Platform: models.PlatformTikTok}
	validCollection := models.Collection{ID: "c", Name: "Ideas"}
	validShared := models.SharedItem{ID: "s", Type: models.SharedTypeInspo, Permission: models.PermissionView}

	tests := []struct {
		name string
		data SeedData
	}{
		{"item without id", SeedData{Items: []models.InspoItem{{URL: "https://tiktok.com/@a/video/1"}}}},
		{"item without url", SeedData{Items: []models.InspoItem{{ID: "i", Platform: models.PlatformTikTok}}}},
		{"item with unknown platform", SeedData{Items: []models.InspoItem{{ID: "i", URL: "https://myspace.com/x", Platform: "myspace"}}}},
		{"item with negative likes", SeedData{Items: []models.InspoItem{{ID: "i", URL: "https://tiktok.com/@a/video/1", Likes: -5}}}},
		{"collection without id", SeedData{Collections: []models.Collection{{Name: "Ideas"}}}},
		{"collection with blank name", SeedData{Collections: []models.Collection{{ID: "c", Name: "   "}}}},
		{"collection with negative item count", SeedData{Collections: []models.Collection{{ID: "c", Name: "Ideas", ItemCount: -2}}}},
		{"unshared collection with members", SeedData{Collections: []models.Collection{{ID: "c", Name: "Ideas", Members: 7}}}},
		{"shared item with unknown type", SeedData{SharedItems: []models.SharedItem{{ID: "s", Type: "board", Permission: models.PermissionView}}}},
		{"shared item with unknown permission", SeedData{SharedItems: []models.SharedItem{{ID: "s", Type: models.SharedTypeInspo, Permission: "owner"}}}},
		{"shared item with negative comments", SeedData{SharedItems: []models.SharedItem{{ID: "s", Type: models.SharedTypeInspo, Permission: models.PermissionView, Comments: -1}}}},
		{"invalid record after valid ones", SeedData{
			Items:       []models.InspoItem{validItem},
			Collections: []models.Collection{validCollection, {ID: "bad", Name: ""}},
			SharedItems: []models.SharedItem{validShared},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			err := s.Seed(tt.data)
			assert.ErrorIs(t, err, ErrInvalidRecord)

			st := s.Stats()
			assert.Zero(t, st.Items)
			assert.Zero(t, st.Collections)
			assert.Zero(t, st.SharedItems)
		})
	}
}

func TestSeed_DetectsMissingPlatform(t *testing.T) {
	s := New()
	require.NoError(t, s.Seed(SeedData{
		Items:       []models.InspoItem{{ID: "yt", URL: "https://youtube.com/watch?v=1"}},
		Collections: []models.Collection{{ID: "c", Name: "Ideas", Shared: true, Members: 2}},
	}))

	item, err := s.GetItemByID("yt")
	require.NoError(t, err)
	assert.Equal(t, models.PlatformYouTube, item.Platform)
}

func TestToggleUsed(t *testing.T) {
	s := newSeededStore(t)
	before := s.ListItems()

	item, err := s.ToggleUsed("1")
	require.NoError(t, err)
	assert.True(t, item.Used)

	after := s.ListItems()
	for i := range before {
		if before[i].ID == "1" {
			continue
		}
		assert.Equal(t, before[i], after[i], "toggle must not touch item %s", before[i].ID)
	}

	_, err = s.ToggleUsed("1")
	require.NoError(t, err)
	assert.Equal(t, before, s.ListItems(), "toggling twice restores the original state")
}

func TestToggleUsed_NotFound(t *testing.T) {
	s := newSeededStore(t)
	before := s.ListItems()

	_, err := s.ToggleUsed("missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, before, s.ListItems())
}

func TestCreateCollection(t *testing.T) {
	s := newSeededStore(t)

	c, err := s.CreateCollection("Launch", "")
	require.NoError(t, err)
	assert.Equal(t, "new-1", c.ID)
	assert.Equal(t, "Launch", c.Name)
	assert.Equal(t, 0, c.Members)
	assert.False(t, c.Shared)
	assert.Equal(t, 0, c.ItemCount)
	assert.Empty(t, c.Thumbnails)

	list := s.ListCollections()
	require.Len(t, list, 4)
	assert.Equal(t, *c, list[3])
}

func TestShareCollection_IncrementsEveryCall(t *testing.T) {
	s := newSeededStore(t)

	c, err := s.ShareCollection("2")
	require.NoError(t, err)
	assert.True(t, c.Shared)
	assert.Equal(t, 1, c.Members)

	c, err = s.ShareCollection("2")
	require.NoError(t, err)
	assert.True(t, c.Shared)
	assert.Equal(t, 2, c.Members)

	_, err = s.ShareCollection("missing")
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestUpdatePermission(t *testing.T) {
	s := newSeededStore(t)

	item, err := s.UpdatePermission("3", models.PermissionEdit)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionEdit, item.Permission)

	got, err := s.GetSharedItemByID("3")
	require.NoError(t, err)
	assert.Equal(t, models.PermissionEdit, got.Permission)

	_, err = s.UpdatePermission("missing", models.PermissionView)
	assert.ErrorIs(t, err, ErrSharedItemNotFound)
}

func TestCreateItem(t *testing.T) {
	s := newSeededStore(t)

	item := &models.InspoItem{
		URL:      "https://linkedin.com/posts/1",
		Platform: models.PlatformLinkedIn,
		Calendar: "trending",
		Tags:     []string{"b2b", " b2b ", ""},
	}
	require.NoError(t, s.CreateItem(item))
	assert.Equal(t, "new-1", item.ID)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), item.DateAdded)

	got, err := s.GetItemByID("new-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b2b"}, got.Tags)

	dup := &models.InspoItem{ID: "1"}
	assert.ErrorIs(t, s.CreateItem(dup), ErrDuplicateID)
}

func TestAddItemToCollection(t *testing.T) {
	s := newSeededStore(t)

	c, err := s.AddItemToCollection("3", "2")
	require.NoError(t, err)
	assert.Equal(t, 9, c.ItemCount)
	assert.Len(t, c.Thumbnails, 3)

	// Second add is a no-op.
	c, err = s.AddItemToCollection("3", "2")
	require.NoError(t, err)
	assert.Equal(t, 9, c.ItemCount)

	item, err := s.GetItemByID("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, item.CollectionIDs)

	_, err = s.AddItemToCollection("missing", "2")
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, err = s.AddItemToCollection("3", "missing")
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestStats(t *testing.T) {
	s := newSeededStore(t)

	st := s.Stats()
	assert.Equal(t, 4, st.Items)
	assert.Equal(t, 1, st.UsedItems)
	assert.Equal(t, 1, st.ItemsByPlatform[models.PlatformTikTok])
	assert.Equal(t, 3, st.Collections)
	assert.Equal(t, 2, st.SharedCollections)
	assert.Equal(t, 3, st.SharedItems)
}

func TestStore_ConcurrentToggles(t *testing.T) {
	s := newSeededStore(t)

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.ToggleUsed("4")
		}()
	}
	wg.Wait()

	item, err := s.GetItemByID("4")
	require.NoError(t, err)
	assert.False(t, item.Used, "an even number of toggles restores the flag")
}
