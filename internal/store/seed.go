package store

import (
	"errors"
	"fmt"
	"time"

	"inspovault/internal/models"
)

// SeedData is a batch of records loaded into an empty or existing store.
type SeedData struct {
	Items       []models.InspoItem  `yaml:"items"`
	Collections []models.Collection `yaml:"collections"`
	SharedItems []models.SharedItem `yaml:"shared_items"`
}

// Seed inserts the given records. Records whose ID already exists are
// skipped. The batch is checked before anything is inserted, so a record
// that breaks an invariant fails the whole seed with ErrInvalidRecord.
// Items without a platform get one detected from their URL.
func (s *Store) Seed(data SeedData) error {
	items := make([]models.InspoItem, len(data.Items))
	for i, item := range data.Items {
		item.Tags = models.NormalizeTags(item.Tags)
		if item.Platform == "" {
			item.Platform = models.DetectPlatform(item.URL)
		}
		if err := item.Validate(); err != nil {
			return fmt.Errorf("failed to seed item %q: %w: %w", item.ID, ErrInvalidRecord, err)
		}
		items[i] = item
	}
	for _, c := range data.Collections {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("failed to seed collection %q: %w: %w", c.ID, ErrInvalidRecord, err)
		}
	}
	for _, si := range data.SharedItems {
		if err := si.Validate(); err != nil {
			return fmt.Errorf("failed to seed shared item %q: %w: %w", si.ID, ErrInvalidRecord, err)
		}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	for _, item := range items {
		if err := s.items.Insert(item); err != nil && !errors.Is(err, ErrDuplicateID) {
			return fmt.Errorf("failed to seed item %s: %w", item.ID, err)
		}
	}
	for _, c := range data.Collections {
		if err := s.collections.Insert(c); err != nil && !errors.Is(err, ErrDuplicateID) {
			return fmt.Errorf("failed to seed collection %s: %w", c.ID, err)
		}
	}
	for _, si := range data.SharedItems {
		if err := s.shared.Insert(si); err != nil && !errors.Is(err, ErrDuplicateID) {
			return fmt.Errorf("failed to seed shared item %s: %w", si.ID, err)
		}
	}

	return nil
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultSeed returns the sample records the vault starts with.
func DefaultSeed() SeedData {
	return SeedData{
		Items: []models.InspoItem{
			{
				ID:        "1",
				URL:       "https://tiktok.com/@user/video/123",
				Platform:  models.PlatformTikTok,
				Calendar:  "march-campaign",
				Tags:      []string{"funny", "trend"},
				Notes:     "Funny dance trend for March campaign",
				Thumbnail: "https://placehold.co/300x400/5271FF/FFFFFF.png?text=TikTok+Trend",
				Likes:     3,
				Comments:  2,
				DateAdded: day("2023-05-24"),
				Title:     "TikTok Trend",
				Account:   "@user",
			},
			{
				ID:        "2",
				URL:       "https://instagram.com/p/456",
				Platform:  models.PlatformInstagram,
				Calendar:  "product-launch",
				Tags:      []string{"unboxing", "review"},
				Notes:     "Great product reveal format",
				Thumbnail: "https://placehold.co/300x400/E1306C/FFFFFF.png?text=Instagram+Post",
				Used:      true,
				Likes:     5,
				Comments:  1,
				DateAdded: day("2023-05-20"),
				Title:     "Instagram Post",
				Account:   "@brand",
			},
			{
				ID:        "3",
				URL:       "https://youtube.com/watch?v=789",
				Platform:  models.PlatformYouTube,
				Calendar:  "trending",
				Tags:      []string{"tutorial", "howto"},
				Notes:     "Step-by-step tutorial format",
				Thumbnail: "https://placehold.co/300x400/FF0000/FFFFFF.png?text=YouTube+Video",
				Likes:     2,
				Comments:  4,
				DateAdded: day("2023-05-18"),
				Title:     "YouTube Video",
				Account:   "@creator",
			},
			{
				ID:        "4",
				URL:       "https://twitter.com/user/status/012",
				Platform:  models.PlatformTwitter,
				Calendar:  "general-content",
				Tags:      []string{"thread", "tips"},
				Notes:     "Great format for a tips thread",
				Thumbnail: "https://placehold.co/300x400/1DA1F2/FFFFFF.png?text=Twitter+Thread",
				Likes:     7,
				Comments:  3,
				DateAdded: day("2023-05-15"),
				Title:     "Twitter Thread",
				Account:   "@user",
			},
		},
		Collections: []models.Collection{
			{
				ID:          "1",
				Name:        "March Campaign Ideas",
				Description: "Funny trends we can adapt for our March campaign",
				Thumbnails: []string{
					"https://placehold.co/100x100/5271FF/FFFFFF.png",
					"https://placehold.co/100x100/E1306C/FFFFFF.png",
					"https://placehold.co/100x100/FF0000/FFFFFF.png",
				},
				ItemCount: 12,
				Shared:    true,
				Members:   3,
			},
			{
				ID:          "2",
				Name:        "Product Demos",
				Description: "Different ways to showcase our products",
				Thumbnails: []string{
					"https://placehold.co/100x100/FF0000/FFFFFF.png",
					"https://placehold.co/100x100/1DA1F2/FFFFFF.png",
				},
				ItemCount: 8,
			},
			{
				ID:          "3",
				Name:        "Testimonial Formats",
				Description: "Creative ways to present customer reviews",
				Thumbnails: []string{
					"https://placehold.co/100x100/E1306C/FFFFFF.png",
				},
				ItemCount: 5,
				Shared:    true,
				Members:   2,
			},
		},
		SharedItems: []models.SharedItem{
			{
				ID:         "1",
				Type:       models.SharedTypeCollection,
				Name:       "March Campaign Ideas",
				Thumbnail:  "https://placehold.co/100x100/5271FF/FFFFFF.png",
				DateShared: day("2023-05-20"),
				SharedBy: models.Sharer{
					Name:   "Alex Johnson",
					Email:  "alex@example.com",
					Avatar: "https://i.pravatar.cc/150?img=1",
				},
				Comments:   8,
				Link:       "https://heyorca.app/c/march-ideas",
				Permission: models.PermissionEdit,
			},
			{
				ID:         "2",
				Type:       models.SharedTypeInspo,
				Name:       "Unboxing video format",
				Thumbnail:  "https://placehold.co/100x100/E1306C/FFFFFF.png",
				DateShared: day("2023-05-22"),
				SharedBy: models.Sharer{
					Name:   "Morgan Smith",
					Email:  "morgan@example.com",
					Avatar: "https://i.pravatar.cc/150?img=2",
				},
				Comments:   3,
				Link:       "https://heyorca.app/i/unboxing-video",
				Permission: models.PermissionComment,
			},
			{
				ID:         "3",
				Type:       models.SharedTypeCollection,
				Name:       "Testimonial Formats",
				Thumbnail:  "https://placehold.co/100x100/1DA1F2/FFFFFF.png",
				DateShared: day("2023-05-23"),
				SharedBy: models.Sharer{
					Name:   "Jordan Lee",
					Email:  "jordan@example.com",
					Avatar: "https://i.pravatar.cc/150?img=3",
				},
				Comments:   5,
				Link:       "https://heyorca.app/c/testimonials",
				Permission: models.PermissionView,
			},
		},
	}
}
