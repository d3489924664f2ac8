// Package notify implements the in-process notification channel: producers
// enqueue short messages that expire on their own after a fixed delay unless
// a consumer dismisses them first.
package notify

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"inspovault/internal/metrics"
	"inspovault/internal/models"
)

// DefaultTTL is how long a notification stays visible unless dismissed.
const DefaultTTL = 5 * time.Second

// Removal reasons reported to metrics.
const (
	ReasonDismissed = "dismissed"
	ReasonExpired   = "expired"
)

// Toast is the producer-side payload of a notification.
type Toast struct {
	Title       string
	Description string
	Variant     models.Variant
}

// Center holds the visible notifications and one expiry task per entry.
type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries []models.Notification
	timers  map[string]*time.Timer
	closed  bool

	now   func() time.Time
	newID func() string
}

// NewCenter creates a notification center. A non-positive ttl falls back to
// DefaultTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// TTL returns the expiry delay applied to new notifications.
func (c *Center) TTL() time.Duration {
	return c.ttl
}

// Toast enqueues a notification and schedules its removal. It returns the
// generated notification ID.
func (c *Center) Toast(t Toast) string {
	if t.Variant == "" {
		t.Variant = models.VariantDefault
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := models.Notification{
		ID:          c.newID(),
		Title:       t.Title,
		Description: t.Description,
		Variant:     t.Variant,
		CreatedAt:   now,
		ExpiresAt:   now.Add(c.ttl),
	}
	c.entries = append(c.entries, n)

	if !c.closed {
		id := n.ID
		c.timers[id] = time.AfterFunc(c.ttl, func() { c.expire(id) })
	}

	metrics.RecordNotification(string(n.Variant))
	slog.Debug("notification created", "id", n.ID, "title", n.Title, "variant", n.Variant)

	return n.ID
}

// Error enqueues a destructive notification.
func (c *Center) Error(title, description string) string {
	return c.Toast(Toast{Title: title, Description: description, Variant: models.VariantDestructive})
}

// Dismiss removes a notification before it expires and cancels its expiry
// task. It returns false if the ID is unknown or already gone.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	if !c.remove(id) {
		return false
	}
	metrics.RecordNotificationRemoved(ReasonDismissed)
	return true
}

// List returns the visible notifications in insertion order.
func (c *Center) List() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.entries)
}

// Len returns the number of visible notifications.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close cancels all pending expiry tasks. Notifications created afterwards
// are kept until dismissed.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.closed = true
}

// expire runs on the notification's own timer and removes only that entry.
func (c *Center) expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.timers, id)
	if c.remove(id) {
		metrics.RecordNotificationRemoved(ReasonExpired)
	}
}

// remove deletes the entry with the given id. Caller must hold c.mu.
func (c *Center) remove(id string) bool {
	i := slices.IndexFunc(c.entries, func(n models.Notification) bool { return n.ID == id })
	if i < 0 {
		return false
	}
	c.entries = slices.Delete(c.entries, i, i+1)
	return true
}
