package models

import "time"

// Variant controls how a notification is presented.
type Variant string

// Notification variants
const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient, auto-expiring message shown to the user.
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IsDestructive returns true if the notification reports a failure.
func (n Notification) IsDestructive() bool {
	return n.Variant == VariantDestructive
}
