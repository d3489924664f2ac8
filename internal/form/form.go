// Package form models the creation dialogs. A dialog is Closed until the user
// opens it, accepts field edits while Open, and closes again on cancel or on
// a successful save. A failed save leaves the dialog open with its fields.
package form

import (
	"errors"

	"inspovault/internal/models"
	"inspovault/internal/vault"
)

// State is the lifecycle state of a dialog.
type State int

// Dialog states
const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// ErrClosed is returned when a closed dialog is edited or saved.
var ErrClosed = errors.New("dialog is closed")

// InspoDialog is the save-inspiration form. It uses the single-select
// destination model: one calendar and one platform.
type InspoDialog struct {
	state State

	URL        string
	Calendar   string
	Platform   models.Platform
	Notes      string
	CurrentTag string
	tags       []string
}

// State returns the dialog state.
func (d *InspoDialog) State() State {
	return d.state
}

// Open shows the dialog. Opening an open dialog keeps its fields.
func (d *InspoDialog) Open() {
	d.state = Open
}

// Cancel closes the dialog and discards every field.
func (d *InspoDialog) Cancel() {
	d.reset()
}

// Tags returns a copy of the tags entered so far.
func (d *InspoDialog) Tags() []string {
	return append([]string(nil), d.tags...)
}

// AddTag adds candidate to the tag set (see models.AddTag). When candidate is
// empty the pending CurrentTag is used instead, and it is cleared once added.
func (d *InspoDialog) AddTag(candidate string) (bool, error) {
	if d.state != Open {
		return false, ErrClosed
	}
	fromInput := candidate == ""
	if fromInput {
		candidate = d.CurrentTag
	}

	var added bool
	d.tags, added = models.AddTag(d.tags, candidate)
	if added && fromInput {
		d.CurrentTag = ""
	}
	return added, nil
}

// RemoveTag removes a tag by exact match.
func (d *InspoDialog) RemoveTag(tag string) error {
	if d.state != Open {
		return ErrClosed
	}
	d.tags = models.RemoveTag(d.tags, tag)
	return nil
}

// Input returns the form fields as a creation request.
func (d *InspoDialog) Input() vault.NewInspoItem {
	return vault.NewInspoItem{
		URL:         d.URL,
		Destination: models.Destination{Calendar: d.Calendar},
		Platform:    d.Platform,
		Tags:        d.Tags(),
		Notes:       d.Notes,
	}
}

// Save submits the form through create. On success the fields are reset and
// the dialog closes; on failure the dialog stays open unchanged.
func (d *InspoDialog) Save(create func(vault.NewInspoItem) (*models.InspoItem, error)) (*models.InspoItem, error) {
	if d.state != Open {
		return nil, ErrClosed
	}
	item, err := create(d.Input())
	if err != nil {
		return nil, err
	}
	d.reset()
	return item, nil
}

func (d *InspoDialog) reset() {
	*d = InspoDialog{}
}

// CollectionDialog is the create-collection form.
type CollectionDialog struct {
	state State

	Name        string
	Description string
}

// State returns the dialog state.
func (d *CollectionDialog) State() State {
	return d.state
}

// Open shows the dialog.
func (d *CollectionDialog) Open() {
	d.state = Open
}

// Cancel closes the dialog and discards its fields.
func (d *CollectionDialog) Cancel() {
	*d = CollectionDialog{}
}

// Save submits the form through create. On success the fields are reset and
// the dialog closes; on failure the dialog stays open unchanged.
func (d *CollectionDialog) Save(create func(name, description string) (*models.Collection, error)) (*models.Collection, error) {
	if d.state != Open {
		return nil, ErrClosed
	}
	c, err := create(d.Name, d.Description)
	if err != nil {
		return nil, err
	}
	*d = CollectionDialog{}
	return c, nil
}
