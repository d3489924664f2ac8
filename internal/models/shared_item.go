package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SharedItemType distinguishes shared inspiration items from shared collections.
type SharedItemType string

// Shared item types
const (
	SharedTypeInspo      SharedItemType = "inspo"
	SharedTypeCollection SharedItemType = "collection"
)

// Permission is the access level granted on a shared item.
type Permission string

// Permission constants
const (
	PermissionView    Permission = "view"
	PermissionComment Permission = "comment"
	PermissionEdit    Permission = "edit"
)

// ParsePermission converts user input into a Permission.
func ParsePermission(s string) (Permission, error) {
	switch p := Permission(s); p {
	case PermissionView, PermissionComment, PermissionEdit:
		return p, nil
	}
	return "", fmt.Errorf("unknown permission %q", s)
}

// Sharer identifies who shared an item.
type Sharer struct {
	Name   string `json:"name" yaml:"name"`
	Email  string `json:"email" yaml:"email"`
	Avatar string `json:"avatar" yaml:"avatar"`
}

// SharedItem is an inspiration item or collection shared with the team.
type SharedItem struct {
	ID         string         `json:"id" yaml:"id"`
	Type       SharedItemType `json:"type" yaml:"type"`
	Name       string         `json:"name" yaml:"name"`
	Thumbnail  string         `json:"thumbnail" yaml:"thumbnail"`
	DateShared time.Time      `json:"date_shared" yaml:"date_shared"`
	SharedBy   Sharer         `json:"shared_by" yaml:"shared_by"`
	Comments   int            `json:"comments" yaml:"comments"`
	Link       string         `json:"link" yaml:"link"`
	Permission Permission     `json:"permission" yaml:"permission"`
}

// Key returns the shared item's identifier.
func (s SharedItem) Key() string {
	return s.ID
}

// Clone returns a copy of the shared item. SharedItem holds no reference types.
func (s SharedItem) Clone() SharedItem {
	return s
}

// CanEdit returns true if the permission grants edit access.
func (s SharedItem) CanEdit() bool {
	return s.Permission == PermissionEdit
}

// CanComment returns true if the permission grants comment access.
func (s SharedItem) CanComment() bool {
	return s.Permission == PermissionComment || s.Permission == PermissionEdit
}

// Validate checks the invariants every stored shared item holds.
func (s SharedItem) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("id is required")
	}
	if s.Type != SharedTypeInspo && s.Type != SharedTypeCollection {
		return fmt.Errorf("unknown shared item type %q", s.Type)
	}
	if _, err := ParsePermission(string(s.Permission)); err != nil {
		return err
	}
	if s.Comments < 0 {
		return fmt.Errorf("negative comment count %d", s.Comments)
	}
	return nil
}
