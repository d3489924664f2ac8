package store

import "errors"

// Domain-level store error sentinels.
var (
	// Repository errors
	ErrDuplicateID   = errors.New("id already exists")
	ErrInvalidRecord = errors.New("invalid record")

	// Item errors
	ErrItemNotFound = errors.New("inspiration item not found")

	// Collection errors
	ErrCollectionNotFound = errors.New("collection not found")

	// Shared item errors
	ErrSharedItemNotFound = errors.New("shared item not found")
)
