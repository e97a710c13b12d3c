package domain

import "errors"

// Sentinel errors for the three recoverable failure kinds. Call sites wrap
// them with fmt.Errorf("...: %w", ...) to add the offending name; callers
// match with errors.Is.
var (
	// ErrEmptyName is returned when a list or item name trims to nothing.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrDuplicateList is returned when a list name is already taken,
	// compared by normalized key.
	ErrDuplicateList = errors.New("list already exists")

	// ErrDuplicateItem is returned when an item name is already taken
	// within a list, compared by normalized key.
	ErrDuplicateItem = errors.New("item already exists")

	// ErrListNotFound is returned when an operation references an unknown list.
	ErrListNotFound = errors.New("list does not exist")

	// ErrItemNotFound is returned when an operation references an unknown item.
	ErrItemNotFound = errors.New("item does not exist")
)
