package domain

// ListStore holds shopping lists keyed by normalized name and preserves
// insertion order. Stores are dumb containers; validation and uniqueness
// policy live in the registry service.
type ListStore interface {
	// Save stores the list under the given normalized key, appending it to
	// the display order if the key is new.
	Save(key string, list *List)

	// Load returns the list stored under the normalized key, if any.
	Load(key string) (*List, bool)

	// All returns the stored lists in insertion order.
	All() []*List

	// Len returns the number of stored lists.
	Len() int
}

// Registry manages the named shopping lists of a session.
type Registry interface {
	// CreateList registers a new, empty list under a unique name.
	CreateList(name string) (*List, error)

	// AddItemToList adds an item to the named list.
	AddItemToList(listName, itemName string) (*Item, error)

	// MarkItemPurchased marks an item in the named list as purchased.
	MarkItemPurchased(listName, itemName string) error

	// RenderAll returns a display block per list in creation order, or an
	// explicit message when no lists exist yet.
	RenderAll() string
}
