package domain

import (
	"fmt"
	"strings"
)

// List is a named collection of items. Items are keyed by normalized name
// for uniqueness and lookup, while insertion order is preserved for display.
type List struct {
	Name string

	items map[string]*Item
	order []string
}

// NewList validates and trims the name and returns an empty list.
func NewList(name string) (*List, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("list: %w", ErrEmptyName)
	}
	return &List{
		Name:  trimmed,
		items: make(map[string]*Item),
	}, nil
}

// AddItem creates an item and stores it under its normalized key. The list
// is left untouched when validation or the uniqueness check fails.
func (l *List) AddItem(itemName string) (*Item, error) {
	item, err := NewItem(itemName)
	if err != nil {
		return nil, err
	}
	key := NormalizeKey(itemName)
	if _, exists := l.items[key]; exists {
		return nil, fmt.Errorf("%q in list %q: %w", item.Name, l.Name, ErrDuplicateItem)
	}
	l.items[key] = item
	l.order = append(l.order, key)
	return item, nil
}

// HasItem reports whether an item with the same normalized name exists.
func (l *List) HasItem(itemName string) bool {
	_, exists := l.items[NormalizeKey(itemName)]
	return exists
}

// Item returns the item stored under the normalized name.
func (l *List) Item(itemName string) (*Item, error) {
	item, exists := l.items[NormalizeKey(itemName)]
	if !exists {
		return nil, fmt.Errorf("%q in list %q: %w", strings.TrimSpace(itemName), l.Name, ErrItemNotFound)
	}
	return item, nil
}

// MarkItemPurchased marks the named item as purchased. Marking an already
// purchased item is a no-op; a missing item surfaces ErrItemNotFound.
func (l *List) MarkItemPurchased(itemName string) error {
	item, err := l.Item(itemName)
	if err != nil {
		return err
	}
	item.MarkPurchased()
	return nil
}

// Items returns a snapshot of the items in insertion order. The snapshot
// holds copies, so mutating it does not affect the list.
func (l *List) Items() []Item {
	snapshot := make([]Item, 0, len(l.order))
	for _, key := range l.order {
		snapshot = append(snapshot, *l.items[key])
	}
	return snapshot
}

// Len returns the number of items in the list.
func (l *List) Len() int { return len(l.order) }

// Render returns a multi-line block with a header and one line per item in
// insertion order, or an explicit marker when the list is empty.
func (l *List) Render() string {
	header := fmt.Sprintf("Shopping List: %s", l.Name)
	if len(l.order) == 0 {
		return header + "\n  (no items)"
	}
	lines := make([]string, 0, len(l.order)+1)
	lines = append(lines, header)
	for _, key := range l.order {
		lines = append(lines, "  "+l.items[key].String())
	}
	return strings.Join(lines, "\n")
}
