package domain

import (
	"fmt"
	"strings"
)

// Item is a single purchasable entry in a shopping list. Name keeps the
// casing the user typed (trimmed); Purchased only ever moves from false
// to true.
type Item struct {
	Name      string
	Purchased bool
}

// NewItem validates and trims the name and returns a pending item.
func NewItem(name string) (*Item, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("item: %w", ErrEmptyName)
	}
	return &Item{Name: trimmed}, nil
}

// MarkPurchased flips the item to purchased. Calling it again is a no-op.
func (i *Item) MarkPurchased() { i.Purchased = true }

// String renders the item as a single display line.
func (i *Item) String() string {
	status := "(pending)"
	if i.Purchased {
		status = "(purchased)"
	}
	return fmt.Sprintf("- %s %s", i.Name, status)
}
