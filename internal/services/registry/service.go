package registry

import (
	"fmt"
	"strings"

	"shoplist/internal/domain"
)

// Service manages named shopping lists backed by a list store. List names
// are unique by normalized key; the original casing is kept for display.
type Service struct {
	store domain.ListStore
}

// New returns a registry service backed by the given store.
func New(store domain.ListStore) *Service { return &Service{store: store} }

// CreateList validates the name, enforces uniqueness and stores a new empty
// list. Nothing is stored when either check fails.
func (s *Service) CreateList(name string) (*domain.List, error) {
	list, err := domain.NewList(name)
	if err != nil {
		return nil, err
	}
	key := domain.NormalizeKey(name)
	if _, exists := s.store.Load(key); exists {
		return nil, fmt.Errorf("%q: %w", list.Name, domain.ErrDuplicateList)
	}
	s.store.Save(key, list)
	return list, nil
}

// AddItemToList resolves the target list and delegates to it, propagating
// validation and duplicate errors unchanged.
func (s *Service) AddItemToList(listName, itemName string) (*domain.Item, error) {
	list, err := s.requireList(listName)
	if err != nil {
		return nil, err
	}
	return list.AddItem(itemName)
}

// MarkItemPurchased resolves the target list and marks the named item as
// purchased. Missing lists and items surface as not-found errors; marking
// an already purchased item is a no-op.
func (s *Service) MarkItemPurchased(listName, itemName string) error {
	list, err := s.requireList(listName)
	if err != nil {
		return err
	}
	return list.MarkItemPurchased(itemName)
}

// RenderAll returns one block per list in creation order, separated by
// blank lines.
func (s *Service) RenderAll() string {
	lists := s.store.All()
	if len(lists) == 0 {
		return "No shopping lists created yet."
	}
	blocks := make([]string, 0, len(lists))
	for _, list := range lists {
		blocks = append(blocks, list.Render())
	}
	return strings.Join(blocks, "\n\n")
}

func (s *Service) requireList(listName string) (*domain.List, error) {
	list, exists := s.store.Load(domain.NormalizeKey(listName))
	if !exists {
		return nil, fmt.Errorf("%q: %w", strings.TrimSpace(listName), domain.ErrListNotFound)
	}
	return list, nil
}

// Compile-time assertion that Service implements domain.Registry.
var _ domain.Registry = (*Service)(nil)
