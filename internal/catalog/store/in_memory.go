package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/nvoronin/gocatalog/internal/catalog/domain"
	"github.com/nvoronin/gocatalog/internal/catalog/errs"
)

// inMemory implements ProductStore using an in-memory map.
// order tracks insertion order for All and FindByNameLike.
type inMemory struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	order    []string
}

// NewInMemoryStore creates a new instance of ProductStore.
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make(map[string]*domain.Product),
	}
}

// Create inserts or overwrites a product keyed by its id.
func (s *inMemory) Create(product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, fmt.Errorf("store accepts only products: %w", errs.ErrTypeMismatch)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.ID()]; !exists {
		s.order = append(s.order, product.ID())
	}
	s.products[product.ID()] = product
	return product, nil
}

// ByID looks up a product by its id.
func (s *inMemory) ByID(id string) (*domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	return p, ok
}

// All returns every stored product in insertion order.
func (s *inMemory) All() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.Product, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.products[id])
	}
	return list
}

// Update overwrites an existing product.
func (s *inMemory) Update(product *domain.Product) error {
	if product == nil {
		return fmt.Errorf("store accepts only products: %w", errs.ErrTypeMismatch)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.ID()]; !exists {
		return fmt.Errorf("product %s: %w", product.ID(), errs.ErrNotFound)
	}
	s.products[product.ID()] = product
	return nil
}

// Delete removes a product by its id and reports whether it was present.
func (s *inMemory) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return false
	}
	delete(s.products, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// FindByNameLike returns all products whose name contains query,
// case-insensitively.
func (s *inMemory) FindByNameLike(query string) []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	matches := make([]*domain.Product, 0)
	for _, id := range s.order {
		p := s.products[id]
		if strings.Contains(strings.ToLower(p.Name()), q) {
			matches = append(matches, p)
		}
	}
	return matches
}
