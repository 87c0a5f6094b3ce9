// Package store provides an interface for product storage operations.
package store

import "github.com/nvoronin/gocatalog/internal/catalog/domain"

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different
// implementations.
type ProductStore interface {
	// Create inserts or overwrites a product keyed by its id and returns
	// the stored product. Returns ErrTypeMismatch if product is nil.
	Create(product *domain.Product) (*domain.Product, error)

	// ByID looks up a product by id. The boolean reports whether it was
	// found; a miss is not an error.
	ByID(id string) (*domain.Product, bool)

	// All returns every stored product in insertion order.
	// Returns an empty slice if no products exist.
	All() []*domain.Product

	// Update overwrites an existing product.
	// Returns ErrNotFound if the product's id is not already present.
	Update(product *domain.Product) error

	// Delete removes a product by id and reports whether anything was
	// removed. A missing key is not an error.
	Delete(id string) bool

	// FindByNameLike returns all products whose name contains query,
	// case-insensitively, in insertion order.
	FindByNameLike(query string) []*domain.Product
}
