// Package service provides the implementation of catalog business logic.
package service

import (
	"fmt"

	"github.com/nvoronin/gocatalog/internal/catalog/domain"
	"github.com/nvoronin/gocatalog/internal/catalog/errs"
	"github.com/nvoronin/gocatalog/internal/catalog/store"
)

// CatalogService defines the methods for managing catalog products.
// It abstracts the underlying business logic and data access.
type CatalogService interface {
	// Create adds a new product to the catalog.
	// Returns ErrValidation if the product fields are invalid.
	Create(product ProductCreateDto) (*ProductDto, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrNotFound if no product exists with the given ID.
	FindByID(id string) (*ProductDto, error)

	// FindAll returns all available products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll() []ProductDto

	// Search returns products whose name contains term, case-insensitively.
	Search(term string) []ProductDto

	// ChangePrice sets a new price on a product and persists it.
	// Returns ErrNotFound if no product exists with the given ID and
	// ErrValidation if the price is invalid.
	ChangePrice(id string, price float64) (*ProductDto, error)

	// Discount applies a percentage discount to a product and persists it.
	// Returns ErrNotFound if no product exists with the given ID and
	// ErrValidation if the percent is outside [0, 100].
	Discount(id string, percent float64) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrNotFound if no product exists with the given ID.
	DeleteByID(id string) error
}

// Service implements CatalogService on top of a single ProductStore.
// It holds no state of its own.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of CatalogService with the provided
// repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductCreateDto represents the data transfer object for creating a new
// product.
type ProductCreateDto struct {
	Name  string  `json:"name"  validate:"required,min=2,max=100"`
	Price float64 `json:"price" validate:"gte=0"`
	Owner string  `json:"owner" validate:"omitempty,max=100"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Owner     string  `json:"owner"`
	CreatedAt string  `json:"createdAt"`
}

// PriceUpdateDto represents the data transfer object for changing a
// product's price.
type PriceUpdateDto struct {
	Price float64 `json:"price" validate:"gte=0"`
}

// DiscountDto represents the data transfer object for applying a discount.
type DiscountDto struct {
	Percent float64 `json:"percent" validate:"gte=0,lte=100"`
}

// Create builds a new product and stores it.
func (s *Service) Create(product ProductCreateDto) (*ProductDto, error) {
	p, err := domain.NewProduct(domain.ProductParams{
		Name:  product.Name,
		Price: product.Price,
		Owner: product.Owner,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	stored, err := s.repository.Create(p)
	if err != nil {
		return nil, fmt.Errorf("failed to store product: %w", err)
	}

	return toDto(stored), nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(id string) (*ProductDto, error) {
	p, ok := s.repository.ByID(id)
	if !ok {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, errs.ErrNotFound)
	}

	return toDto(p), nil
}

// FindAll retrieves all products and returns them as ProductDTOs.
func (s *Service) FindAll() []ProductDto {
	return toDtos(s.repository.All())
}

// Search retrieves products matching term and returns them as ProductDTOs.
func (s *Service) Search(term string) []ProductDto {
	return toDtos(s.repository.FindByNameLike(term))
}

// ChangePrice sets a new price on a product and persists the change.
func (s *Service) ChangePrice(id string, price float64) (*ProductDto, error) {
	p, ok := s.repository.ByID(id)
	if !ok {
		return nil, fmt.Errorf("failed to change price for product %s: %w", id, errs.ErrNotFound)
	}
	if err := p.SetPrice(price); err != nil {
		return nil, fmt.Errorf("failed to change price for product %s: %w", id, err)
	}
	if err := s.repository.Update(p); err != nil {
		return nil, fmt.Errorf("failed to persist product %s: %w", id, err)
	}

	return toDto(p), nil
}

// Discount applies a percentage discount to a product and persists the
// change.
func (s *Service) Discount(id string, percent float64) (*ProductDto, error) {
	p, ok := s.repository.ByID(id)
	if !ok {
		return nil, fmt.Errorf("failed to discount product %s: %w", id, errs.ErrNotFound)
	}
	if _, err := p.ApplyDiscount(percent); err != nil {
		return nil, fmt.Errorf("failed to discount product %s: %w", id, err)
	}
	if err := s.repository.Update(p); err != nil {
		return nil, fmt.Errorf("failed to persist product %s: %w", id, err)
	}

	return toDto(p), nil
}

// DeleteByID deletes a product by its ID.
func (s *Service) DeleteByID(id string) error {
	if !s.repository.Delete(id) {
		return fmt.Errorf("failed to delete product %s: %w", id, errs.ErrNotFound)
	}
	return nil
}

// toDto converts a domain.Product to a ProductDto.
func toDto(p *domain.Product) *ProductDto {
	rec := p.Record()
	return &ProductDto{
		ID:        rec.ID,
		Name:      rec.Name,
		Price:     rec.Price,
		Owner:     rec.Owner,
		CreatedAt: rec.CreatedAt,
	}
}

func toDtos(products []*domain.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i, p := range products {
		dtos[i] = *toDto(p)
	}
	return dtos
}
