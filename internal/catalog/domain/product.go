// Package domain contains the catalog's core entities.
package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nvoronin/gocatalog/internal/catalog/errs"
)

// DefaultOwner is assigned to products constructed without an owner.
const DefaultOwner = "unknown"

// Product represents a catalog item. Its identity is fixed at construction;
// name and price are mutable only through the validating setters, so an
// observable Product is always valid.
type Product struct {
	id        string
	name      string
	price     float64
	owner     string
	createdAt time.Time
}

// ProductParams carries the construction inputs for a Product.
// Zero-valued optional fields fall back to defaults: a generated id, the
// "unknown" owner and the clock's current time. Now is the injected time
// source; it defaults to time.Now.
type ProductParams struct {
	ID        string
	Name      string
	Price     float64
	Owner     string
	CreatedAt time.Time
	Now       func() time.Time
}

// NewProduct builds a validated Product.
// Name and price pass through the same setters used for later mutation.
// Returns an error wrapping errs.ErrValidation if either is invalid.
func NewProduct(params ProductParams) (*Product, error) {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	p := &Product{
		id:        params.ID,
		owner:     params.Owner,
		createdAt: params.CreatedAt,
	}
	if p.id == "" {
		p.id = NewProductID()
	}
	if p.owner == "" {
		p.owner = DefaultOwner
	}
	if p.createdAt.IsZero() {
		p.createdAt = now()
	}
	if err := p.SetName(params.Name); err != nil {
		return nil, err
	}
	if err := p.SetPrice(params.Price); err != nil {
		return nil, err
	}
	return p, nil
}

// NewProductID returns a fresh unique product id.
func NewProductID() string {
	return "p_" + uuid.NewString()
}

func (p *Product) ID() string     { return p.id }
func (p *Product) Name() string   { return p.name }
func (p *Product) Price() float64 { return p.price }
func (p *Product) Owner() string  { return p.owner }

func (p *Product) CreatedAt() time.Time { return p.createdAt }

// SetName validates and stores the trimmed product name.
// The trimmed name must be at least 2 characters long.
func (p *Product) SetName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len([]rune(trimmed)) < 2 {
		return fmt.Errorf("product name must be at least 2 characters: %w", errs.ErrValidation)
	}
	p.name = trimmed
	return nil
}

// SetPrice validates and stores the price rounded to 2 decimal places.
func (p *Product) SetPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("product price must be a finite number: %w", errs.ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("product price must not be negative: %w", errs.ErrValidation)
	}
	p.price = round2(price)
	return nil
}

// ApplyDiscount reduces the price by percent and returns the new price.
// Percent must be in [0, 100].
func (p *Product) ApplyDiscount(percent float64) (float64, error) {
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		return 0, fmt.Errorf("discount percent must be between 0 and 100: %w", errs.ErrValidation)
	}
	p.price = round2(p.price * (1 - percent/100))
	return p.price, nil
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
