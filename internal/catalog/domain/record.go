package domain

import (
	"fmt"
	"time"

	"github.com/nvoronin/gocatalog/internal/catalog/errs"
)

// recordTimeLayout is RFC 3339 with fixed millisecond precision, UTC.
const recordTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// ProductRecord is the plain interchange form of a Product.
type ProductRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Owner     string  `json:"owner"`
	CreatedAt string  `json:"createdAt"`
}

// Record returns the product's interchange form.
func (p *Product) Record() ProductRecord {
	return ProductRecord{
		ID:        p.id,
		Name:      p.name,
		Price:     p.price,
		Owner:     p.owner,
		CreatedAt: p.createdAt.UTC().Truncate(time.Millisecond).Format(recordTimeLayout),
	}
}

// FromRecord rebuilds a Product from its interchange form.
// The rebuilt product goes through the same validation as a fresh one.
func FromRecord(rec ProductRecord) (*Product, error) {
	createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid createdAt %q: %w", rec.CreatedAt, errs.ErrValidation)
	}
	return NewProduct(ProductParams{
		ID:        rec.ID,
		Name:      rec.Name,
		Price:     rec.Price,
		Owner:     rec.Owner,
		CreatedAt: createdAt,
	})
}
