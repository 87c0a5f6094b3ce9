// Package user implements catalog users and their owned product collections.
package user

import (
	"fmt"
	"strings"

	"github.com/nvoronin/gocatalog/internal/catalog/domain"
	"github.com/nvoronin/gocatalog/internal/catalog/errs"
)

// Role tags a user with its capability level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User owns an ordered collection of products. Products created through
// AddProduct carry the user's name as owner; the collection is reachable
// only through the methods below.
type User struct {
	name     string
	email    string
	role     Role
	products []*domain.Product
}

// NewUser creates a regular user with an empty product collection.
func NewUser(name, email string) *User {
	return &User{name: name, email: email, role: RoleUser}
}

func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
func (u *User) Role() Role    { return u.role }

// AddProduct constructs a product owned by this user and appends it to the
// collection. Returns the validation error of the product constructor on
// invalid input.
func (u *User) AddProduct(name string, price float64) (*domain.Product, error) {
	p, err := domain.NewProduct(domain.ProductParams{
		Name:  name,
		Price: price,
		Owner: u.name,
	})
	if err != nil {
		return nil, err
	}
	u.products = append(u.products, p)
	return p, nil
}

// Products returns a copy of the owned collection in insertion order.
// Mutating the returned slice does not affect the user.
func (u *User) Products() []*domain.Product {
	out := make([]*domain.Product, len(u.products))
	copy(out, u.products)
	return out
}

// FindProductsByName returns all products whose name contains query,
// case-insensitively, preserving collection order.
func (u *User) FindProductsByName(query string) []*domain.Product {
	q := strings.ToLower(query)
	matches := make([]*domain.Product, 0)
	for _, p := range u.products {
		if strings.Contains(strings.ToLower(p.Name()), q) {
			matches = append(matches, p)
		}
	}
	return matches
}

// UpdateProductPrice sets a new price on the product with the given id.
// Returns ErrNotFound if the user owns no such product; the price itself
// may still fail validation.
func (u *User) UpdateProductPrice(id string, price float64) error {
	for _, p := range u.products {
		if p.ID() == id {
			return p.SetPrice(price)
		}
	}
	return fmt.Errorf("product %s: %w", id, errs.ErrNotFound)
}

// DeleteProduct removes the product with the given id from the collection
// and returns it. Returns ErrNotFound if the user owns no such product.
func (u *User) DeleteProduct(id string) (*domain.Product, error) {
	for i, p := range u.products {
		if p.ID() == id {
			u.products = append(u.products[:i], u.products[i+1:]...)
			return p, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, errs.ErrNotFound)
}

// Admin is a user with the admin role plus the capability to remove
// products from another user's collection. Composition over a wrapped User
// keeps the hierarchy flat.
type Admin struct {
	User
}

// NewAdmin creates a user carrying the admin role.
func NewAdmin(name, email string) *Admin {
	return &Admin{User: User{name: name, email: email, role: RoleAdmin}}
}

// DeleteProductFromUser removes a product from target's collection.
// Target must be a *User or *Admin; anything else fails with
// ErrTypeMismatch. A missing product propagates target's ErrNotFound.
func (a *Admin) DeleteProductFromUser(target any, id string) (*domain.Product, error) {
	switch t := target.(type) {
	case *User:
		return t.DeleteProduct(id)
	case *Admin:
		return t.DeleteProduct(id)
	default:
		return nil, fmt.Errorf("delete target must be a user, got %T: %w", target, errs.ErrTypeMismatch)
	}
}
