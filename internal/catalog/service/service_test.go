package service

import (
	"errors"
	"testing"

	"github.com/nvoronin/gocatalog/internal/catalog/domain"
	"github.com/nvoronin/gocatalog/internal/catalog/errs"
	"github.com/nvoronin/gocatalog/internal/catalog/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductStore is a mock implementation of the ProductStore interface
type mockProductStore struct {
	product  *domain.Product
	products []*domain.Product
	ok       bool
	deleted  bool
	error    error
}

// Simulate creating a product
func (m *mockProductStore) Create(_ *domain.Product) (*domain.Product, error) {
	return m.product, m.error
}

// Simulate finding a product by ID
func (m *mockProductStore) ByID(_ string) (*domain.Product, bool) {
	return m.product, m.ok
}

// Simulate finding all products
func (m *mockProductStore) All() []*domain.Product {
	return m.products
}

// Simulate updating a product
func (m *mockProductStore) Update(_ *domain.Product) error {
	return m.error
}

// Simulate deleting a product by ID
func (m *mockProductStore) Delete(_ string) bool {
	return m.deleted
}

// Simulate searching products by name
func (m *mockProductStore) FindByNameLike(_ string) []*domain.Product {
	return m.products
}

func mustProduct(t *testing.T, id, name string, price float64) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(domain.ProductParams{ID: id, Name: name, Price: price, Owner: "Mona"})
	require.NoError(t, err)
	return p
}

func Test_Service_Create(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		product     ProductCreateDto
		expectError error
	}{
		{
			name:      "Success - product created",
			mockStore: &mockProductStore{},
			product:   ProductCreateDto{Name: "Watch", Price: 120, Owner: "Mona"},
		},
		{
			name:        "Error - invalid name",
			mockStore:   &mockProductStore{},
			product:     ProductCreateDto{Name: "a", Price: 120},
			expectError: errs.ErrValidation,
		},
		{
			name:        "Error - store error",
			mockStore:   &mockProductStore{error: ErrStoreError},
			product:     ProductCreateDto{Name: "Watch", Price: 120},
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			tc.mockStore.product = mustProduct(t, "p_1", "Watch", 120)
			service := NewService(tc.mockStore)
			// when
			created, err := service.Create(tc.product)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "p_1", created.ID)
			assert.Equal(t, "Watch", created.Name)
			assert.Equal(t, 120.0, created.Price)
			assert.Equal(t, "Mona", created.Owner)
		})
	}
}

func Test_Service_FindByID(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expectError error
	}{
		{
			name:      "Success - product found",
			mockStore: &mockProductStore{ok: true},
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{ok: false},
			expectError: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			tc.mockStore.product = mustProduct(t, "p_1", "Watch", 120)
			service := NewService(tc.mockStore)
			// when
			found, err := service.FindByID("p_1")
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "p_1", found.ID)
		})
	}
}

func Test_Service_FindAll(t *testing.T) {
	// given
	service := NewService(&mockProductStore{
		products: []*domain.Product{mustProduct(t, "p_1", "Watch", 120)},
	})
	// when
	list := service.FindAll()
	// then
	require.Len(t, list, 1)
	assert.Equal(t, "p_1", list[0].ID)

	// empty store yields an empty slice
	assert.Empty(t, NewService(&mockProductStore{}).FindAll())
}

func Test_Service_ChangePrice(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		price       float64
		expected    float64
		expectError error
	}{
		{
			name:      "Success - price changed",
			mockStore: &mockProductStore{ok: true},
			price:     80,
			expected:  80,
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{ok: false},
			price:       80,
			expectError: errs.ErrNotFound,
		},
		{
			name:        "Error - invalid price",
			mockStore:   &mockProductStore{ok: true},
			price:       -1,
			expectError: errs.ErrValidation,
		},
		{
			name:        "Error - store error on update",
			mockStore:   &mockProductStore{ok: true, error: ErrStoreError},
			price:       80,
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			tc.mockStore.product = mustProduct(t, "p_1", "Watch", 120)
			service := NewService(tc.mockStore)
			// when
			updated, err := service.ChangePrice("p_1", tc.price)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, updated.Price)
		})
	}
}

func Test_Service_Discount(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		percent     float64
		expected    float64
		expectError error
	}{
		{
			name:      "Success - ten percent off",
			mockStore: &mockProductStore{ok: true},
			percent:   10,
			expected:  108.00,
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{ok: false},
			percent:     10,
			expectError: errs.ErrNotFound,
		},
		{
			name:        "Error - percent out of range",
			mockStore:   &mockProductStore{ok: true},
			percent:     150,
			expectError: errs.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			tc.mockStore.product = mustProduct(t, "p_1", "Watch", 120)
			service := NewService(tc.mockStore)
			// when
			updated, err := service.Discount("p_1", tc.percent)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, updated.Price)
		})
	}
}

func Test_Service_DeleteByID(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expectError error
	}{
		{
			name:      "Success - product deleted",
			mockStore: &mockProductStore{deleted: true},
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{deleted: false},
			expectError: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			err := service.DeleteByID("p_1")
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

// Test_Service_Lifecycle runs the facade against the real in-memory store.
func Test_Service_Lifecycle(t *testing.T) {
	// given
	service := NewService(store.NewInMemoryStore())

	// when
	created, err := service.Create(ProductCreateDto{Name: "Watch", Price: 120, Owner: "Mona"})
	require.NoError(t, err)
	discounted, err := service.Discount(created.ID, 10)
	require.NoError(t, err)

	// then
	assert.Equal(t, 108.00, discounted.Price)
	stored, err := service.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 108.00, stored.Price)

	found := service.Search("wat")
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)

	require.NoError(t, service.DeleteByID(created.ID))
	assert.Empty(t, service.FindAll())
	assert.ErrorIs(t, service.DeleteByID(created.ID), errs.ErrNotFound)
}
