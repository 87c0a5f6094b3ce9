package store

import (
	"testing"

	"github.com/nvoronin/gocatalog/internal/catalog/domain"
	"github.com/nvoronin/gocatalog/internal/catalog/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, id, name string, price float64) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(domain.ProductParams{ID: id, Name: name, Price: price})
	require.NoError(t, err)
	return p
}

func Test_InMemory_Create(t *testing.T) {
	t.Run("Success - stores by id", func(t *testing.T) {
		// given
		s := NewInMemoryStore()
		p := newProduct(t, "p_x", "Watch", 100)
		// when
		stored, err := s.Create(p)
		// then
		require.NoError(t, err)
		assert.Equal(t, p, stored)
		found, ok := s.ByID("p_x")
		require.True(t, ok)
		assert.Equal(t, "Watch", found.Name())
	})

	t.Run("Success - same id overwrites", func(t *testing.T) {
		// given
		s := NewInMemoryStore()
		_, err := s.Create(newProduct(t, "p_x", "Watch", 100))
		require.NoError(t, err)
		// when
		_, err = s.Create(newProduct(t, "p_x", "Clock", 50))
		// then
		require.NoError(t, err)
		assert.Len(t, s.All(), 1)
		found, _ := s.ByID("p_x")
		assert.Equal(t, "Clock", found.Name())
	})

	t.Run("Error - nil product", func(t *testing.T) {
		// given
		s := NewInMemoryStore()
		// when
		_, err := s.Create(nil)
		// then
		assert.ErrorIs(t, err, errs.ErrTypeMismatch)
	})
}

func Test_InMemory_ByID(t *testing.T) {
	// given
	s := NewInMemoryStore()
	_, err := s.Create(newProduct(t, "p_x", "Watch", 100))
	require.NoError(t, err)

	// when / then
	found, ok := s.ByID("p_x")
	assert.True(t, ok)
	assert.Equal(t, "p_x", found.ID())

	missing, ok := s.ByID("p_missing")
	assert.False(t, ok)
	assert.Nil(t, missing)
}

func Test_InMemory_All_PreservesInsertionOrder(t *testing.T) {
	// given
	s := NewInMemoryStore()
	ids := []string{"p_3", "p_1", "p_2"}
	for _, id := range ids {
		_, err := s.Create(newProduct(t, id, "Watch "+id, 10))
		require.NoError(t, err)
	}

	// when
	all := s.All()

	// then
	require.Len(t, all, 3)
	for i, id := range ids {
		assert.Equal(t, id, all[i].ID())
	}
}

func Test_InMemory_Update(t *testing.T) {
	t.Run("Success - existing id", func(t *testing.T) {
		// given
		s := NewInMemoryStore()
		_, err := s.Create(newProduct(t, "p_x", "Watch", 100))
		require.NoError(t, err)
		// when
		err = s.Update(newProduct(t, "p_x", "Watch", 80))
		// then
		require.NoError(t, err)
		found, ok := s.ByID("p_x")
		require.True(t, ok)
		assert.Equal(t, 80.0, found.Price())
	})

	t.Run("Error - unknown id", func(t *testing.T) {
		// given
		s := NewInMemoryStore()
		// when
		err := s.Update(newProduct(t, "p_x", "Watch", 80))
		// then
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func Test_InMemory_Delete(t *testing.T) {
	// given
	s := NewInMemoryStore()
	_, err := s.Create(newProduct(t, "p_x", "Watch", 100))
	require.NoError(t, err)

	// when / then
	assert.True(t, s.Delete("p_x"))
	assert.False(t, s.Delete("p_x"), "second delete of the same id reports a miss")
	assert.Empty(t, s.All())
}

func Test_InMemory_FindByNameLike(t *testing.T) {
	// given
	s := NewInMemoryStore()
	for _, item := range []struct {
		id   string
		name string
	}{
		{"p_1", "Pocket Watch"},
		{"p_2", "Laptop"},
		{"p_3", "watchband"},
	} {
		_, err := s.Create(newProduct(t, item.id, item.name, 10))
		require.NoError(t, err)
	}

	// when
	matches := s.FindByNameLike("WATCH")

	// then
	require.Len(t, matches, 2)
	assert.Equal(t, "p_1", matches[0].ID(), "matches must preserve insertion order")
	assert.Equal(t, "p_3", matches[1].ID())
	assert.Empty(t, s.FindByNameLike("phone"))
}
