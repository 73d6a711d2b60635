package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSizesAndIDs(t *testing.T) {
	store := Generate(GeneratorConfig{Users: 100, Products: 40, Seed: 7})

	users := store.Users()
	products := store.Products()
	require.Len(t, users, 100)
	require.Len(t, products, 40)

	for i, u := range users {
		assert.Equal(t, i+1, u.ID)
	}
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
	}

	assert.Equal(t, Stats{Users: 100, Products: 40}, store.Stats())
}

func TestGenerateAttributeRanges(t *testing.T) {
	store := Generate(GeneratorConfig{Users: 500, Products: 500, Seed: 99})

	for _, u := range store.Users() {
		assert.GreaterOrEqual(t, u.Age, MinAge)
		assert.LessOrEqual(t, u.Age, MaxAge)
		assert.Contains(t, Cities, u.City)
		assert.Equal(t, "User", u.Name[:4])
	}
	for _, p := range store.Products() {
		assert.GreaterOrEqual(t, p.Price, MinPrice)
		assert.LessOrEqual(t, p.Price, MaxPrice)
		assert.GreaterOrEqual(t, p.Stock, MinStock)
		assert.LessOrEqual(t, p.Stock, MaxStock)
		assert.Contains(t, Categories, p.Category)
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	a := Generate(GeneratorConfig{Users: 50, Products: 50, Seed: 1234})
	b := Generate(GeneratorConfig{Users: 50, Products: 50, Seed: 1234})

	assert.Equal(t, a.Users(), b.Users())
	assert.Equal(t, a.Products(), b.Products())
}

func TestNewGeneratorZeroSeed(t *testing.T) {
	g := NewGenerator(0)
	assert.NotZero(t, g.Seed())
}

func TestStoreReturnsCopies(t *testing.T) {
	store := Generate(GeneratorConfig{Users: 5, Products: 5, Seed: 3})

	users := store.Users()
	users[0].Name = "mutated"

	fresh := store.Users()
	assert.Len(t, fresh, 5)
	assert.Equal(t, "User 1", fresh[0].Name)

	products := store.Products()
	products[0].Price = -1
	assert.NotEqual(t, -1, store.Products()[0].Price)
}

func TestNewSortsByID(t *testing.T) {
	store := New(
		[]User{{ID: 3}, {ID: 1}, {ID: 2}},
		[]Product{{ID: 2}, {ID: 1}},
	)

	users := store.Users()
	assert.Equal(t, []int{1, 2, 3}, []int{users[0].ID, users[1].ID, users[2].ID})
	products := store.Products()
	assert.Equal(t, 1, products[0].ID)
}

func TestLookup(t *testing.T) {
	store := Generate(GeneratorConfig{Users: 10, Products: 10, Seed: 5})

	tests := []struct {
		name   string
		id     int
		wantOK bool
	}{
		{name: "first", id: 1, wantOK: true},
		{name: "last", id: 10, wantOK: true},
		{name: "zero", id: 0, wantOK: false},
		{name: "past end", id: 11, wantOK: false},
		{name: "negative", id: -4, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := store.User(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.id, u.ID)
			}

			p, ok := store.Product(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.id, p.ID)
			}
		})
	}
}
