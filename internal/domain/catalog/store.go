package catalog

import (
	"slices"
	"sort"
)

// Store is an immutable snapshot of both collections.
// It is safe for concurrent use because nothing writes to it after New.
type Store struct {
	users    []User
	products []Product
}

// New builds a store from the given records. Both slices are copied and
// sorted by id so lookups and cursor scans can binary search.
func New(users []User, products []Product) *Store {
	u := slices.Clone(users)
	p := slices.Clone(products)
	slices.SortStableFunc(u, func(a, b User) int { return a.ID - b.ID })
	slices.SortStableFunc(p, func(a, b Product) int { return a.ID - b.ID })
	return &Store{users: u, products: p}
}

// Users returns a copy of all users in id order
func (s *Store) Users() []User {
	return slices.Clone(s.users)
}

// Products returns a copy of all products in id order
func (s *Store) Products() []Product {
	return slices.Clone(s.products)
}

// User looks up a single user by id
func (s *Store) User(id int) (User, bool) {
	i := sort.Search(len(s.users), func(i int) bool { return s.users[i].ID >= id })
	if i < len(s.users) && s.users[i].ID == id {
		return s.users[i], true
	}
	return User{}, false
}

// Product looks up a single product by id
func (s *Store) Product(id int) (Product, bool) {
	i := sort.Search(len(s.products), func(i int) bool { return s.products[i].ID >= id })
	if i < len(s.products) && s.products[i].ID == id {
		return s.products[i], true
	}
	return Product{}, false
}

// Stats returns collection sizes
func (s *Store) Stats() Stats {
	return Stats{
		Users:    len(s.users),
		Products: len(s.products),
	}
}
