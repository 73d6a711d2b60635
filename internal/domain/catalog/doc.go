// Package catalog holds the in-memory mock collections served by the API.
//
// Two flat collections exist for the lifetime of the process:
//   - Users: id, name, email, age, city
//   - Products: id, name, price, category, stock
//
// Both are generated once at startup by a seeded Generator and wrapped in an
// immutable Store. Ids are sequential from 1, so every collection is sorted
// ascending by id by construction. Accessors hand out copies; nothing in the
// package mutates a collection after New returns.
//
// Example Usage:
//
//	store := catalog.Generate(catalog.GeneratorConfig{Users: 100, Products: 100, Seed: 42})
//	users := store.Users()
//	p, ok := store.Product(7)
package catalog
