package catalog

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Attribute ranges for generated records (inclusive).
const (
	MinAge   = 18
	MaxAge   = 80
	MinPrice = 10
	MaxPrice = 1000
	MinStock = 0
	MaxStock = 100
)

// GeneratorConfig controls mock data generation.
type GeneratorConfig struct {
	Users    int
	Products int
	// Seed makes generation reproducible. Zero picks a time-based seed.
	Seed uint64
}

// Generator produces synthetic users and products from a seeded source.
type Generator struct {
	src  rand.Source
	seed uint64
}

// NewGenerator creates a generator. A zero seed is replaced by the current time.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		src:  rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
		seed: seed,
	}
}

// Seed reports the seed actually in use
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Users generates n users with ids 1..n
func (g *Generator) Users(n int) []User {
	age := g.intRange(MinAge, MaxAge)
	city := g.intRange(0, len(Cities)-1)

	users := make([]User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, User{
			ID:    i,
			Name:  fmt.Sprintf("User %d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
			Age:   age(),
			City:  Cities[city()],
		})
	}
	return users
}

// Products generates n products with ids 1..n
func (g *Generator) Products(n int) []Product {
	price := g.intRange(MinPrice, MaxPrice)
	category := g.intRange(0, len(Categories)-1)
	stock := g.intRange(MinStock, MaxStock)

	products := make([]Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, Product{
			ID:       i,
			Name:     fmt.Sprintf("Product %d", i),
			Price:    price(),
			Category: Categories[category()],
			Stock:    stock(),
		})
	}
	return products
}

// intRange returns a sampler for integers uniformly distributed in [lo, hi].
func (g *Generator) intRange(lo, hi int) func() int {
	dist := distuv.Uniform{
		Min: float64(lo),
		Max: float64(hi + 1),
		Src: g.src,
	}
	return func() int {
		v := int(math.Floor(dist.Rand()))
		if v > hi {
			v = hi
		}
		return v
	}
}

// Generate builds a complete store in one call.
func Generate(cfg GeneratorConfig) *Store {
	g := NewGenerator(cfg.Seed)
	return New(g.Users(cfg.Users), g.Products(cfg.Products))
}
