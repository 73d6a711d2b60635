package catalog

// User is a synthetic user record
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
	City  string `json:"city"`
}

// Product is a synthetic product record
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
}

// Cities users are assigned to.
var Cities = []string{"New York", "London", "Tokyo", "Paris", "Sydney"}

// Categories products are assigned to.
var Categories = []string{"Electronics", "Clothing", "Books", "Home", "Sports"}

// Stats summarizes collection sizes
type Stats struct {
	Users    int `json:"users"`
	Products int `json:"products"`
}
