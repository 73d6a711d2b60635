package query

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/GriffinCanCode/pagelab/internal/domain/catalog"
)

// SortField names a sortable product attribute
type SortField string

const (
	SortByID    SortField = "id"
	SortByName  SortField = "name"
	SortByPrice SortField = "price"
	SortByStock SortField = "stock"
)

// Order is a sort direction
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// SortSpec is echoed in sorted responses
type SortSpec struct {
	SortBy SortField `json:"sortBy"`
	Order  Order     `json:"order"`
}

// collationTag is the locale used to order product names.
var collationTag = language.English

// SortProducts returns a stably sorted copy of products. Ties keep their
// original relative order in both directions.
func SortProducts(products []catalog.Product, spec SortSpec) ([]catalog.Product, error) {
	compare, err := productComparator(spec.SortBy)
	if err != nil {
		return nil, err
	}

	switch spec.Order {
	case Ascending, "":
	case Descending:
		asc := compare
		compare = func(a, b catalog.Product) int { return asc(b, a) }
	default:
		return nil, NewValidationError("order", MsgUnsupportedOrder)
	}

	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, compare)
	return sorted, nil
}

func productComparator(field SortField) (func(a, b catalog.Product) int, error) {
	switch field {
	case SortByID, "":
		return func(a, b catalog.Product) int { return cmp.Compare(a.ID, b.ID) }, nil
	case SortByPrice:
		return func(a, b catalog.Product) int { return cmp.Compare(a.Price, b.Price) }, nil
	case SortByStock:
		return func(a, b catalog.Product) int { return cmp.Compare(a.Stock, b.Stock) }, nil
	case SortByName:
		// Collators keep scratch buffers and are not safe to share.
		c := collate.New(collationTag)
		return func(a, b catalog.Product) int { return c.CompareString(a.Name, b.Name) }, nil
	default:
		return nil, NewValidationError("sortBy", MsgUnsupportedSort)
	}
}
