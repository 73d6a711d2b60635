package query

import (
	"github.com/GriffinCanCode/pagelab/internal/domain/catalog"
)

// SearchResult is a page of users matching a search term
type SearchResult struct {
	Page[catalog.User]
	SearchTerm string `json:"searchTerm"`
}

// FilterResult is a page of filtered products
type FilterResult struct {
	Page[catalog.Product]
	Filters AppliedFilters `json:"filters"`
}

// SortResult is a page of sorted products
type SortResult struct {
	Page[catalog.Product]
	Sort SortSpec `json:"sort"`
}

// Engine answers queries against an immutable catalog.
type Engine struct {
	store *catalog.Store
}

// NewEngine creates an engine over store
func NewEngine(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// Store exposes the backing catalog
func (e *Engine) Store() *catalog.Store {
	return e.store
}

// ListUsers pages through all users in id order
func (e *Engine) ListUsers(p OffsetParams) (Page[catalog.User], error) {
	if err := p.Validate(); err != nil {
		return Page[catalog.User]{}, err
	}
	return Paginate(e.store.Users(), p.Page, p.Limit)
}

// ListProducts pages through all products in id order
func (e *Engine) ListProducts(p OffsetParams) (Page[catalog.Product], error) {
	if err := p.Validate(); err != nil {
		return Page[catalog.Product]{}, err
	}
	return Paginate(e.store.Products(), p.Page, p.Limit)
}

// SearchUsers pages through users matching p.Term
func (e *Engine) SearchUsers(p SearchParams) (SearchResult, error) {
	if err := p.Validate(); err != nil {
		return SearchResult{}, err
	}

	page, err := Paginate(SearchUsers(e.store.Users(), p.Term), p.Page, p.Limit)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Page: page, SearchTerm: p.Term}, nil
}

// FilterProducts pages through products matching category and price bounds
func (e *Engine) FilterProducts(p FilterParams) (FilterResult, error) {
	if err := p.Validate(); err != nil {
		return FilterResult{}, err
	}

	filter := p.Filter()
	page, err := Paginate(FilterProducts(e.store.Products(), filter), p.Page, p.Limit)
	if err != nil {
		return FilterResult{}, err
	}
	return FilterResult{Page: page, Filters: filter.Applied()}, nil
}

// SortProducts pages through products in the requested order
func (e *Engine) SortProducts(p SortParams) (SortResult, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return SortResult{}, err
	}

	spec := p.Spec()
	sorted, err := SortProducts(e.store.Products(), spec)
	if err != nil {
		return SortResult{}, err
	}

	page, err := Paginate(sorted, p.Page, p.Limit)
	if err != nil {
		return SortResult{}, err
	}
	return SortResult{Page: page, Sort: spec}, nil
}

// UsersAfter returns the users following the cursor id
func (e *Engine) UsersAfter(p CursorParams) (CursorPage[catalog.User], error) {
	if err := p.Validate(); err != nil {
		return CursorPage[catalog.User]{}, err
	}
	return CursorPaginate(e.store.Users(), userID, p.Cursor, p.Limit)
}

func userID(u catalog.User) int { return u.ID }
