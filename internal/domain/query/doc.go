/*
Package query implements pagination, search, filtering, sorting and cursor
traversal over the catalog collections.

# Overview

Every operation is a pure function of its inputs. Source slices are never
mutated and every result owns its data slice, so handlers can share one
catalog.Store across goroutines without locking.

# Operations

  - Paginate: offset pagination (page × limit), limit capped at MaxLimit
  - SearchUsers: case-insensitive substring match on name, email, city
  - FilterProducts: price range plus optional case-insensitive category
  - SortProducts: stable sort by id, name (collated), price or stock
  - CursorPaginate: keyset traversal by last-seen id, no upper limit

# Parameters

Raw query strings are bound into typed parameter structs (OffsetParams,
SearchParams, FilterParams, SortParams, CursorParams) and checked with
Validate before any data is touched. Every rejection is a *ValidationError
carrying a client-facing message.

# Usage

	engine := query.NewEngine(store)
	page, err := engine.SearchUsers(query.SearchParams{
		OffsetParams: query.OffsetParams{Page: 1, Limit: 10},
		Term:         "london",
	})
	var verr *query.ValidationError
	if errors.As(err, &verr) {
		// respond 400 {"error": verr.Message}
	}
*/
package query
