package query

// Offset pagination bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// PageRef points at a neighbouring page
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Page is the offset pagination envelope
type Page[T any] struct {
	Total       int      `json:"total"`
	TotalPages  int      `json:"totalPages"`
	CurrentPage int      `json:"currentPage"`
	Limit       int      `json:"limit"`
	Next        *PageRef `json:"next,omitempty"`
	Previous    *PageRef `json:"previous,omitempty"`
	Data        []T      `json:"data"`
}

// Paginate returns the page-th window of size limit over seq.
// Pages past the end yield an empty data slice with no next link.
func Paginate[T any](seq []T, page, limit int) (Page[T], error) {
	if page < 1 || limit < 1 {
		return Page[T]{}, NewValidationError("", MsgNotPositive)
	}
	if limit > MaxLimit {
		return Page[T]{}, NewValidationError("limit", MsgLimitExceeded)
	}

	total := len(seq)
	totalPages := (total + limit - 1) / limit

	// start/end are clamped to total; (page-1)*limit can overflow for
	// absurd page numbers, so only compute it for pages that exist.
	start, end := total, total
	if page <= totalPages {
		start = (page - 1) * limit
		end = min(start+limit, total)
	}

	data := make([]T, end-start)
	copy(data, seq[start:end])

	result := Page[T]{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
		Data:        data,
	}
	if page < totalPages {
		result.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if page > 1 {
		result.Previous = &PageRef{Page: page - 1, Limit: limit}
	}
	return result, nil
}

// Filter returns the elements of seq for which keep is true, in order.
func Filter[T any](seq []T, keep func(T) bool) []T {
	out := make([]T, 0, len(seq))
	for _, v := range seq {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
