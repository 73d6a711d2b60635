package query

import "sort"

// Cursor pagination defaults. There is deliberately no maximum limit.
const (
	DefaultCursor      = 0
	DefaultCursorLimit = 10
)

// CursorPage is the cursor pagination envelope
type CursorPage[T any] struct {
	Data       []T  `json:"data"`
	NextCursor *int `json:"nextCursor"`
	HasMore    bool `json:"hasMore"`
}

// CursorPaginate returns up to limit items whose id is greater than cursor.
// seq must be sorted ascending by id.
func CursorPaginate[T any](seq []T, id func(T) int, cursor, limit int) (CursorPage[T], error) {
	if cursor < 0 {
		return CursorPage[T]{}, NewValidationError("cursor", MsgCursorNegative)
	}
	if limit < 1 {
		return CursorPage[T]{}, NewValidationError("limit", MsgCursorLimit)
	}

	start := sort.Search(len(seq), func(i int) bool { return id(seq[i]) > cursor })
	remaining := len(seq) - start
	n := min(limit, remaining)

	data := make([]T, n)
	copy(data, seq[start:start+n])

	result := CursorPage[T]{
		Data:    data,
		HasMore: remaining > limit,
	}
	if n > 0 {
		next := id(data[n-1])
		result.NextCursor = &next
	}
	return result, nil
}
