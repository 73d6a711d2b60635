package query

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report fields by their query-string names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// OffsetParams selects a page of an ordered sequence
type OffsetParams struct {
	Page  int `form:"page,default=1" validate:"gte=1"`
	Limit int `form:"limit,default=10" validate:"gte=1,lte=50"`
}

// SearchParams selects a page of users matching a term
type SearchParams struct {
	OffsetParams
	Term string `form:"q"`
}

// FilterParams selects a page of products by category and price.
// Prices stay raw strings so that non-numeric input falls back to defaults
// instead of failing the request.
type FilterParams struct {
	OffsetParams
	Category string `form:"category"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
}

// SortParams selects a page of sorted products
type SortParams struct {
	OffsetParams
	SortBy string `form:"sortBy,default=id" validate:"oneof=id name price stock"`
	Order  string `form:"order,default=asc" validate:"oneof=asc desc"`
}

// CursorParams selects the users after a last-seen id
type CursorParams struct {
	Cursor int `form:"cursor,default=0" validate:"gte=0"`
	Limit  int `form:"limit,default=10" validate:"gte=1"`
}

// DefaultOffsetParams returns the first page at the default size
func DefaultOffsetParams() OffsetParams {
	return OffsetParams{Page: DefaultPage, Limit: DefaultLimit}
}

// DefaultCursorParams starts from the beginning at the default size
func DefaultCursorParams() CursorParams {
	return CursorParams{Cursor: DefaultCursor, Limit: DefaultCursorLimit}
}

var offsetMessages = map[string]string{
	"page.gte":  MsgNotPositive,
	"limit.gte": MsgNotPositive,
	"limit.lte": MsgLimitExceeded,
}

var sortMessages = map[string]string{
	"page.gte":     MsgNotPositive,
	"limit.gte":    MsgNotPositive,
	"limit.lte":    MsgLimitExceeded,
	"sortBy.oneof": MsgUnsupportedSort,
	"order.oneof":  MsgUnsupportedOrder,
}

var cursorMessages = map[string]string{
	"cursor.gte": MsgCursorNegative,
	"limit.gte":  MsgCursorLimit,
}

// Validate checks page and limit bounds
func (p OffsetParams) Validate() error {
	return validateStruct(p, offsetMessages)
}

// Validate checks page and limit bounds
func (p SearchParams) Validate() error {
	return validateStruct(p, offsetMessages)
}

// Validate checks page and limit bounds; price bounds never fail
func (p FilterParams) Validate() error {
	return validateStruct(p, offsetMessages)
}

// Validate checks page, limit, sort field and direction
func (p SortParams) Validate() error {
	return validateStruct(p, sortMessages)
}

// Validate checks cursor and limit bounds
func (p CursorParams) Validate() error {
	return validateStruct(p, cursorMessages)
}

// Filter resolves the raw price bounds into a ProductFilter
func (p FilterParams) Filter() ProductFilter {
	return ProductFilter{
		Category: strings.TrimSpace(p.Category),
		MinPrice: ParsePrice(p.MinPrice, 0),
		MaxPrice: ParsePrice(p.MaxPrice, math.Inf(1)),
	}
}

// Spec returns the normalized sort specification
func (p SortParams) Spec() SortSpec {
	return SortSpec{
		SortBy: SortField(p.SortBy),
		Order:  Order(p.Order),
	}
}

// Normalize lower-cases the sort direction and fills empty values with defaults.
func (p *SortParams) Normalize() {
	p.SortBy = strings.TrimSpace(p.SortBy)
	p.Order = strings.ToLower(strings.TrimSpace(p.Order))
	if p.SortBy == "" {
		p.SortBy = string(SortByID)
	}
	if p.Order == "" {
		p.Order = string(Ascending)
	}
}

// validateStruct runs the struct validator and converts the first failure
// into a ValidationError using messages keyed by "field.tag".
func validateStruct(s any, messages map[string]string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewValidationError("", MsgInvalidParameters)
	}

	first := fieldErrs[0]
	if msg, ok := messages[first.Field()+"."+first.Tag()]; ok {
		return NewValidationError(first.Field(), msg)
	}
	return NewValidationError(first.Field(), MsgInvalidParameters)
}
