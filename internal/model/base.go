package model

// ListFilter carries the search term and the optional equality filter a
// screen applies to its static list.
type ListFilter struct {
	Search string `json:"search" form:"search"`
	Status string `json:"status,omitempty" form:"status"`
	Role   string `json:"role,omitempty" form:"role"`
}

// ListResult wraps a filtered list together with its length, which the
// screens show in their card titles ("Patients (3)").
type ListResult[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// NewListResult never returns a nil Items slice so that empty results
// serialize as [] rather than null.
func NewListResult[T any](items []T) ListResult[T] {
	if items == nil {
		items = []T{}
	}
	return ListResult[T]{Items: items, Count: len(items)}
}

// FilterAll is the equality-filter value that disables the filter.
const FilterAll = "all"

// FormReceipt is returned for every dialog submission. Nothing is stored:
// the draft is echoed back and the dialog closes.
type FormReceipt[T any] struct {
	Form     string `json:"form"`
	Accepted bool   `json:"accepted"`
	Draft    T      `json:"draft"`
}
