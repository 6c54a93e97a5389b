// Package search holds the filter predicates every screen applies to its
// static list.
package search

import (
	"strings"

	"github.com/jwalitptl/noill-admin/internal/model"
)

// ContainsFold reports whether field contains term, ignoring case. An empty
// term matches everything.
func ContainsFold(field, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(term))
}

// MatchAny reports whether any of fields contains term, ignoring case.
func MatchAny(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if ContainsFold(f, term) {
			return true
		}
	}
	return false
}

// EqualOrAll is the equality half of a screen filter: an empty filter or
// "all" accepts every value, anything else must equal value ignoring case.
func EqualOrAll(value, filter string) bool {
	if filter == "" || strings.EqualFold(filter, model.FilterAll) {
		return true
	}
	return strings.EqualFold(value, filter)
}

// Filter returns the elements of items for which keep is true, preserving
// order. The result is never nil.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
