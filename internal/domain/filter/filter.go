// Package filter provides the predicate primitives shared by the
// per-entity filter functions (user.FilterProfiles, mentorship.FilterRequests).
//
// Every criterion is optional: a nil pattern imposes no constraint.
// Present criteria combine with logical AND.
package filter

import "strings"

// Predicate reports whether an item passes a single criterion.
type Predicate[T any] func(item T) bool

// Apply returns the items that satisfy every predicate, preserving input order.
// The input slice is never modified. The result is never nil.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchAll[T any](item T, preds []Predicate[T]) bool {
	for _, pred := range preds {
		if pred != nil && !pred(item) {
			return false
		}
	}
	return true
}

// Contains is a case-sensitive substring test.
// A nil pattern matches anything; an empty field never matches a present pattern.
func Contains(field string, pattern *string) bool {
	if pattern == nil {
		return true
	}
	if field == "" {
		return false
	}
	return strings.Contains(field, *pattern)
}

// Equal matches when want is nil or equal to field.
func Equal[T comparable](field T, want *T) bool {
	return want == nil || field == *want
}

// Ptr returns a pointer to v. Handy for building criteria literals.
func Ptr[T any](v T) *T {
	return &v
}
