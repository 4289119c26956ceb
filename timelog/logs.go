// Package timelog is the client-side presentation of fetched log records:
// sorting, filtering and export. Everything here is a pure transformation
// over the last-fetched collection; refresh is the caller's concern.
package timelog

import (
	"sort"

	v1 "rcauthy.net/rcauthy/rcauthy/v1"
	"rcauthy.net/rcauthy/utils"
)

type Order int

const (
	// OrderDesc is the default on initial load: newest records first.
	OrderDesc Order = iota
	OrderAsc
)

func (o Order) Toggle() Order {
	if o == OrderDesc {
		return OrderAsc
	}
	return OrderDesc
}

type Category string

const (
	CategoryAll    Category = "All"
	CategoryOnsite Category = v1.TypeOnsite
	CategoryOnline Category = v1.TypeOnline
)

// Sort orders entries by creation time. The sort is stable, so records
// sharing a timestamp keep their fetched order. The input is not mutated.
func Sort(entries []v1.LogEntry, order Order) []v1.LogEntry {
	sorted := make([]v1.LogEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == OrderAsc {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt.Time)
		}
		return sorted[j].CreatedAt.Before(sorted[i].CreatedAt.Time)
	})

	return sorted
}

// Filter retains entries of the given category, preserving order.
// CategoryAll is the identity.
func Filter(entries []v1.LogEntry, category Category) []v1.LogEntry {
	if category == CategoryAll {
		return entries
	}
	return utils.Filter(entries, func(e v1.LogEntry) bool {
		return e.Type == string(category)
	})
}
