package console

import (
	"strings"
	"sync"

	"merchant-console/internal/domain"
)

// FilterPayments derives the visible subset for a status filter. The "all"
// selector returns the input slice itself; any other selector returns an
// order-preserving subsequence. Pure.
func FilterPayments(payments []domain.Payment, filter domain.StatusFilter) []domain.Payment {
	if filter.IsAll() {
		return payments
	}

	filtered := make([]domain.Payment, 0, len(payments))
	for _, p := range payments {
		if filter.Matches(p.Status) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SearchPayments narrows a collection to payments whose description, ID or
// method contains the query, case-insensitively. An empty query is the
// identity.
func SearchPayments(payments []domain.Payment, query string) []domain.Payment {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return payments
	}

	matched := make([]domain.Payment, 0, len(payments))
	for _, p := range payments {
		if strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.ID), query) ||
			strings.Contains(strings.ToLower(p.Method), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterCache memoizes FilterPayments on the (collection, filter) pair.
// The collection is compared by slice identity: a refresh replaces the
// backing array wholesale, so pointer-and-length equality is enough.
type FilterCache struct {
	mu       sync.Mutex
	payments []domain.Payment
	filter   domain.StatusFilter
	result   []domain.Payment
	valid    bool
}

func (c *FilterCache) Filter(payments []domain.Payment, filter domain.StatusFilter) []domain.Payment {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.filter == filter && sameCollection(c.payments, payments) {
		return c.result
	}

	c.payments = payments
	c.filter = filter
	c.result = FilterPayments(payments, filter)
	c.valid = true
	return c.result
}

func sameCollection(a, b []domain.Payment) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
