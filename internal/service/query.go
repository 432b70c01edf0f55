package service

import (
	"strings"

	"marketplace/internal/models"
)

const (
	// DefaultPageLimit is used when a filter asks for zero or fewer items.
	DefaultPageLimit = 10
	// MaxPageLimit caps the size of one page.
	MaxPageLimit = 100
)

// paginate cuts one window out of items. Limits outside (0, MaxPageLimit]
// are clamped and a negative offset starts at zero.
func paginate[T any](items []T, limit, offset int) models.Page[T] {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	page := models.Page[T]{
		Items:  []T{},
		Total:  len(items),
		Limit:  limit,
		Offset: offset,
	}
	if offset >= len(items) {
		return page
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	page.Items = append(page.Items, items[offset:end]...)
	return page
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyContainsFold(values []string, substr string) bool {
	for _, v := range values {
		if containsFold(v, substr) {
			return true
		}
	}
	return false
}

func anyEqualFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
