package model

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultLimit is applied when a page size is not given.
	DefaultLimit = 10
	// MaxLimit caps a single page.
	MaxLimit = 100
)

// Pagination bounds a listing by limit and offset.
type Pagination struct {
	Limit  int
	Offset int
}

// Normalize applies the default and maximum limit and clamps a negative offset.
func (p Pagination) Normalize() Pagination {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Search is an optional case-insensitive substring match on a name.
type Search struct {
	Term string
}

// Filter is a scoped query: a mandatory owner, an optional parent list,
// an optional name search and a page.
type Filter struct {
	OwnerID    uuid.UUID
	ListID     uuid.UUID
	Search     string
	Pagination Pagination
}

// NewFilter builds a normalized scoped query for owner.
func NewFilter(ownerID uuid.UUID, pagination Pagination, search Search) Filter {
	return Filter{
		OwnerID:    ownerID,
		Search:     strings.TrimSpace(search.Term),
		Pagination: pagination.Normalize(),
	}
}

// ForList narrows the filter to the list items of listID.
func (f Filter) ForList(listID uuid.UUID) Filter {
	f.ListID = listID
	return f
}

// MatchesName reports whether name satisfies the search term.
func (f Filter) MatchesName(name string) bool {
	if f.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(f.Search))
}
