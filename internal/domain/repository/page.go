// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

// DefaultPageSize is the fixed page size used by every paginated listing.
const DefaultPageSize = 15

// Page is one page of a paginated query result plus the total row count, so
// callers can render page navigation without a second query.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

// TotalPages returns the number of pages available for the query.
func (p *Page[T]) TotalPages() int {
	if p.PerPage <= 0 {
		return 0
	}

	pages := int(p.Total) / p.PerPage
	if int(p.Total)%p.PerPage != 0 {
		pages++
	}

	return pages
}

// NormalizePage clamps a requested page number to a sane lower bound.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}
