// Package query translates raw, user-supplied browse parameters into a
// validated, bounded descriptor consumed by the mongo stores. Build is a
// total function: malformed input falls back to defaults instead of failing.
package query

import "strconv"

const (
	DefaultListingPageSize = 12
	DefaultOrderPageSize   = 10

	// SortAscending is the only token that yields ascending order; anything
	// else, including an absent sortOrder, sorts descending.
	SortAscending  = "asc"
	SortDescending = "desc"
)

// Descriptor is the transient, per-call query value object. Filters compose
// with AND; Search alone is an OR across the name and location fields.
type Descriptor struct {
	// Status matches exactly when non-empty.
	Status string
	// Location is a case-insensitive substring match when non-empty.
	Location string
	// Search is a case-insensitive substring match against the name OR the
	// location field. It is independent of Location; both may apply.
	Search string
	// OwnerEmail and RequesterEmail match exactly when non-empty.
	OwnerEmail     string
	RequesterEmail string

	// SortBy is empty for the store's default ordering (newest first).
	SortBy    string
	SortOrder string

	Page     int
	PageSize int
	// Skip is applied by the store before limiting to PageSize.
	Skip int
}

// Build constructs a Descriptor from raw string parameters. page falls back
// to 1 and pageSize to defaultPageSize whenever the raw value is absent or
// not a positive integer.
func Build(raw map[string]string, defaultPageSize int) Descriptor {
	page := positiveInt(raw["page"], 1)
	pageSize := positiveInt(raw["pageSize"], defaultPageSize)

	sortOrder := SortDescending
	if raw["sortOrder"] == SortAscending {
		sortOrder = SortAscending
	}

	return Descriptor{
		Status:         raw["status"],
		Location:       raw["location"],
		Search:         raw["search"],
		OwnerEmail:     raw["ownerEmail"],
		RequesterEmail: raw["requesterEmail"],
		SortBy:         raw["sortBy"],
		SortOrder:      sortOrder,
		Page:           page,
		PageSize:       pageSize,
		Skip:           (page - 1) * pageSize,
	}
}

func positiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// PageInfo is the pagination metadata computed from a total count.
type PageInfo struct {
	TotalItems  int64
	TotalPages  int
	CurrentPage int
	PageSize    int
	HasNextPage bool
	HasPrevPage bool
}

func Paginate(totalItems int64, page, pageSize int) PageInfo {
	if page < 1 {
		page = 1
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	} else if totalItems > 0 {
		totalPages = 1
	}
	return PageInfo{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
