package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_Defaults(t *testing.T) {
	desc := Build(map[string]string{}, DefaultListingPageSize)

	assert.Equal(t, 1, desc.Page)
	assert.Equal(t, DefaultListingPageSize, desc.PageSize)
	assert.Equal(t, 0, desc.Skip)
	assert.Equal(t, SortDescending, desc.SortOrder)
	assert.Empty(t, desc.SortBy)
	assert.Empty(t, desc.Status)
}

func TestBuild_MalformedPagingFallsBack(t *testing.T) {
	desc := Build(map[string]string{
		"page":     "abc",
		"pageSize": "-3",
	}, DefaultOrderPageSize)

	assert.Equal(t, 1, desc.Page)
	assert.Equal(t, DefaultOrderPageSize, desc.PageSize)
}

func TestBuild_ZeroPageFallsBack(t *testing.T) {
	desc := Build(map[string]string{"page": "0"}, DefaultListingPageSize)
	assert.Equal(t, 1, desc.Page)
}

func TestBuild_Skip(t *testing.T) {
	desc := Build(map[string]string{"page": "3"}, DefaultListingPageSize)
	assert.Equal(t, 24, desc.Skip)
	assert.Equal(t, 12, desc.PageSize)
}

func TestBuild_SortAscendingOnlyOnExactToken(t *testing.T) {
	asc := Build(map[string]string{"sortBy": "price", "sortOrder": "asc"}, DefaultListingPageSize)
	assert.Equal(t, "price", asc.SortBy)
	assert.Equal(t, SortAscending, asc.SortOrder)

	// Absent or unrecognized order tokens sort descending.
	absent := Build(map[string]string{"sortBy": "price"}, DefaultListingPageSize)
	assert.Equal(t, SortDescending, absent.SortOrder)

	garbage := Build(map[string]string{"sortBy": "price", "sortOrder": "ASC"}, DefaultListingPageSize)
	assert.Equal(t, SortDescending, garbage.SortOrder)
}

func TestBuild_SearchAndLocationAreIndependent(t *testing.T) {
	desc := Build(map[string]string{
		"search":   "apple",
		"location": "town",
	}, DefaultListingPageSize)

	assert.Equal(t, "apple", desc.Search)
	assert.Equal(t, "town", desc.Location)
}

func TestPaginate(t *testing.T) {
	first := Paginate(25, 1, 12)
	assert.Equal(t, 3, first.TotalPages)
	assert.True(t, first.HasNextPage)
	assert.False(t, first.HasPrevPage)

	middle := Paginate(25, 2, 12)
	assert.True(t, middle.HasNextPage)
	assert.True(t, middle.HasPrevPage)

	last := Paginate(25, 3, 12)
	assert.False(t, last.HasNextPage)
	assert.True(t, last.HasPrevPage)
	assert.Equal(t, int64(25), last.TotalItems)
}

func TestPaginate_Empty(t *testing.T) {
	info := Paginate(0, 1, 12)
	assert.Equal(t, 0, info.TotalPages)
	assert.False(t, info.HasNextPage)
	assert.False(t, info.HasPrevPage)
}

func TestPaginate_ExactMultiple(t *testing.T) {
	info := Paginate(24, 2, 12)
	assert.Equal(t, 2, info.TotalPages)
	assert.False(t, info.HasNextPage)
}
