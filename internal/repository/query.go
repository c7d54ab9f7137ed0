package repository

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	DefaultPage   = 1
	DefaultLimit  = 10
	DefaultSortBy = "created_at"
)

// ErrUnknownSortKey is returned when a sort key is not in the allow-list of the entity.
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortOrder is the direction of a listing.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ParseSortOrder accepts "asc"/"desc" in any case. Empty input yields the default (DESC).
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return SortDesc, nil
	case string(SortAsc):
		return SortAsc, nil
	case string(SortDesc):
		return SortDesc, nil
	default:
		return "", fmt.Errorf("invalid sort order %q", s)
	}
}

// ListQuery holds the filter, paging and sorting options shared by folder and file listings.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder SortOrder
}

// Normalize fills defaults for zero or negative values. There is no upper bound on Page or Limit.
func (q ListQuery) Normalize() ListQuery {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	q.Search = strings.TrimSpace(q.Search)
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.SortOrder != SortAsc {
		q.SortOrder = SortDesc
	}
	return q
}

// Offset is the number of rows skipped before the requested page.
// Pages past the addressable range clamp to math.MaxInt.
func (q ListQuery) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

// SortColumns maps the sort keys a client may send to the column identifiers used in SQL.
// Only identifiers from this map are ever interpolated into a query.
type SortColumns map[string]string

// Resolve returns the column for key.
func (c SortColumns) Resolve(key string) (string, error) {
	col, ok := c[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
	}
	return col, nil
}

var (
	FolderSortColumns = SortColumns{
		"id":         "id",
		"name":       "name",
		"path":       "path",
		"parent_id":  "parent_id",
		"created_at": "created_at",
		"updated_at": "updated_at",
	}

	FileSortColumns = SortColumns{
		"id":         "id",
		"name":       "name",
		"path":       "path",
		"folder_id":  "folder_id",
		"extension":  "extension",
		"size":       "size",
		"mime_type":  "mime_type",
		"created_at": "created_at",
		"updated_at": "updated_at",
	}
)

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}

// Pagination is the paging metadata returned with a listing.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes the page count as ceil(total/limit).
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = total / limit
		if total%limit != 0 {
			totalPages++
		}
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
