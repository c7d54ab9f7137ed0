package service

import "github.com/chairulsabri/backend-windows-explorer/internal/repository"

// ListResult is one page of a listing with its paging metadata.
type ListResult[T any] struct {
	Items      []T                   `json:"data"`
	Pagination repository.Pagination `json:"pagination"`
}

func newListResult[T any](q repository.ListQuery, page *repository.PageResult[T]) *ListResult[T] {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return &ListResult[T]{
		Items:      items,
		Pagination: repository.NewPagination(q.Page, q.Limit, page.Total),
	}
}
