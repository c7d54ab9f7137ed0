package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
	"github.com/chairulsabri/backend-windows-explorer/internal/service"
)

// successPayload is the envelope of every successful API response.
type successPayload struct {
	Success    bool                   `json:"success"`
	Data       any                    `json:"data,omitempty"`
	Message    string                 `json:"message,omitempty"`
	Pagination *repository.Pagination `json:"pagination,omitempty"`
}

func writeData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(successPayload{Success: true, Data: data})
}

func writeMessage(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(successPayload{Success: true, Data: data, Message: message})
}

func writeList[T any](c *fiber.Ctx, res *service.ListResult[T]) error {
	return c.JSON(successPayload{Success: true, Data: res.Items, Pagination: &res.Pagination})
}

// parseID reads a positive integer path parameter. On failure the 400 response has
// already been written and ok is false.
func parseID(c *fiber.Ctx, name string) (id int64, ok bool, err error) {
	id, perr := strconv.ParseInt(c.Params(name), 10, 64)
	if perr != nil || id <= 0 {
		return 0, false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid "+name+" format")
	}
	return id, true, nil
}

// parseListQuery reads page, limit, search, sortBy and sortOrder. Missing values fall back to
// defaults in the service; values that are present but malformed are rejected.
func parseListQuery(c *fiber.Ctx) (repository.ListQuery, bool, error) {
	var q repository.ListQuery
	var err error
	if q.Page, err = queryInt(c, "page"); err != nil {
		return q, false, writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "invalid page")
	}
	if q.Limit, err = queryInt(c, "limit"); err != nil {
		return q, false, writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
	}
	if q.SortOrder, err = repository.ParseSortOrder(c.Query("sortOrder")); err != nil {
		return q, false, writeError(c, fiber.StatusBadRequest, "INVALID_SORT_ORDER", "sortOrder must be ASC or DESC")
	}
	q.Search = c.Query("search")
	q.SortBy = strings.TrimSpace(c.Query("sortBy"))
	return q, true, nil
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

// parseBody decodes a JSON request body into dst. An empty body leaves dst zero-valued.
func parseBody(c *fiber.Ctx, dst any) (bool, error) {
	if len(c.Body()) == 0 {
		return true, nil
	}
	if err := c.BodyParser(dst); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
	}
	return true, nil
}
