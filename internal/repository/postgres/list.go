package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

// listSpec describes how one table is searched and sorted.
type listSpec struct {
	table         string
	columns       string
	searchColumns []string
	sortColumns   repository.SortColumns
}

// listStatements holds the count and page queries composed for one ListQuery.
type listStatements struct {
	count     string
	countArgs []any
	page      string
	pageArgs  []any
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// compose builds a filtered count query and a sorted, paged select. The sort column comes
// from the allow-list only; every caller-supplied value is bound as a parameter.
func (s listSpec) compose(q repository.ListQuery) (listStatements, error) {
	sortCol, err := s.sortColumns.Resolve(q.SortBy)
	if err != nil {
		return listStatements{}, err
	}
	order := repository.SortDesc
	if q.SortOrder == repository.SortAsc {
		order = repository.SortAsc
	}

	var where string
	var args []any
	if q.Search != "" {
		conds := make([]string, len(s.searchColumns))
		for i, col := range s.searchColumns {
			conds[i] = col + " ILIKE $1"
		}
		where = " WHERE " + strings.Join(conds, " OR ")
		args = append(args, "%"+likeEscaper.Replace(q.Search)+"%")
	}

	n := len(args)
	page := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d",
		s.columns, s.table, where, sortCol, order, order, n+1, n+2)

	pageArgs := make([]any, 0, n+2)
	pageArgs = append(pageArgs, args...)
	pageArgs = append(pageArgs, q.Limit, q.Offset())

	return listStatements{
		count:     "SELECT COUNT(*) FROM " + s.table + where,
		countArgs: args,
		page:      page,
		pageArgs:  pageArgs,
	}, nil
}

// listPage runs the composed statements and scans each row with scan.
func listPage[T any](ctx context.Context, db repository.DBTX, s listSpec, q repository.ListQuery, scan func(rowScanner) (T, error)) (*repository.PageResult[T], error) {
	stmts, err := s.compose(q.Normalize())
	if err != nil {
		return nil, err
	}

	var total int
	if err := db.QueryRowContext(ctx, stmts.count, stmts.countArgs...).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, stmts.page, stmts.pageArgs...)
	if err != nil {
		return nil, err
	}
	items, err := collect(rows, scan)
	if err != nil {
		return nil, err
	}

	return &repository.PageResult[T]{Items: items, Total: total}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// collect scans every row and closes rows. It never returns a nil slice on success.
func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// setClause accumulates "col = $n" assignments for a partial update.
type setClause struct {
	parts []string
	args  []any
}

func (c *setClause) add(col string, v any) {
	c.args = append(c.args, v)
	c.parts = append(c.parts, fmt.Sprintf("%s = $%d", col, len(c.args)))
}

// sql renders "UPDATE table SET ..., updated_at = now() WHERE id = $n RETURNING columns".
func (c *setClause) sql(table, columns string, id int64) (string, []any) {
	args := append(c.args, id)
	q := fmt.Sprintf("UPDATE %s SET %s, updated_at = now() WHERE id = $%d RETURNING %s",
		table, strings.Join(c.parts, ", "), len(args), columns)
	return q, args
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func stringPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}
