package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sondong-edu/school-admin-api/internal/models"
)

// listSpec describes how a table is paged, sorted and filtered.
// sorts and filters map DTO property names onto column names.
type listSpec struct {
	table   string
	columns string
	sorts   map[string]string
	filters map[string]string
}

// build renders the page query and its matching count query. Unknown sort
// properties and filters are ignored; id ASC is always the final tie-breaker.
func (s listSpec) build(req models.PageRequest) (string, string, []interface{}) {
	base := fmt.Sprintf("FROM %s WHERE 1=1", s.table)
	var conditions []string
	var args []interface{}

	for _, property := range sortedKeys(req.Filters) {
		column, ok := s.filters[property]
		if !ok {
			continue
		}
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, req.Filters[property])
	}
	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	var orders []string
	sortedByID := false
	for _, o := range req.Sort {
		column, ok := s.sorts[o.Property]
		if !ok {
			continue
		}
		direction := "ASC"
		if o.Desc {
			direction = "DESC"
		}
		orders = append(orders, column+" "+direction)
		if column == "id" {
			sortedByID = true
		}
	}
	if !sortedByID {
		orders = append(orders, "id ASC")
	}

	size := req.Size
	if size <= 0 {
		size = 20
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d", s.columns, base, strings.Join(orders, ", "), size, req.Offset())
	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	return query, countQuery, args
}

func sortedKeys(filters map[string]int64) []string {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// page runs the query pair built by spec into dest and returns the total row count.
func page(ctx context.Context, db *sqlx.DB, spec listSpec, req models.PageRequest, dest interface{}) (int, error) {
	query, countQuery, args := spec.build(req)
	if err := db.SelectContext(ctx, dest, query, args...); err != nil {
		return 0, fmt.Errorf("list %s: %w", spec.table, err)
	}
	var total int
	if err := db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", spec.table, err)
	}
	return total, nil
}

// insertReturningID executes a named INSERT ... RETURNING id statement.
func insertReturningID(ctx context.Context, db *sqlx.DB, query string, arg interface{}) (int64, error) {
	rows, err := db.NamedQueryContext(ctx, query, arg)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, sql.ErrNoRows
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// updateByID executes a named UPDATE and reports sql.ErrNoRows when nothing matched.
func updateByID(ctx context.Context, db *sqlx.DB, query string, arg interface{}) error {
	res, err := db.NamedExecContext(ctx, query, arg)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func deleteByID(ctx context.Context, db *sqlx.DB, table string, id int64) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}
