package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// insertBuilder collects only the columns a caller actually supplied, so a
// partial record falls back to column defaults for the rest.
type insertBuilder struct {
	table string
	cols  []string
	args  []interface{}
}

func newInsert(table string) *insertBuilder {
	return &insertBuilder{table: table}
}

func set[T any](b *insertBuilder, col string, v *T) {
	if v == nil {
		return
	}
	b.cols = append(b.cols, col)
	b.args = append(b.args, *v)
}

func (b *insertBuilder) query() string {
	if len(b.cols) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING id, created_at", b.table)
	}
	placeholders := make([]string, len(b.cols))
	for i := range b.cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id, created_at",
		b.table, strings.Join(b.cols, ", "), strings.Join(placeholders, ", "))
}

// exec runs the insert and returns the generated id and creation time.
func (b *insertBuilder) exec(ctx context.Context, db *sql.DB) (int64, *time.Time, error) {
	var id int64
	var createdAt time.Time
	if err := db.QueryRowContext(ctx, b.query(), b.args...).Scan(&id, &createdAt); err != nil {
		return 0, nil, err
	}
	return id, &createdAt, nil
}
