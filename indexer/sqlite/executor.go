// Package sqlite runs indexer queries against a local SQLite database with
// the same schema Torii serves, for offline inspection and tests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tidwall/sjson"
	_ "modernc.org/sqlite"
)

// Executor answers queries with the JSON array shape of Torii's SQL endpoint.
type Executor struct {
	db *sql.DB
}

// Open opens dsn with the pure-Go sqlite driver.
func Open(dsn string) (*Executor, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// In-memory databases are per connection.
	db.SetMaxOpenConns(1)
	return &Executor{db: db}, nil
}

func (e *Executor) DB() *sql.DB {
	return e.db
}

func (e *Executor) Close() error {
	return e.db.Close()
}

// Exec runs schema or fixture statements.
func (e *Executor) Exec(ctx context.Context, stmts ...string) error {
	for _, stmt := range stmts {
		if _, err := e.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec: %w", err)
		}
	}
	return nil
}

func (e *Executor) Query(ctx context.Context, query string) ([]byte, error) {
	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []byte("[]")
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for n := 0; rows.Next(); n++ {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		row := []byte("{}")
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row, err = sjson.SetBytes(row, escapeKey(col), v)
			if err != nil {
				return nil, fmt.Errorf("encode column %s: %w", col, err)
			}
		}

		out, err = sjson.SetRawBytes(out, "-1", row)
		if err != nil {
			return nil, fmt.Errorf("encode row %d: %w", n, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// escapeKey keeps column names with path characters as literal keys.
var keyEscaper = strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`, "@", `\@`, ":", `\:`)

func escapeKey(col string) string {
	return keyEscaper.Replace(col)
}
