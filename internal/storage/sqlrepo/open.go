package sqlrepo

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Dialect carries the per-engine pieces; everything else is portable SQL
// with ? placeholders.
type Dialect struct {
	Driver         string
	schema         []string
	averageStaySQL string
}

var (
	SQLite = Dialect{Driver: "sqlite", schema: sqliteSchema, averageStaySQL: sqliteAverageStaySQL}
	MySQL  = Dialect{Driver: "mysql", schema: mysqlSchema, averageStaySQL: mysqlAverageStaySQL}
)

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "sqlite", "sqlite3", "":
		return SQLite, nil
	case "mysql":
		return MySQL, nil
	}
	return Dialect{}, fmt.Errorf("unsupported db driver %q", driver)
}

// Handle is the storage handle injected into the repository.
type Handle struct {
	DB      *sql.DB
	Dialect Dialect
}

// Open connects to the database, verifies the connection and creates the
// five tables when they are missing. Safe to call on every start.
func Open(ctx context.Context, driver, dsn string) (*Handle, error) {
	d, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(d.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.Driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", d.Driver, err)
	}
	h := &Handle{DB: db, Dialect: d}
	if err := h.CreateSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

func (h *Handle) CreateSchema(ctx context.Context) error {
	for _, stmt := range h.Dialect.schema {
		if _, err := h.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

func (h *Handle) Close() error { return h.DB.Close() }
