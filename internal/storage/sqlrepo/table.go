package sqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel_inventory/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// Table implements domain.Store for one entity table. columns lists the
// mutable columns in the order args returns them and scan reads them (after id).
type Table[T any] struct {
	db   *sql.DB
	name string
	scan func(rowScanner) (T, error)
	args func(T) []any

	insertSQL, selectSQL, getSQL, updateSQL, deleteSQL string
}

func newTable[T any](db *sql.DB, name string, columns []string, scan func(rowScanner) (T, error), args func(T) []any) *Table[T] {
	cols := strings.Join(columns, ", ")
	sets := make([]string, len(columns))
	for i, c := range columns {
		sets[i] = c + " = ?"
	}
	return &Table[T]{
		db:        db,
		name:      name,
		scan:      scan,
		args:      args,
		insertSQL: fmt.Sprintf("INSERT INTO %s (id, %s) VALUES (?%s)", name, cols, strings.Repeat(", ?", len(columns))),
		selectSQL: fmt.Sprintf("SELECT id, %s FROM %s", cols, name),
		getSQL:    fmt.Sprintf("SELECT id, %s FROM %s WHERE id = ?", cols, name),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", name, strings.Join(sets, ", ")),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE id = ?", name),
	}
}

func (t *Table[T]) Insert(ctx context.Context, id string, v T) (err error) {
	defer observe(t.name+".insert", time.Now(), &err)
	_, err = t.db.ExecContext(ctx, t.insertSQL, append([]any{id}, t.args(v)...)...)
	return err
}

func (t *Table[T]) Get(ctx context.Context, id string) (_ T, err error) {
	defer observe(t.name+".get", time.Now(), &err)
	v, err := t.scan(t.db.QueryRowContext(ctx, t.getSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		err = domain.ErrNotFound
	}
	return v, err
}

// List returns every row, in storage order. Never nil.
func (t *Table[T]) List(ctx context.Context) (_ []T, err error) {
	defer observe(t.name+".list", time.Now(), &err)
	rows, err := t.db.QueryContext(ctx, t.selectSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := t.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the mutable columns. A missing id is not an error.
func (t *Table[T]) Update(ctx context.Context, id string, v T) (err error) {
	defer observe(t.name+".update", time.Now(), &err)
	_, err = t.db.ExecContext(ctx, t.updateSQL, append(t.args(v), id)...)
	return err
}

// Delete removes the row only; dependents are left in place.
func (t *Table[T]) Delete(ctx context.Context, id string) (err error) {
	defer observe(t.name+".delete", time.Now(), &err)
	_, err = t.db.ExecContext(ctx, t.deleteSQL, id)
	return err
}
