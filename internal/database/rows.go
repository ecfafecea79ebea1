// File: internal/database/rows.go
package database

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// assign copies vals into Scan destinations positionally. A nil value
// leaves the destination at its zero value.
func assign(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: %d destinations, %d values", len(dest), len(vals))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if vals[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(vals[i]))
	}
	return nil
}

// FakeRow is a pgx.Row scanning Values, or failing with Err.
type FakeRow struct {
	Values []any
	Err    error
}

func (r *FakeRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(dest, r.Values)
}

// FakeRows is a pgx.Rows over Data, one []any per row.
type FakeRows struct {
	Data    [][]any
	ScanErr error
	Error   error
	Closed  bool

	idx int
}

func (r *FakeRows) Close()                                       { r.Closed = true }
func (r *FakeRows) Err() error                                   { return r.Error }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) Next() bool                                   { return r.idx < len(r.Data) }
func (r *FakeRows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	row := r.Data[r.idx]
	r.idx++
	return assign(dest, row)
}
func (r *FakeRows) Values() ([]any, error) { return nil, nil }
func (r *FakeRows) RawValues() [][]byte    { return nil }
func (r *FakeRows) Conn() *pgx.Conn        { return nil }

// Tag builds a command tag reporting n affected rows.
func Tag(n int) pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", n))
}
