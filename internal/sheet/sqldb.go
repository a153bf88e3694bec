package sheet

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dukaforge/opsboard/pkg/types"
)

// SQL stores each worksheet as one relational table of TEXT columns. Write
// drops and recreates the table inside a transaction, so the backend keeps
// the same whole-table overwrite semantics as a spreadsheet: there is no
// row-level update path and the last writer wins entirely.
//
// Dialect differences (identifier quoting, parameter placeholders) are
// injected by the postgres and sqlite constructors.
type SQL struct {
	db          *sql.DB
	quoteIdent  func(string) string
	placeholder func(i int) string
}

// Close releases the underlying database handle.
func (s *SQL) Close() error {
	return s.db.Close()
}

// Read returns the full contents of the named table. A missing table is a
// read failure; the loader downgrades it to an empty set.
func (s *SQL) Read(ctx context.Context, table string) (types.RecordSet, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+s.quoteIdent(table))
	if err != nil {
		return types.RecordSet{}, fmt.Errorf("read table %q: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return types.RecordSet{}, fmt.Errorf("columns of %q: %w", table, err)
	}

	rs := types.RecordSet{Columns: append([]string(nil), cols...)}
	for rows.Next() {
		cells := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return types.RecordSet{}, fmt.Errorf("scan %q: %w", table, err)
		}
		rec := types.Record{Fields: make(map[string]string, len(cols))}
		for i, col := range cols {
			rec.Fields[col] = cells[i].String
		}
		rs.Records = append(rs.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return types.RecordSet{}, fmt.Errorf("iterate %q: %w", table, err)
	}
	return rs, nil
}

// Write replaces the named table with the record set.
func (s *SQL) Write(ctx context.Context, table string, rs types.RecordSet) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+s.quoteIdent(table)); err != nil {
		return fmt.Errorf("drop table %q: %w", table, err)
	}

	if len(rs.Columns) == 0 {
		return tx.Commit()
	}

	defs := make([]string, len(rs.Columns))
	for i, col := range rs.Columns {
		defs[i] = s.quoteIdent(col) + " TEXT"
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", s.quoteIdent(table), strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("create table %q: %w", table, err)
	}

	quoted := make([]string, len(rs.Columns))
	params := make([]string, len(rs.Columns))
	for i, col := range rs.Columns {
		quoted[i] = s.quoteIdent(col)
		params[i] = s.placeholder(i + 1)
	}
	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		s.quoteIdent(table),
		strings.Join(quoted, ", "),
		strings.Join(params, ", "),
	)
	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("prepare insert for %q: %w", table, err)
	}
	defer stmt.Close()

	for _, rec := range rs.Records {
		args := make([]any, len(rs.Columns))
		for i, col := range rs.Columns {
			args[i] = rec.Get(col)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert into %q: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit write to %q: %w", table, err)
	}
	return nil
}
