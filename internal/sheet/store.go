// Package sheet defines the whole-table spreadsheet store contract, the
// tolerant record-set loader, and the concrete store backends (memory, xlsx
// workbook, Google Sheets, Postgres, SQLite).
package sheet

import (
	"context"

	"github.com/dukaforge/opsboard/pkg/types"
)

// Store is the spreadsheet backend contract. Both operations are whole-table:
// Read returns every row of the named worksheet, Write replaces the whole
// worksheet with the given rows. No append or row-level mode is used even
// where a backend could offer one; the save path owns reconciliation.
//
// Records returned by Read carry no row refs; the loader assigns them.
type Store interface {
	// Read returns the full contents of the named worksheet.
	Read(ctx context.Context, table string) (types.RecordSet, error)

	// Write overwrites the named worksheet with the given record set.
	// Row refs on the records are ignored and never persisted.
	Write(ctx context.Context, table string, rs types.RecordSet) error
}
