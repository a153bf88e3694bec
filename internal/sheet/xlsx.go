package sheet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/dukaforge/opsboard/pkg/types"
)

// XLSX stores each worksheet as a sheet of a local .xlsx workbook. The first
// row of a sheet is the header; everything below is data.
type XLSX struct {
	path string
}

// NewXLSX returns a store backed by the workbook at path. The file is created
// on first Write.
func NewXLSX(path string) *XLSX {
	return &XLSX{path: path}
}

// Read returns the full contents of the named sheet.
func (s *XLSX) Read(ctx context.Context, table string) (types.RecordSet, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return types.RecordSet{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(table)
	if err != nil {
		return types.RecordSet{}, fmt.Errorf("read sheet %q: %w", table, err)
	}
	if len(rows) == 0 {
		return types.RecordSet{}, nil
	}

	rs := types.RecordSet{Columns: append([]string(nil), rows[0]...)}
	for _, row := range rows[1:] {
		rec := types.Record{Fields: make(map[string]string, len(rs.Columns))}
		for i, col := range rs.Columns {
			if i < len(row) {
				rec.Fields[col] = row[i]
			} else {
				rec.Fields[col] = ""
			}
		}
		rs.Records = append(rs.Records, rec)
	}
	return rs, nil
}

// Write replaces the named sheet with the record set and saves the workbook.
func (s *XLSX) Write(ctx context.Context, table string, rs types.RecordSet) error {
	f, err := excelize.OpenFile(s.path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist):
		f = excelize.NewFile()
	default:
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(table); err == nil && idx != -1 {
		if err := f.DeleteSheet(table); err != nil {
			return fmt.Errorf("reset sheet %q: %w", table, err)
		}
	}
	if _, err := f.NewSheet(table); err != nil {
		return fmt.Errorf("create sheet %q: %w", table, err)
	}

	header := make([]interface{}, len(rs.Columns))
	for i, c := range rs.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(table, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, rec := range rs.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(rs.Columns))
		for j, col := range rs.Columns {
			row[j] = rec.Get(col)
		}
		if err := f.SetSheetRow(table, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
