package sheet

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/dukaforge/opsboard/pkg/types"
)

// GSheets stores each worksheet as a tab of one Google spreadsheet. Reads use
// Values.Get over the whole tab; writes clear the tab and re-upload every row
// with RAW input, preserving the whole-table overwrite contract.
type GSheets struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewGSheets builds a store for the given spreadsheet. credentialsFile may be
// empty, in which case application default credentials are used.
func NewGSheets(ctx context.Context, spreadsheetID, credentialsFile string) (*GSheets, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &GSheets{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Read returns the full contents of the named tab.
func (s *GSheets) Read(ctx context.Context, table string) (types.RecordSet, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, table).Context(ctx).Do()
	if err != nil {
		return types.RecordSet{}, fmt.Errorf("read %q: %w", table, err)
	}
	if len(resp.Values) == 0 {
		return types.RecordSet{}, nil
	}

	header := resp.Values[0]
	rs := types.RecordSet{Columns: make([]string, len(header))}
	for i, v := range header {
		rs.Columns[i] = cast.ToString(v)
	}
	for _, row := range resp.Values[1:] {
		rec := types.Record{Fields: make(map[string]string, len(rs.Columns))}
		for i, col := range rs.Columns {
			if i < len(row) {
				rec.Fields[col] = cast.ToString(row[i])
			} else {
				rec.Fields[col] = ""
			}
		}
		rs.Records = append(rs.Records, rec)
	}
	return rs, nil
}

// Write clears the named tab and uploads header plus rows.
func (s *GSheets) Write(ctx context.Context, table string, rs types.RecordSet) error {
	if _, err := s.svc.Spreadsheets.Values.Clear(
		s.spreadsheetID, table, &sheets.ClearValuesRequest{},
	).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %q: %w", table, err)
	}

	values := make([][]interface{}, 0, rs.Len()+1)
	header := make([]interface{}, len(rs.Columns))
	for i, c := range rs.Columns {
		header[i] = c
	}
	values = append(values, header)
	for _, rec := range rs.Records {
		row := make([]interface{}, len(rs.Columns))
		for i, col := range rs.Columns {
			row[i] = rec.Get(col)
		}
		values = append(values, row)
	}

	if _, err := s.svc.Spreadsheets.Values.Update(
		s.spreadsheetID, table+"!A1", &sheets.ValueRange{Values: values},
	).ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("write %q: %w", table, err)
	}
	return nil
}
