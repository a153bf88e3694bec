// Output rendering: tab-aligned tables by default, JSON with --json.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukaforge/opsboard/internal/report"
	"github.com/dukaforge/opsboard/pkg/types"
)

// today returns the current calendar date. Single seam for the date-relative
// filters.
var today = func() time.Time {
	return time.Now()
}

// num formats a float without trailing zeros. Fractional values stay
// fractional; rounding is only applied where a view explicitly asks for it.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func newTabWriter(cmd *cobra.Command) *tabwriter.Writer {
	return tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
}

// renderRecords prints a record set with its row handles.
func renderRecords(cmd *cobra.Command, rs types.RecordSet) error {
	if flagJSON {
		rows := make([]map[string]any, 0, rs.Len())
		for _, r := range rs.Records {
			row := make(map[string]any, len(r.Fields)+1)
			if r.Ref.Valid {
				row["row"] = r.Ref.Offset
			} else {
				row["row"] = nil
			}
			for k, v := range r.Fields {
				row[k] = v
			}
			rows = append(rows, row)
		}
		return printJSON(cmd, rows)
	}

	w := newTabWriter(cmd)
	fmt.Fprint(w, "Row")
	for _, col := range rs.Columns {
		fmt.Fprintf(w, "\t%s", col)
	}
	fmt.Fprintln(w)
	for _, r := range rs.Records {
		if r.Ref.Valid {
			fmt.Fprintf(w, "%d", r.Ref.Offset)
		} else {
			fmt.Fprint(w, "-")
		}
		for _, col := range rs.Columns {
			fmt.Fprintf(w, "\t%s", r.Get(col))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "(%d rows)\n", rs.Len())
	return w.Flush()
}

func renderBalances(cmd *cobra.Command, balances []report.ItemBalance) error {
	if flagJSON {
		return printJSON(cmd, balances)
	}
	w := newTabWriter(cmd)
	fmt.Fprintln(w, "Item\tInward\tOutward\tBalance")
	for _, b := range balances {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Item, num(b.Inward), num(b.Outward), num(b.Balance))
	}
	return w.Flush()
}

func renderPending(cmd *cobra.Command, pending []report.PendingBalance) error {
	if flagJSON {
		return printJSON(cmd, pending)
	}
	w := newTabWriter(cmd)
	fmt.Fprintln(w, "Party\tItem\tReceived\tDispatched\tPending")
	for _, p := range pending {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.Party, p.Item, num(p.Received), num(p.Dispatched), num(p.Pending))
	}
	return w.Flush()
}

func renderMatrix(cmd *cobra.Command, m report.PendingMatrix) error {
	if flagJSON {
		return printJSON(cmd, m)
	}
	w := newTabWriter(cmd)
	fmt.Fprint(w, "Item")
	for _, party := range m.Parties {
		fmt.Fprintf(w, "\t%s", party)
	}
	fmt.Fprintln(w, "\tTotal")
	for i, item := range m.Items {
		fmt.Fprint(w, item)
		for j := range m.Parties {
			fmt.Fprintf(w, "\t%s", num(m.Cells[i][j]))
		}
		fmt.Fprintf(w, "\t%s\n", num(m.RowTotals[i]))
	}
	fmt.Fprint(w, "Total")
	for _, t := range m.ColTotals {
		fmt.Fprintf(w, "\t%s", num(t))
	}
	fmt.Fprintf(w, "\t%s\n", num(m.Grand))
	return w.Flush()
}

// renderKPI prints the period comparison. KPI counts are an integer-display
// view: values are rounded for presentation only.
func renderKPI(cmd *cobra.Command, rep report.KPIReport) error {
	if flagJSON {
		return printJSON(cmd, rep)
	}
	w := newTabWriter(cmd)
	if !rep.Compare {
		fmt.Fprintf(w, "Period: %s\n", rep.Period)
		fmt.Fprintln(w, "Metric\tTotal")
		for _, m := range rep.Metrics {
			fmt.Fprintf(w, "%s\t%.0f\n", m.Name, m.Current)
		}
		return w.Flush()
	}

	fmt.Fprintf(w, "Period: %s (%s to %s, vs %s to %s)\n",
		rep.Period,
		rep.Current.Start.Format("2006-01-02"), rep.Current.End.Format("2006-01-02"),
		rep.Previous.Start.Format("2006-01-02"), rep.Previous.End.Format("2006-01-02"))
	fmt.Fprintln(w, "Metric\tCurrent\tPrevious\tDelta\tChange")
	for _, m := range rep.Metrics {
		change := "n/a"
		if m.Percent != nil {
			change = fmt.Sprintf("%+.1f%%", *m.Percent)
		}
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%+.0f\t%s\n", m.Name, m.Current, m.Previous, m.Delta, change)
	}
	return w.Flush()
}
