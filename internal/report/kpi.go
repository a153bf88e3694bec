package report

import (
	"time"

	"github.com/spf13/cast"

	"github.com/dukaforge/opsboard/pkg/types"
)

// KPI period tokens.
const (
	PeriodToday     = "Today"
	PeriodYesterday = "Yesterday"
	PeriodLast7     = "Last 7 Days"
	PeriodLast15    = "Last 15 Days"
	PeriodLast30    = "Last 30 Days"
	PeriodThisMonth = "This Month"
	PeriodAllTime   = "All Time"
)

// PeriodTokens lists the accepted tokens in display order.
var PeriodTokens = []string{
	PeriodToday, PeriodYesterday,
	PeriodLast7, PeriodLast15, PeriodLast30,
	PeriodThisMonth, PeriodAllTime,
}

// Window is an inclusive calendar date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the window.
func (w Window) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Days returns the window length in days.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// PeriodWindows resolves a period token into the current window and the
// trailing previous window of equal length immediately preceding it. For
// "All Time" compare is false and both windows are zero: totals are reported
// with no comparison. Returns ErrUnknownPeriod for unrecognized tokens.
func PeriodWindows(token string, today time.Time) (current, previous Window, compare bool, err error) {
	today = DateOnly(today)

	span := func(days int, end time.Time) (Window, Window) {
		cur := Window{Start: end.AddDate(0, 0, -(days - 1)), End: end}
		prev := Window{Start: cur.Start.AddDate(0, 0, -days), End: cur.Start.AddDate(0, 0, -1)}
		return cur, prev
	}

	switch token {
	case PeriodToday:
		current, previous = span(1, today)
	case PeriodYesterday:
		current, previous = span(1, today.AddDate(0, 0, -1))
	case PeriodLast7:
		current, previous = span(7, today)
	case PeriodLast15:
		current, previous = span(15, today)
	case PeriodLast30:
		current, previous = span(30, today)
	case PeriodThisMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		current = Window{Start: start, End: today}
		current, previous = span(current.Days(), today)
	case PeriodAllTime:
		return Window{}, Window{}, false, nil
	default:
		return Window{}, Window{}, false, types.ErrUnknownPeriod
	}
	return current, previous, true, nil
}

// Metric is one KPI column compared across the two windows. Percent is nil
// when the previous-window sum is zero: the delta is reported raw instead of
// dividing by zero. With no comparison (All Time) only Current is meaningful.
type Metric struct {
	Name     string
	Current  float64
	Previous float64
	Delta    float64
	Percent  *float64
}

// KPIReport is the period comparison for one set of value columns.
type KPIReport struct {
	Period   string
	Current  Window
	Previous Window
	Compare  bool
	Metrics  []Metric
}

// KPI sums each value column over the current and previous windows of the
// named period. Rows whose date cell does not parse are skipped for every
// period except All Time, which sums all rows with no date predicate.
func KPI(rs types.RecordSet, dateColumn string, valueColumns []string, period string, today time.Time) (KPIReport, error) {
	current, previous, compare, err := PeriodWindows(period, today)
	if err != nil {
		return KPIReport{}, err
	}

	rep := KPIReport{Period: period, Current: current, Previous: previous, Compare: compare}
	for _, col := range valueColumns {
		m := Metric{Name: col}
		for _, r := range rs.Records {
			v := cast.ToFloat64(r.Get(col))
			if !compare {
				m.Current += v
				continue
			}
			d, ok := ParseDate(r.Get(dateColumn))
			if !ok {
				continue
			}
			switch {
			case current.Contains(d):
				m.Current += v
			case previous.Contains(d):
				m.Previous += v
			}
		}
		if compare {
			m.Delta = m.Current - m.Previous
			if m.Previous != 0 {
				pct := m.Delta / m.Previous * 100
				m.Percent = &pct
			}
		}
		rep.Metrics = append(rep.Metrics, m)
	}
	return rep, nil
}
