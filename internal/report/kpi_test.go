package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/opsboard/pkg/types"
)

var kpiToday = time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)

func day(offset int) string {
	return DateOnly(kpiToday).AddDate(0, 0, offset).Format("2006-01-02")
}

// sales builds an ecommerce record set from (date, orders) pairs.
func sales(rows ...[2]string) types.RecordSet {
	rs := types.RecordSet{Columns: []string{"Date", "Order Qty"}}
	for _, row := range rows {
		rs.Records = append(rs.Records, types.Record{
			Fields: map[string]string{"Date": row[0], "Order Qty": row[1]},
		})
	}
	return rs
}

func TestPeriodWindowsEqualLength(t *testing.T) {
	tests := []struct {
		period    string
		wantDays  int
		wantStart int // current start, days relative to today
		wantEnd   int
	}{
		{period: PeriodToday, wantDays: 1, wantStart: 0, wantEnd: 0},
		{period: PeriodYesterday, wantDays: 1, wantStart: -1, wantEnd: -1},
		{period: PeriodLast7, wantDays: 7, wantStart: -6, wantEnd: 0},
		{period: PeriodLast15, wantDays: 15, wantStart: -14, wantEnd: 0},
		{period: PeriodLast30, wantDays: 30, wantStart: -29, wantEnd: 0},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			current, previous, compare, err := PeriodWindows(tt.period, kpiToday)
			require.NoError(t, err)
			require.True(t, compare)

			base := DateOnly(kpiToday)
			assert.Equal(t, base.AddDate(0, 0, tt.wantStart), current.Start)
			assert.Equal(t, base.AddDate(0, 0, tt.wantEnd), current.End)

			// Previous window is the equal-length span ending the day before
			// the current window starts.
			assert.Equal(t, current.Start.AddDate(0, 0, -1), previous.End)
			assert.Equal(t, tt.wantDays, current.Days())
			assert.Equal(t, current.Days(), previous.Days())
		})
	}
}

func TestPeriodWindowsLast7Exact(t *testing.T) {
	current, previous, compare, err := PeriodWindows(PeriodLast7, kpiToday)
	require.NoError(t, err)
	require.True(t, compare)

	base := DateOnly(kpiToday)
	assert.Equal(t, base.AddDate(0, 0, -6), current.Start)
	assert.Equal(t, base, current.End)
	assert.Equal(t, base.AddDate(0, 0, -13), previous.Start)
	assert.Equal(t, base.AddDate(0, 0, -7), previous.End)
}

func TestPeriodWindowsAllTime(t *testing.T) {
	_, _, compare, err := PeriodWindows(PeriodAllTime, kpiToday)
	require.NoError(t, err)
	assert.False(t, compare)
}

func TestPeriodWindowsUnknownToken(t *testing.T) {
	_, _, _, err := PeriodWindows("Fortnight", kpiToday)
	assert.ErrorIs(t, err, types.ErrUnknownPeriod)
}

func TestKPISumsWindows(t *testing.T) {
	rs := sales(
		[2]string{day(0), "4"},
		[2]string{day(-3), "6"},
		[2]string{day(-7), "2"},
		[2]string{day(-13), "3"},
		[2]string{day(-14), "99"}, // outside both windows
		[2]string{"not-a-date", "50"},
	)

	rep, err := KPI(rs, "Date", []string{"Order Qty"}, PeriodLast7, kpiToday)
	require.NoError(t, err)
	require.Len(t, rep.Metrics, 1)

	m := rep.Metrics[0]
	assert.Equal(t, 10.0, m.Current)
	assert.Equal(t, 5.0, m.Previous)
	assert.Equal(t, 5.0, m.Delta)
	require.NotNil(t, m.Percent)
	assert.InDelta(t, 100.0, *m.Percent, 0.001)
}

func TestKPIZeroPreviousReportsRawDelta(t *testing.T) {
	rs := sales([2]string{day(0), "7"})

	rep, err := KPI(rs, "Date", []string{"Order Qty"}, PeriodLast7, kpiToday)
	require.NoError(t, err)

	m := rep.Metrics[0]
	assert.Equal(t, 7.0, m.Current)
	assert.Equal(t, 0.0, m.Previous)
	assert.Equal(t, 7.0, m.Delta)
	assert.Nil(t, m.Percent)
}

func TestKPIAllTimeTotalsOnly(t *testing.T) {
	rs := sales(
		[2]string{day(0), "4"},
		[2]string{day(-400), "6"},
		[2]string{"not-a-date", "1"}, // no date predicate for All Time
	)

	rep, err := KPI(rs, "Date", []string{"Order Qty"}, PeriodAllTime, kpiToday)
	require.NoError(t, err)
	assert.False(t, rep.Compare)

	m := rep.Metrics[0]
	assert.Equal(t, 11.0, m.Current)
	assert.Nil(t, m.Percent)
}
