package report

import (
	"time"

	"github.com/dukaforge/opsboard/pkg/types"
)

// Date bucket tokens for list filtering.
const (
	BucketToday     = "Today"
	BucketYesterday = "Yesterday"
	BucketPrev7     = "Prev 7 Days"
	BucketPrev15    = "Prev 15 Days"
	BucketPrev30    = "Prev 30 Days"
	BucketPrevAll   = "Prev All"
	BucketNext7     = "Next 7 Days"
	BucketNext15    = "Next 15 Days"
	BucketNext30    = "Next 30 Days"
	BucketThisMonth = "This Month"
	BucketAll       = "All"
)

// BucketTokens lists the accepted tokens in display order.
var BucketTokens = []string{
	BucketToday, BucketYesterday,
	BucketPrev7, BucketPrev15, BucketPrev30, BucketPrevAll,
	BucketNext7, BucketNext15, BucketNext30,
	BucketThisMonth, BucketAll,
}

// FilterBucket returns the subset of rows whose date falls inside the named
// bucket relative to today. "All" applies no predicate at all, so rows with
// unparseable dates pass through it and only it; every other bucket excludes
// them. "Prev N Days" is the N days strictly before today, "Next N Days" the
// N days strictly after, so a row dated today matches Today and This Month
// and nothing else.
func FilterBucket(rs types.RecordSet, dateColumn, token string, today time.Time) (types.RecordSet, error) {
	if token == BucketAll {
		return rs, nil
	}

	today = DateOnly(today)
	pred, err := bucketPredicate(token, today)
	if err != nil {
		return types.RecordSet{}, err
	}

	return rs.Filter(func(r types.Record) bool {
		d, ok := ParseDate(r.Get(dateColumn))
		if !ok {
			return false
		}
		return pred(d)
	}), nil
}

func bucketPredicate(token string, today time.Time) (func(time.Time) bool, error) {
	between := func(start, end time.Time) func(time.Time) bool {
		return func(d time.Time) bool {
			return !d.Before(start) && !d.After(end)
		}
	}
	switch token {
	case BucketToday:
		return between(today, today), nil
	case BucketYesterday:
		y := today.AddDate(0, 0, -1)
		return between(y, y), nil
	case BucketPrev7:
		return between(today.AddDate(0, 0, -7), today.AddDate(0, 0, -1)), nil
	case BucketPrev15:
		return between(today.AddDate(0, 0, -15), today.AddDate(0, 0, -1)), nil
	case BucketPrev30:
		return between(today.AddDate(0, 0, -30), today.AddDate(0, 0, -1)), nil
	case BucketPrevAll:
		return func(d time.Time) bool { return d.Before(today) }, nil
	case BucketNext7:
		return between(today.AddDate(0, 0, 1), today.AddDate(0, 0, 7)), nil
	case BucketNext15:
		return between(today.AddDate(0, 0, 1), today.AddDate(0, 0, 15)), nil
	case BucketNext30:
		return between(today.AddDate(0, 0, 1), today.AddDate(0, 0, 30)), nil
	case BucketThisMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return between(start, start.AddDate(0, 1, -1)), nil
	default:
		return nil, types.ErrUnknownBucket
	}
}
