package report

import (
	"sort"

	"github.com/spf13/cast"

	"github.com/dukaforge/opsboard/pkg/types"
)

// ItemBalance is the stock position of one item: total Inward minus total
// Outward.
type ItemBalance struct {
	Item    string
	Inward  float64
	Outward float64
	Balance float64
}

// StockBalance groups the ledger by item and sums quantities per transaction
// type. A transaction type that is not exactly Inward or Outward (a blank
// cell included) contributes to neither sum; the row still creates its item
// group. Results are sorted by item name.
func StockBalance(rs types.RecordSet, itemCol, typeCol, qtyCol string) []ItemBalance {
	byItem := make(map[string]*ItemBalance)
	order := []string{}

	for _, r := range rs.Records {
		item := r.Get(itemCol)
		b, ok := byItem[item]
		if !ok {
			b = &ItemBalance{Item: item}
			byItem[item] = b
			order = append(order, item)
		}
		qty := cast.ToFloat64(r.Get(qtyCol))
		switch r.Get(typeCol) {
		case types.TxnInward:
			b.Inward += qty
		case types.TxnOutward:
			b.Outward += qty
		}
	}

	sort.Strings(order)
	out := make([]ItemBalance, 0, len(order))
	for _, item := range order {
		b := byItem[item]
		b.Balance = b.Inward - b.Outward
		out = append(out, *b)
	}
	return out
}
