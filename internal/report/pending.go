package report

import (
	"sort"

	"github.com/spf13/cast"

	"github.com/dukaforge/opsboard/pkg/types"
)

// PendingBalance is one (party, item) cell of the order pivot: quantity
// received minus quantity dispatched.
type PendingBalance struct {
	Party      string
	Item       string
	Received   float64
	Dispatched float64
	Pending    float64
}

// OrderPending pivots the order ledger by (party, item) x transaction type.
// Transaction types other than Order Received and Dispatch contribute to
// neither sum. Results are sorted by party, then item.
func OrderPending(rs types.RecordSet, partyCol, itemCol, typeCol, qtyCol string) []PendingBalance {
	type key struct{ party, item string }
	byKey := make(map[key]*PendingBalance)
	keys := []key{}

	for _, r := range rs.Records {
		k := key{party: r.Get(partyCol), item: r.Get(itemCol)}
		b, ok := byKey[k]
		if !ok {
			b = &PendingBalance{Party: k.party, Item: k.item}
			byKey[k] = b
			keys = append(keys, k)
		}
		qty := cast.ToFloat64(r.Get(qtyCol))
		switch r.Get(typeCol) {
		case types.TxnOrderReceived:
			b.Received += qty
		case types.TxnDispatch:
			b.Dispatched += qty
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].party != keys[j].party {
			return keys[i].party < keys[j].party
		}
		return keys[i].item < keys[j].item
	})
	out := make([]PendingBalance, 0, len(keys))
	for _, k := range keys {
		b := byKey[k]
		b.Pending = b.Received - b.Dispatched
		out = append(out, *b)
	}
	return out
}

// PendingMatrix pivots pending quantities by item (rows) x party (columns)
// with row, column, and grand totals.
type PendingMatrix struct {
	Items     []string
	Parties   []string
	Cells     [][]float64 // indexed [item][party]
	RowTotals []float64   // per item
	ColTotals []float64   // per party
	Grand     float64
}

// OrderMatrix builds the item x party matrix view from the pending pivot.
func OrderMatrix(rs types.RecordSet, partyCol, itemCol, typeCol, qtyCol string) PendingMatrix {
	pending := OrderPending(rs, partyCol, itemCol, typeCol, qtyCol)

	itemIdx := make(map[string]int)
	partyIdx := make(map[string]int)
	var m PendingMatrix
	for _, p := range pending {
		if _, ok := itemIdx[p.Item]; !ok {
			itemIdx[p.Item] = len(m.Items)
			m.Items = append(m.Items, p.Item)
		}
		if _, ok := partyIdx[p.Party]; !ok {
			partyIdx[p.Party] = len(m.Parties)
			m.Parties = append(m.Parties, p.Party)
		}
	}
	sort.Strings(m.Items)
	sort.Strings(m.Parties)
	for i, item := range m.Items {
		itemIdx[item] = i
	}
	for i, party := range m.Parties {
		partyIdx[party] = i
	}

	m.Cells = make([][]float64, len(m.Items))
	for i := range m.Cells {
		m.Cells[i] = make([]float64, len(m.Parties))
	}
	m.RowTotals = make([]float64, len(m.Items))
	m.ColTotals = make([]float64, len(m.Parties))

	for _, p := range pending {
		i, j := itemIdx[p.Item], partyIdx[p.Party]
		m.Cells[i][j] += p.Pending
		m.RowTotals[i] += p.Pending
		m.ColTotals[j] += p.Pending
		m.Grand += p.Pending
	}
	return m
}
