package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() RecordSet {
	rs := RecordSet{Columns: []string{"Item", "Qty"}}
	for i, item := range []string{"Widget", "Gear", "Bolt", "Cam", "Rod"} {
		rs.Records = append(rs.Records, Record{
			Ref:    NewRowRef(i),
			Fields: map[string]string{"Item": item, "Qty": "1"},
		})
	}
	return rs
}

func TestRecordGetSet(t *testing.T) {
	var r Record
	assert.Equal(t, "", r.Get("Item"))

	r.Set("Item", "Widget")
	assert.Equal(t, "Widget", r.Get("Item"))
	assert.Equal(t, "", r.Get("Qty"))
}

func TestRecordCloneIsDeep(t *testing.T) {
	r := Record{Ref: NewRowRef(2), Fields: map[string]string{"Item": "Widget"}}
	c := r.Clone()
	c.Set("Item", "Mutated")

	assert.Equal(t, "Widget", r.Get("Item"))
	assert.Equal(t, r.Ref, c.Ref)
}

func TestRecordSetCloneIsDeep(t *testing.T) {
	rs := sampleSet()
	c := rs.Clone()
	c.Records[0].Set("Item", "Mutated")
	c.Columns[0] = "Mutated"

	assert.Equal(t, "Widget", rs.Records[0].Get("Item"))
	assert.Equal(t, "Item", rs.Columns[0])
}

func TestFilterPreservesRefs(t *testing.T) {
	rs := sampleSet()
	got := rs.Filter(func(r Record) bool { return r.Get("Item") == "Bolt" })

	require.Equal(t, 1, got.Len())
	assert.Equal(t, NewRowRef(2), got.Records[0].Ref)
	assert.Equal(t, rs.Columns, got.Columns)
}

func TestPage(t *testing.T) {
	rs := sampleSet()

	tests := []struct {
		name      string
		page      int
		size      int
		wantItems []string
	}{
		{name: "first page", page: 1, size: 2, wantItems: []string{"Widget", "Gear"}},
		{name: "middle page", page: 2, size: 2, wantItems: []string{"Bolt", "Cam"}},
		{name: "short last page", page: 3, size: 2, wantItems: []string{"Rod"}},
		{name: "past the end", page: 4, size: 2, wantItems: nil},
		{name: "zero size returns all", page: 1, size: 0, wantItems: []string{"Widget", "Gear", "Bolt", "Cam", "Rod"}},
		{name: "page below one clamps", page: 0, size: 3, wantItems: []string{"Widget", "Gear", "Bolt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rs.Page(tt.page, tt.size)
			require.Equal(t, len(tt.wantItems), got.Len())
			assert.Equal(t, rs.Columns, got.Columns)
			for i, want := range tt.wantItems {
				assert.Equal(t, want, got.Records[i].Get("Item"))
			}
		})
	}
}

func TestByRef(t *testing.T) {
	rs := sampleSet()

	got, ok := rs.ByRef(3)
	require.True(t, ok)
	assert.Equal(t, "Cam", got.Get("Item"))

	_, ok = rs.ByRef(99)
	assert.False(t, ok)
}

func TestRefsSkipsInvalidHandles(t *testing.T) {
	rs := sampleSet()
	rs.Records = append(rs.Records, Record{Fields: map[string]string{"Item": "New"}})

	refs := rs.Refs()
	assert.Len(t, refs, 5)
	assert.False(t, refs[5])
}
