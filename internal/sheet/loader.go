package sheet

import (
	"context"

	"github.com/dukaforge/opsboard/pkg/types"
)

// Load reads the module's worksheet into a record set for one view cycle.
// Any read failure (worksheet missing, backend unreachable, malformed
// content) is downgraded to an empty set carrying the schema columns; views
// render "no data" rather than an error state. Row refs are assigned 0..N-1
// in storage order and every declared-but-missing column is back-filled with
// its kind's default, so downstream code can assume column presence.
func Load(ctx context.Context, store Store, schema types.Schema) types.RecordSet {
	rs, err := store.Read(ctx, schema.Worksheet)
	if err != nil {
		rs = types.RecordSet{}
	}
	return prepare(rs, schema)
}

// LoadBase reads the worksheet as the authoritative base for a save. Unlike
// Load it propagates read errors: overwriting the worksheet from a base that
// silently downgraded to empty would destroy every row that failed to read,
// so the save aborts instead.
func LoadBase(ctx context.Context, store Store, schema types.Schema) (types.RecordSet, error) {
	rs, err := store.Read(ctx, schema.Worksheet)
	if err != nil {
		return types.RecordSet{}, err
	}
	return prepare(rs, schema), nil
}

// prepare assigns fresh row refs and back-fills declared columns.
func prepare(rs types.RecordSet, schema types.Schema) types.RecordSet {
	for _, col := range schema.Columns {
		if !rs.HasColumn(col.Name) {
			rs.Columns = append(rs.Columns, col.Name)
		}
	}
	for i := range rs.Records {
		r := &rs.Records[i]
		r.Ref = types.NewRowRef(i)
		for _, col := range schema.Columns {
			if r.Get(col.Name) == "" {
				r.Set(col.Name, col.Kind.DefaultValue())
			}
		}
	}
	return rs
}
