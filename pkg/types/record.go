package types

// RowRef is a load-cycle-local row handle. A valid ref carries the row's
// ordinal position in the worksheet at load time. Refs are never persisted:
// they exist only so an edited subset can be mapped back onto the full set
// within a single load/save cycle, and every ref is invalidated by a save.
// A record with an invalid ref is one the user created during this cycle.
type RowRef struct {
	Offset int
	Valid  bool
}

// NewRowRef returns a valid ref for the given load offset.
func NewRowRef(offset int) RowRef {
	return RowRef{Offset: offset, Valid: true}
}

// Record is one worksheet row: a column-name to cell-value mapping plus the
// load-cycle ref. Cell values are kept as strings, the way the backing
// worksheet stores them; numeric interpretation happens at aggregation time.
type Record struct {
	Ref    RowRef
	Fields map[string]string
}

// Get returns the value of the named column, or "" when absent.
func (r Record) Get(column string) string {
	if r.Fields == nil {
		return ""
	}
	return r.Fields[column]
}

// Set assigns the value of the named column, allocating the field map if needed.
func (r *Record) Set(column, value string) {
	if r.Fields == nil {
		r.Fields = make(map[string]string)
	}
	r.Fields[column] = value
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	fields := make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return Record{Ref: r.Ref, Fields: fields}
}

// RecordSet is an ordered in-memory table loaded from the backing store for
// one request cycle. Columns preserves the worksheet's header order.
type RecordSet struct {
	Columns []string
	Records []Record
}

// Len returns the number of records.
func (rs RecordSet) Len() int {
	return len(rs.Records)
}

// Clone returns a deep copy of the record set.
func (rs RecordSet) Clone() RecordSet {
	out := RecordSet{Columns: append([]string(nil), rs.Columns...)}
	out.Records = make([]Record, len(rs.Records))
	for i, r := range rs.Records {
		out.Records[i] = r.Clone()
	}
	return out
}

// HasColumn reports whether the named column is present.
func (rs RecordSet) HasColumn(name string) bool {
	for _, c := range rs.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Refs returns the set of valid row handles in the record set.
func (rs RecordSet) Refs() map[int]bool {
	refs := make(map[int]bool)
	for _, r := range rs.Records {
		if r.Ref.Valid {
			refs[r.Ref.Offset] = true
		}
	}
	return refs
}

// Filter returns the records matching pred. Row refs are preserved, so the
// filtered view can still be merged back onto the full set.
func (rs RecordSet) Filter(pred func(Record) bool) RecordSet {
	out := RecordSet{Columns: append([]string(nil), rs.Columns...)}
	for _, r := range rs.Records {
		if pred(r) {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

// Page returns the 1-based page of the given size. Out-of-range pages return
// an empty set with the same columns. A size of zero or less returns the set
// unchanged.
func (rs RecordSet) Page(page, size int) RecordSet {
	if size <= 0 {
		return rs
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(rs.Records) {
		return RecordSet{Columns: append([]string(nil), rs.Columns...)}
	}
	end := start + size
	if end > len(rs.Records) {
		end = len(rs.Records)
	}
	return RecordSet{
		Columns: append([]string(nil), rs.Columns...),
		Records: rs.Records[start:end],
	}
}

// ByRef returns the record with the given valid handle, if present.
func (rs RecordSet) ByRef(offset int) (Record, bool) {
	for _, r := range rs.Records {
		if r.Ref.Valid && r.Ref.Offset == offset {
			return r, true
		}
	}
	return Record{}, false
}
