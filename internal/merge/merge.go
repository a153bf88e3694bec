// Package merge reconciles an edited subset of rows back into the
// authoritative full record set and persists it as a whole-table overwrite.
//
// There is no concurrency control: a writer that lands between the fresh base
// load and the overwrite loses its changes entirely. Last write wins. That is
// the documented behavior of the system, not an accident; Options.BaseFingerprint
// is the opt-in guard for callers that want to pin a revision.
package merge

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/dukaforge/opsboard/internal/sheet"
	"github.com/dukaforge/opsboard/pkg/types"
)

// Options tunes one save.
type Options struct {
	// PreEdit, when non-nil, is the subset that was presented to the editor
	// before the edit. Rows whose handle appears here but not in the edited
	// subset are removed from the base (delete-by-absence). Callers must only
	// pass this for admin sessions and must pass exactly the rows shown: the
	// difference is taken against this subset, never the full base, so rows
	// hidden by a filter or page are never mistaken for deletions.
	PreEdit *types.RecordSet

	// BaseFingerprint, when non-empty, aborts the save with ErrStaleBase if
	// the freshly loaded base no longer matches. Deviation from the original
	// last-write-wins behavior; off unless the caller opts in.
	BaseFingerprint string
}

// Result summarizes an applied save.
type Result struct {
	Updated int
	Added   int
	Deleted int
	Total   int
}

// Save applies the edited subset onto a freshly loaded base and overwrites
// the module's worksheet:
//
//  1. Rows whose handle exists in the base overwrite the matching base row
//     column by column; columns absent from the edited row keep their base
//     value, so a partial-row edit can never clear data it did not mention.
//  2. Rows with no handle are new: appended after every pre-existing row, in
//     the order they appear in the edited subset, regardless of where the
//     editor inserted them.
//  3. With Options.PreEdit set, handles present pre-edit but absent from the
//     edited subset are removed.
//
// A row carrying a handle that no longer exists in the base is skipped. After
// a successful save every handle the caller holds is stale; the next
// interaction must reload.
func Save(ctx context.Context, store sheet.Store, schema types.Schema, edited types.RecordSet, opts Options) (Result, error) {
	base, err := sheet.LoadBase(ctx, store, schema)
	if err != nil {
		return Result{}, fmt.Errorf("load base: %w", err)
	}

	if opts.BaseFingerprint != "" && Fingerprint(base) != opts.BaseFingerprint {
		return Result{}, types.ErrStaleBase
	}

	var res Result
	byOffset := make(map[int]int, base.Len())
	for i, r := range base.Records {
		if r.Ref.Valid {
			byOffset[r.Ref.Offset] = i
		}
	}

	for _, ed := range edited.Records {
		if ed.Ref.Valid {
			i, ok := byOffset[ed.Ref.Offset]
			if !ok {
				continue
			}
			for col, val := range ed.Fields {
				base.Records[i].Set(col, val)
				if !base.HasColumn(col) {
					base.Columns = append(base.Columns, col)
				}
			}
			res.Updated++
			continue
		}

		added := ed.Clone()
		added.Ref = types.RowRef{}
		base.Records = append(base.Records, added)
		for col := range added.Fields {
			if !base.HasColumn(col) {
				base.Columns = append(base.Columns, col)
			}
		}
		res.Added++
	}

	if opts.PreEdit != nil {
		editedRefs := edited.Refs()
		deleted := make(map[int]bool)
		for offset := range opts.PreEdit.Refs() {
			if !editedRefs[offset] {
				deleted[offset] = true
			}
		}
		if len(deleted) > 0 {
			kept := base.Records[:0]
			for _, r := range base.Records {
				if r.Ref.Valid && deleted[r.Ref.Offset] {
					res.Deleted++
					continue
				}
				kept = append(kept, r)
			}
			base.Records = kept
		}
	}

	// Refs are load-cycle-local; they never reach the store.
	for i := range base.Records {
		base.Records[i].Ref = types.RowRef{}
	}

	if err := store.Write(ctx, schema.Worksheet, base); err != nil {
		return Result{}, fmt.Errorf("persist %s: %w", schema.Worksheet, err)
	}
	res.Total = base.Len()
	return res, nil
}

// Fingerprint hashes a record set's visible content: columns in order, then
// each row's cells in column order. Row refs are excluded, so a reloaded but
// unchanged set fingerprints identically.
func Fingerprint(rs types.RecordSet) string {
	h := sha256.New()
	for _, col := range rs.Columns {
		h.Write([]byte(col))
		h.Write([]byte{0})
	}
	h.Write([]byte{1})
	for _, r := range rs.Records {
		for _, col := range rs.Columns {
			h.Write([]byte(r.Get(col)))
			h.Write([]byte{0})
		}
		extra := extraColumns(r, rs.Columns)
		for _, col := range extra {
			h.Write([]byte(col))
			h.Write([]byte{0})
			h.Write([]byte(r.Fields[col]))
			h.Write([]byte{0})
		}
		h.Write([]byte{1})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// extraColumns returns, sorted, the fields of r not covered by cols.
func extraColumns(r types.Record, cols []string) []string {
	known := make(map[string]bool, len(cols))
	for _, c := range cols {
		known[c] = true
	}
	var extra []string
	for c := range r.Fields {
		if !known[c] {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	return extra
}
