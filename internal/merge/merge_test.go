package merge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/opsboard/internal/sheet"
	"github.com/dukaforge/opsboard/pkg/types"
)

// setupStore seeds an in-memory store with a three-row production worksheet
// and returns the store and schema.
func setupStore(t *testing.T) (*sheet.Memory, types.Schema) {
	t.Helper()
	schema, err := types.SchemaFor(types.ModuleProduction)
	require.NoError(t, err)

	store := sheet.NewMemory()
	store.Seed(schema.Worksheet, types.RecordSet{
		Columns: schema.ColumnNames(),
		Records: []types.Record{
			{Fields: map[string]string{"Date": "2026-08-01", "Item": "Widget", "Qty": "10", "Fulfilled Qty": "0", "Status": "Pending", "Remarks": ""}},
			{Fields: map[string]string{"Date": "2026-08-02", "Item": "Gear", "Qty": "5", "Fulfilled Qty": "2", "Status": "NextDay", "Remarks": "rush"}},
			{Fields: map[string]string{"Date": "2026-08-03", "Item": "Bolt", "Qty": "100", "Fulfilled Qty": "100", "Status": "Complete", "Remarks": ""}},
		},
	})
	return store, schema
}

func TestSaveIdempotent(t *testing.T) {
	store, schema := setupStore(t)
	ctx := context.Background()

	base := sheet.Load(ctx, store, schema)
	before := Fingerprint(base)

	// Saving the unmodified loaded set must round-trip byte-for-byte.
	res, err := Save(ctx, store, schema, base.Clone(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Updated)
	assert.Equal(t, 0, res.Added)

	after := sheet.Load(ctx, store, schema)
	assert.Equal(t, before, Fingerprint(after))
}

func TestSavePartialColumnsKeepBaseValues(t *testing.T) {
	store, schema := setupStore(t)
	ctx := context.Background()

	base := sheet.Load(ctx, store, schema)
	edited := types.RecordSet{
		Columns: base.Columns,
		Records: []types.Record{
			{Ref: types.NewRowRef(1), Fields: map[string]string{"Status": "Complete"}},
		},
	}

	res, err := Save(ctx, store, schema, edited, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)

	after := sheet.Load(ctx, store, schema)
	got, ok := after.ByRef(1)
	require.True(t, ok)
	assert.Equal(t, "Complete", got.Get("Status"))
	// Columns the edited row never mentioned are untouched.
	assert.Equal(t, "Gear", got.Get("Item"))
	assert.Equal(t, "5", got.Get("Qty"))
	assert.Equal(t, "rush", got.Get("Remarks"))
}

func TestSaveAppendsNewRowsAtEnd(t *testing.T) {
	store, schema := setupStore(t)
	ctx := context.Background()

	base := sheet.Load(ctx, store, schema)
	edited := types.RecordSet{
		Columns: base.Columns,
		Records: []types.Record{
			// New row listed before an existing-row edit: appended anyway.
			{Fields: map[string]string{"Date": "2026-08-04", "Item": "Cam", "Qty": "7", "Status": "Pending"}},
			{Ref: types.NewRowRef(0), Fields: map[string]string{"Fulfilled Qty": "4"}},
			{Fields: map[string]string{"Date": "2026-08-05", "Item": "Rod", "Qty": "3", "Status": "Pending"}},
		},
	}

	res, err := Save(ctx, store, schema, edited, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 5, res.Total)

	after := sheet.Load(ctx, store, schema)
	require.Equal(t, 5, after.Len())
	assert.Equal(t, "Cam", after.Records[3].Get("Item"))
	assert.Equal(t, "Rod", after.Records[4].Get("Item"))
	// Fresh handles only exist after reload.
	assert.Equal(t, types.NewRowRef(3), after.Records[3].Ref)
	assert.Equal(t, types.NewRowRef(4), after.Records[4].Ref)
}

func TestSaveDeleteByAbsence(t *testing.T) {
	store, schema := setupStore(t)
	ctx := context.Background()

	base := sheet.Load(ctx, store, schema)

	// The editor was shown rows 0 and 1 and removed row 0.
	row1, ok := base.ByRef(1)
	require.True(t, ok)
	row0, ok := base.ByRef(0)
	require.True(t, ok)
	preEdit := types.RecordSet{Columns: base.Columns, Records: []types.Record{row0, row1}}
	edited := types.RecordSet{Columns: base.Columns, Records: []types.Record{row1}}

	res, err := Save(ctx, store, schema, edited, Options{PreEdit: &preEdit})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Deleted)
	assert.Equal(t, 2, res.Total)

	after := sheet.Load(ctx, store, schema)
	require.Equal(t, 2, after.Len())
	assert.Equal(t, "Gear", after.Records[0].Get("Item"))
	assert.Equal(t, "Bolt", after.Records[1].Get("Item"))
}

func TestSaveRowOutsidePreEditIsNotDeleted(t *testing.T) {
	store, schema := setupStore(t)
	ctx := context.Background()

	base := sheet.Load(ctx, store, schema)

	// Rows 0 and 2 were never shown to the editor (filtered out). Their
	// absence from the edited subset must not delete them.
	row1, ok := base.ByRef(1)
	require.True(t, ok)
	preEdit := types.RecordSet{Columns: base.Columns, Records: []types.Record{row1}}
	edited := types.RecordSet{Columns: base.Columns, Records: []types.Record{row1}}

	res, err := Save(ctx, store, schema, edited, Options{PreEdit: &preEdit})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Deleted)
	assert.Equal(t, 3, res.Total)
}

func TestSaveSkipsStaleHandles(t *testing.T) {
	store, schema := setupStore(t)
	ctx := context.Background()

	base := sheet.Load(ctx, store, schema)
	before := Fingerprint(base)

	edited := types.RecordSet{
		Columns: base.Columns,
		Records: []types.Record{
			{Ref: types.NewRowRef(99), Fields: map[string]string{"Status": "Complete"}},
		},
	}
	res, err := Save(ctx, store, schema, edited, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Updated)

	after := sheet.Load(ctx, store, schema)
	assert.Equal(t, before, Fingerprint(after))
}

func TestSaveStaleBaseFingerprint(t *testing.T) {
	store, schema := setupStore(t)
	ctx := context.Background()

	base := sheet.Load(ctx, store, schema)
	pinned := Fingerprint(base)

	// A concurrent writer replaces the worksheet between load and save.
	store.Seed(schema.Worksheet, types.RecordSet{
		Columns: schema.ColumnNames(),
		Records: []types.Record{
			{Fields: map[string]string{"Date": "2026-08-09", "Item": "Other", "Qty": "1", "Fulfilled Qty": "0", "Status": "Pending", "Remarks": ""}},
		},
	})

	edited := types.RecordSet{
		Columns: base.Columns,
		Records: []types.Record{
			{Ref: types.NewRowRef(0), Fields: map[string]string{"Status": "Complete"}},
		},
	}
	_, err := Save(ctx, store, schema, edited, Options{BaseFingerprint: pinned})
	assert.ErrorIs(t, err, types.ErrStaleBase)

	// Without the pin the save silently wins, last-writer-takes-all.
	_, err = Save(ctx, store, schema, edited, Options{})
	assert.NoError(t, err)
}

func TestSavePropagatesStoreErrors(t *testing.T) {
	store, schema := setupStore(t)
	ctx := context.Background()
	edited := types.RecordSet{Columns: schema.ColumnNames()}

	readErr := errors.New("backend unreachable")
	store.ReadErr = readErr
	_, err := Save(ctx, store, schema, edited, Options{})
	assert.ErrorIs(t, err, readErr)

	store.ReadErr = nil
	writeErr := errors.New("write refused")
	store.WriteErr = writeErr
	_, err = Save(ctx, store, schema, edited, Options{})
	assert.ErrorIs(t, err, writeErr)
}

func TestFingerprintIgnoresRefs(t *testing.T) {
	rs := types.RecordSet{
		Columns: []string{"Item", "Qty"},
		Records: []types.Record{
			{Ref: types.NewRowRef(0), Fields: map[string]string{"Item": "Widget", "Qty": "1"}},
		},
	}
	unreffed := rs.Clone()
	unreffed.Records[0].Ref = types.RowRef{}
	assert.Equal(t, Fingerprint(rs), Fingerprint(unreffed))
}
