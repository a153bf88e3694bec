// Shared helpers for opsboard CLI commands.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/dukaforge/opsboard/internal/merge"
	"github.com/dukaforge/opsboard/internal/paths"
	"github.com/dukaforge/opsboard/internal/sheet"
	"github.com/dukaforge/opsboard/pkg/types"
)

// openStore builds the configured store backend.
func openStore(cmd *cobra.Command, cfg types.Config) (sheet.Store, error) {
	switch cfg.Store {
	case types.StoreMemory:
		return sheet.NewMemory(), nil
	case types.StoreXLSX:
		return sheet.NewXLSX(cfg.Workbook), nil
	case types.StoreGSheets:
		return sheet.NewGSheets(cmd.Context(), cfg.SpreadsheetID, cfg.CredentialsFile)
	case types.StorePostgres:
		return sheet.NewPostgres(cfg.DSN)
	case types.StoreSQLite:
		dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		return sheet.NewSQLite(dataDir)
	default:
		return nil, types.ErrStoreUnknown
	}
}

// requireSchema resolves the module schema and checks the session's
// accessible-module list.
func requireSchema(module string) (types.Schema, error) {
	schema, err := types.SchemaFor(module)
	if err != nil {
		return types.Schema{}, fmt.Errorf("%w: %q", err, module)
	}
	if !app.session.CanAccess(module) {
		return types.Schema{}, fmt.Errorf("%w: %s (user %s)", types.ErrModuleForbidden, module, app.session.Username)
	}
	return schema, nil
}

// parseSets parses column=value arguments against the schema. Columns must be
// declared by the schema or already present in the loaded set; anything else
// is a typo, not a new column.
func parseSets(schema types.Schema, loaded types.RecordSet, args []string) (map[string]string, error) {
	sets := make(map[string]string, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid assignment %q (expected column=value)", arg)
		}
		col := strings.TrimSpace(parts[0])
		if !knownColumn(schema, loaded, col) {
			return nil, fmt.Errorf("%w: %q (valid: %s)", types.ErrUnknownColumn, col, strings.Join(schema.ColumnNames(), ", "))
		}
		sets[col] = parts[1]
	}
	return sets, nil
}

func knownColumn(schema types.Schema, loaded types.RecordSet, col string) bool {
	for _, c := range schema.Columns {
		if c.Name == col {
			return true
		}
	}
	return loaded.HasColumn(col)
}

// requiredColumns lists the fields that must be non-blank before an add-entry
// submit reaches the store.
var requiredColumns = map[string][]string{
	types.ModuleProduction: {types.ColItem},
	types.ModulePacking:    {types.ColItem},
	types.ModuleStore:      {types.ColItem, types.ColType},
	types.ModuleEcommerce:  {types.ColChannel},
	types.ModuleOrder:      {types.ColParty, types.ColItem, types.ColType},
}

// validateEntry checks a new entry before any store interaction: required
// fields must be non-blank and declared numeric fields must not be negative.
func validateEntry(schema types.Schema, rec types.Record) error {
	for _, col := range requiredColumns[schema.Module] {
		if strings.TrimSpace(rec.Get(col)) == "" {
			return fmt.Errorf("%w: %s", types.ErrFieldRequired, col)
		}
	}
	for _, col := range schema.Columns {
		if col.Kind != types.ColumnNumeric {
			continue
		}
		if cast.ToFloat64(rec.Get(col.Name)) < 0 {
			return fmt.Errorf("%w: %s", types.ErrNegativeQty, col.Name)
		}
	}
	return nil
}

// saveOptions wires the optional strict-save fingerprint. base must be the
// full set loaded at the start of this cycle. Fingerprints cover cell content
// only, never row refs, so the view load and the engine's fresh load hash
// identically when nothing changed in between.
func saveOptions(base types.RecordSet) merge.Options {
	var opts merge.Options
	if app.cfg.StrictSave {
		opts.BaseFingerprint = merge.Fingerprint(base)
	}
	return opts
}

// notifySave reports a completed save; notification failures do not fail the
// command.
func notifySave(cmd *cobra.Command, module string, res merge.Result) {
	if err := app.notifier.SaveApplied(app.session.Username, module, res.Updated, res.Added, res.Deleted); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: telegram notification failed: %v\n", err)
	}
}
