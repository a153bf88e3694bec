// Generic module commands: every worksheet module gets list, add, set, and
// delete. Module-specific report views are attached by the store, order, and
// ecommerce command constructors.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/opsboard/internal/merge"
	"github.com/dukaforge/opsboard/internal/report"
	"github.com/dukaforge/opsboard/internal/sheet"
	"github.com/dukaforge/opsboard/pkg/types"
)

// Status view filters for list.
const (
	viewActive  = "active"
	viewHistory = "history"
	viewAll     = "all"
)

// newModuleCmd builds the command group for one worksheet module.
func newModuleCmd(module string) *cobra.Command {
	use := strings.ToLower(module)
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Work with the %s worksheet", module),
	}
	cmd.AddCommand(newListCmd(module))
	cmd.AddCommand(newAddCmd(module))
	cmd.AddCommand(newSetCmd(module))
	cmd.AddCommand(newDeleteCmd(module))
	return cmd
}

func newListCmd(module string) *cobra.Command {
	var (
		flagStatus   string
		flagDates    string
		flagPage     int
		flagPageSize int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s rows", module),
		Long: fmt.Sprintf(`List loads the whole %s worksheet and renders it with optional
status, date-bucket, and pagination filters. The Row column is a handle valid
only until the next save; use it with set and delete.`, module),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := requireSchema(module)
			if err != nil {
				return err
			}

			rs := sheet.Load(cmd.Context(), app.store, schema)

			rs, err = report.FilterBucket(rs, types.ColDate, flagDates, today())
			if err != nil {
				return fmt.Errorf("%w: %q (valid: %s)", err, flagDates, strings.Join(report.BucketTokens, ", "))
			}

			if schema.KindOf(types.ColStatus) == types.ColumnStatus {
				switch flagStatus {
				case viewActive:
					rs = rs.Filter(func(r types.Record) bool { return types.IsActive(r.Get(types.ColStatus)) })
				case viewHistory:
					rs = rs.Filter(func(r types.Record) bool { return !types.IsActive(r.Get(types.ColStatus)) })
				case viewAll:
				default:
					return fmt.Errorf("invalid --status %q (valid: active, history, all)", flagStatus)
				}
			}

			// Pagination narrows the view only; it never feeds delete detection.
			rs = rs.Page(flagPage, flagPageSize)

			return renderRecords(cmd, rs)
		},
	}
	cmd.Flags().StringVar(&flagStatus, "status", viewAll, "status view: active, history, all")
	cmd.Flags().StringVar(&flagDates, "dates", report.BucketAll, "date bucket filter")
	cmd.Flags().IntVar(&flagPage, "page", 1, "1-based page number")
	cmd.Flags().IntVar(&flagPageSize, "page-size", 0, "rows per page (0 = all)")
	return cmd
}

func newAddCmd(module string) *cobra.Command {
	return &cobra.Command{
		Use:   "add column=value ...",
		Short: fmt.Sprintf("Append a new %s entry", module),
		Long: fmt.Sprintf(`Add validates the entry and appends it to the end of the %s
worksheet. Undeclared columns already present in the worksheet are accepted.

Example:
  opsboard %s add Date=2026-08-30 Item=Widget Qty=25`, module, strings.ToLower(module)),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := requireSchema(module)
			if err != nil {
				return err
			}

			base := sheet.Load(cmd.Context(), app.store, schema)
			sets, err := parseSets(schema, base, args)
			if err != nil {
				return err
			}

			rec := types.Record{Fields: make(map[string]string, len(schema.Columns))}
			for _, col := range schema.Columns {
				rec.Set(col.Name, col.Kind.DefaultValue())
			}
			for col, val := range sets {
				rec.Set(col, val)
			}
			if err := validateEntry(schema, rec); err != nil {
				return err
			}

			edited := types.RecordSet{Columns: base.Columns, Records: []types.Record{rec}}
			res, err := merge.Save(cmd.Context(), app.store, schema, edited, saveOptions(base))
			if err != nil {
				return err
			}
			notifySave(cmd, module, res)
			fmt.Fprintf(cmd.OutOrStdout(), "added 1 row (%d total)\n", res.Total)
			return nil
		},
	}
}

func newSetCmd(module string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <row> column=value ...",
		Short: fmt.Sprintf("Edit one %s row", module),
		Long: fmt.Sprintf(`Set loads the %s worksheet, applies the assignments to the row
with the given handle, and saves. Columns not assigned keep their value.
Row handles come from list output and expire on every save.`, module),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := requireSchema(module)
			if err != nil {
				return err
			}
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row handle %q", args[0])
			}

			base := sheet.Load(cmd.Context(), app.store, schema)
			rec, ok := base.ByRef(row)
			if !ok {
				return fmt.Errorf("%w: %d", types.ErrRefNotLoaded, row)
			}
			sets, err := parseSets(schema, base, args[1:])
			if err != nil {
				return err
			}

			edited := rec.Clone()
			for col, val := range sets {
				edited.Set(col, val)
			}

			subset := types.RecordSet{Columns: base.Columns, Records: []types.Record{edited}}
			res, err := merge.Save(cmd.Context(), app.store, schema, subset, saveOptions(base))
			if err != nil {
				return err
			}
			notifySave(cmd, module, res)
			fmt.Fprintf(cmd.OutOrStdout(), "updated %d row(s)\n", res.Updated)
			return nil
		},
	}
}

func newDeleteCmd(module string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <row>",
		Short: fmt.Sprintf("Delete one %s row (admin only)", module),
		Long: fmt.Sprintf(`Delete removes the row with the given handle from the %s
worksheet. Deletion is detected by absence: the row is presented to the merge
as the pre-edit subset with an empty edited subset. Requires the admin role.`, module),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := requireSchema(module)
			if err != nil {
				return err
			}
			if !app.session.IsAdmin() {
				return fmt.Errorf("%w: delete requires the admin role", types.ErrModuleForbidden)
			}
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row handle %q", args[0])
			}

			base := sheet.Load(cmd.Context(), app.store, schema)
			rec, ok := base.ByRef(row)
			if !ok {
				return fmt.Errorf("%w: %d", types.ErrRefNotLoaded, row)
			}

			preEdit := types.RecordSet{Columns: base.Columns, Records: []types.Record{rec}}
			edited := types.RecordSet{Columns: base.Columns}
			opts := saveOptions(base)
			opts.PreEdit = &preEdit
			res, err := merge.Save(cmd.Context(), app.store, schema, edited, opts)
			if err != nil {
				return err
			}
			notifySave(cmd, module, res)
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d row(s) (%d remain)\n", res.Deleted, res.Total)
			return nil
		},
	}
}
