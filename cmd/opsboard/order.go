// Order module commands: the generic CRUD group plus the pending-balance and
// matrix views.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/opsboard/internal/report"
	"github.com/dukaforge/opsboard/internal/sheet"
	"github.com/dukaforge/opsboard/pkg/types"
)

func newOrderCmd() *cobra.Command {
	cmd := newModuleCmd(types.ModuleOrder)
	cmd.AddCommand(newPendingCmd())
	cmd.AddCommand(newMatrixCmd())
	return cmd
}

func newPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "Pending balance per (party, item): received minus dispatched",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := requireSchema(types.ModuleOrder)
			if err != nil {
				return err
			}
			rs := sheet.Load(cmd.Context(), app.store, schema)
			pending := report.OrderPending(rs, types.ColParty, types.ColItem, types.ColType, types.ColQty)
			return renderPending(cmd, pending)
		},
	}
}

func newMatrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Pending balance matrix: items by parties with totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := requireSchema(types.ModuleOrder)
			if err != nil {
				return err
			}
			rs := sheet.Load(cmd.Context(), app.store, schema)
			m := report.OrderMatrix(rs, types.ColParty, types.ColItem, types.ColType, types.ColQty)
			return renderMatrix(cmd, m)
		},
	}
}
