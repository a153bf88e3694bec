// Store module commands: the generic CRUD group plus the stock balance view.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/opsboard/internal/report"
	"github.com/dukaforge/opsboard/internal/sheet"
	"github.com/dukaforge/opsboard/pkg/types"
)

func newStoreCmd() *cobra.Command {
	cmd := newModuleCmd(types.ModuleStore)
	cmd.AddCommand(newBalanceCmd())
	return cmd
}

func newBalanceCmd() *cobra.Command {
	var flagDates string
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Stock balance per item (Inward minus Outward)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := requireSchema(types.ModuleStore)
			if err != nil {
				return err
			}

			rs := sheet.Load(cmd.Context(), app.store, schema)
			rs, err = report.FilterBucket(rs, types.ColDate, flagDates, today())
			if err != nil {
				return fmt.Errorf("%w: %q (valid: %s)", err, flagDates, strings.Join(report.BucketTokens, ", "))
			}

			balances := report.StockBalance(rs, types.ColItem, types.ColType, types.ColQty)
			return renderBalances(cmd, balances)
		},
	}
	cmd.Flags().StringVar(&flagDates, "dates", report.BucketAll, "date bucket filter")
	return cmd
}
