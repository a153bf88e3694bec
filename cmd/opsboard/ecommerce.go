// Ecommerce module commands: the generic CRUD group plus the KPI period
// comparison view.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/opsboard/internal/report"
	"github.com/dukaforge/opsboard/internal/sheet"
	"github.com/dukaforge/opsboard/pkg/types"
)

func newEcommerceCmd() *cobra.Command {
	cmd := newModuleCmd(types.ModuleEcommerce)
	cmd.AddCommand(newKPICmd())
	return cmd
}

func newKPICmd() *cobra.Command {
	var (
		flagPeriod  string
		flagChannel string
	)
	cmd := &cobra.Command{
		Use:   "kpi",
		Short: "Order, dispatch, and return totals compared against the previous period",
		Long: `KPI sums the order, dispatch, and return columns over the named period
and the equal-length period immediately before it, reporting delta and
percent change. "All Time" reports totals only, with no comparison.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := requireSchema(types.ModuleEcommerce)
			if err != nil {
				return err
			}

			rs := sheet.Load(cmd.Context(), app.store, schema)
			if flagChannel != "" {
				rs = rs.Filter(func(r types.Record) bool {
					return r.Get(types.ColChannel) == flagChannel
				})
			}

			cols := []string{types.ColOrderQty, types.ColDispatchQty, types.ColReturnQty}
			rep, err := report.KPI(rs, types.ColDate, cols, flagPeriod, today())
			if err != nil {
				return fmt.Errorf("%w: %q (valid: %s)", err, flagPeriod, strings.Join(report.PeriodTokens, ", "))
			}
			return renderKPI(cmd, rep)
		},
	}
	cmd.Flags().StringVar(&flagPeriod, "period", report.PeriodToday, "period token")
	cmd.Flags().StringVar(&flagChannel, "channel", "", "restrict to one sales channel")
	return cmd
}
