// Package main provides the opsboard CLI: a spreadsheet-backed operations
// board for production, packing, store inventory, ecommerce KPIs, and order
// dispatch tracking.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dukaforge/opsboard/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: user errors (bad input, bad
// credentials, forbidden module) exit 1, everything else exits 2.
func exitCode(err error) int {
	for _, userErr := range []error{
		types.ErrLoginFailed,
		types.ErrModuleForbidden,
		types.ErrUnknownModule,
		types.ErrUnknownColumn,
		types.ErrUnknownBucket,
		types.ErrUnknownPeriod,
		types.ErrFieldRequired,
		types.ErrNegativeQty,
		types.ErrRefNotLoaded,
	} {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}
