// Package cmd implements the findzero command line interface.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
)

// Error is the error class for command failures.
var Error = errs.Class("findzero")

// NewRootCommand returns the findzero command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "findzero",
		Short: "Find roots of polynomials with Newton's method",
		Long: `findzero finds a root of f(x) = 0 using Newton's method on
arbitrary-precision decimals.

The function f and its derivative f' are polynomials given by their
coefficients, highest degree first. For example, x^2 - 2x - 4 is "1,-2,-4"
and its derivative 2x - 2 is "2,-2".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCommand(), newVersionCommand())
	return root
}
