package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reportgen",
		Short: "Build construction dashboard reports from a transaction export",
		Long: `Reportgen reads a JSON array of construction ledger records, validates it
the same way the dashboard ingests upstream data, and prints either the
monthly income and expense series or the fixed-width financial report.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("file", "f", "", "path to a JSON array of transaction records")
	_ = cmd.MarkPersistentFlagRequired("file")

	cmd.AddCommand(newMonthlyCmd(), newFinancialCmd())
	return cmd
}
