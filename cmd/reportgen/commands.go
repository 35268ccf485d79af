package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"construction-dashboard/internal/models"
	"construction-dashboard/internal/services"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newMonthlyCmd() *cobra.Command {
	var (
		scale  int64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Print the monthly income and expense chart series",
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := loadTransactions(cmd)
			if err != nil {
				return err
			}

			series, err := services.AggregateMonthly(txns)
			if err != nil {
				return err
			}
			chart := series.Chart(decimal.NewFromInt(scale))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(chart)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES\t")
			for _, point := range chart {
				fmt.Fprintf(w, "%s\t%d\t%d\t\n", point.Name, point.Income, point.Expenses)
			}
			if series.IgnoredCount > 0 {
				fmt.Fprintf(w, "unclassified\t%d\t\t\n", series.IgnoredCount)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int64Var(&scale, "scale", models.DefaultChartScale.IntPart(), "divide amounts by this before rounding")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the chart points as JSON")
	return cmd
}

func newFinancialCmd() *cobra.Command {
	var (
		year     int
		month    int
		currency string
	)

	cmd := &cobra.Command{
		Use:   "financial",
		Short: "Print the financial report for one calendar month",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := models.NewPeriod(year, month)
			if err != nil {
				return err
			}

			txns, err := loadTransactions(cmd)
			if err != nil {
				return err
			}

			report := services.BuildFinancialReport(txns, period)
			_, err = fmt.Fprint(cmd.OutOrStdout(), services.RenderFinancialReport(report, currency))
			return err
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "report year")
	cmd.Flags().IntVar(&month, "month", 0, "report month, 1-12")
	cmd.Flags().StringVar(&currency, "currency", "USD", "ISO currency code for amounts")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}

func loadTransactions(cmd *cobra.Command) ([]models.Transaction, error) {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	txns, err := services.NewIngestService().DecodeTransactions(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return txns, nil
}
