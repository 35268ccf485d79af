package services

import (
	"slices"
	"strings"

	"construction-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// AggregateMonthly groups transactions into per-month income and expense
// buckets ordered by period key. Every dated transaction opens its month's
// bucket, including ignored ones; ignored amounts are only counted.
// A transaction without a date is reported as a DataError.
func AggregateMonthly(txns []models.Transaction) (*models.MonthlySeries, error) {
	series := &models.MonthlySeries{Buckets: []models.MonthlyBucket{}}
	index := make(map[string]int)

	for i, txn := range txns {
		if txn.TransactionDate.IsZero() {
			return nil, &models.DataError{
				Index:  i,
				Field:  "transactionDate",
				Reason: "date cannot be decomposed into year and month",
			}
		}

		period := txn.Period()
		key := period.Key()

		pos, ok := index[key]
		if !ok {
			series.Buckets = append(series.Buckets, models.MonthlyBucket{
				PeriodKey:    key,
				DisplayLabel: period.Label(),
				Income:       decimal.Zero,
				Expenses:     decimal.Zero,
			})
			pos = len(series.Buckets) - 1
			index[key] = pos
		}

		bucket := &series.Buckets[pos]
		switch Classify(txn.TransactionType) {
		case models.ClassIncome:
			bucket.Income = bucket.Income.Add(txn.Amount)
		case models.ClassExpense:
			bucket.Expenses = bucket.Expenses.Add(txn.Amount)
		default:
			series.IgnoredCount++
		}
	}

	slices.SortStableFunc(series.Buckets, func(a, b models.MonthlyBucket) int {
		return strings.Compare(a.PeriodKey, b.PeriodKey)
	})

	return series, nil
}
