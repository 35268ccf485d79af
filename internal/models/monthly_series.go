package models

import "github.com/shopspring/decimal"

// DefaultChartScale converts currency units into the thousands shown on charts
var DefaultChartScale = decimal.NewFromInt(1000)

// MonthlyBucket accumulates classified amounts for one calendar month
type MonthlyBucket struct {
	PeriodKey    string          `json:"period_key"`
	DisplayLabel string          `json:"display_label"`
	Income       decimal.Decimal `json:"income"`
	Expenses     decimal.Decimal `json:"expenses"`
}

// Net is income minus expenses for the month
func (b MonthlyBucket) Net() decimal.Decimal {
	return b.Income.Sub(b.Expenses)
}

// ChartPoint is one month of the dashboard chart, in whole thousands
type ChartPoint struct {
	Name     string `json:"name"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
}

// MonthlySeries is the chronologically ordered set of buckets
type MonthlySeries struct {
	Buckets      []MonthlyBucket `json:"buckets"`
	IgnoredCount int             `json:"ignored_count"`
}

// Chart projects the buckets onto the chart scale. Values are divided by
// scale and rounded half away from zero; a non-positive scale falls back
// to DefaultChartScale.
func (s *MonthlySeries) Chart(scale decimal.Decimal) []ChartPoint {
	if !scale.IsPositive() {
		scale = DefaultChartScale
	}

	points := make([]ChartPoint, 0, len(s.Buckets))
	for _, b := range s.Buckets {
		points = append(points, ChartPoint{
			Name:     b.DisplayLabel,
			Income:   b.Income.Div(scale).Round(0).IntPart(),
			Expenses: b.Expenses.Div(scale).Round(0).IntPart(),
		})
	}
	return points
}

// Totals sums income and expenses across all buckets
func (s *MonthlySeries) Totals() (income, expenses decimal.Decimal) {
	income, expenses = decimal.Zero, decimal.Zero
	for _, b := range s.Buckets {
		income = income.Add(b.Income)
		expenses = expenses.Add(b.Expenses)
	}
	return income, expenses
}
