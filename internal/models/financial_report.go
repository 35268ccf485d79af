package models

import "github.com/shopspring/decimal"

// ReportResult labels the sign of a report's net result
type ReportResult string

const (
	ResultProfit ReportResult = "PROFIT"
	ResultLoss   ReportResult = "LOSS"
)

// FinancialReport is the income/expense statement for one month
type FinancialReport struct {
	Period            Period          `json:"period"`
	ExpenseLines      []Transaction   `json:"expense_lines"`
	IncomeLines       []Transaction   `json:"income_lines"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	NetResult         decimal.Decimal `json:"net_result"`
	ResultLabel       ReportResult    `json:"result_label"`
	UnclassifiedCount int             `json:"unclassified_count"`
}
