package services

import (
	"construction-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// BuildFinancialReport produces the income statement for one month.
// Lines keep their input order; unknown types are excluded from the totals
// and counted in UnclassifiedCount.
func BuildFinancialReport(txns []models.Transaction, period models.Period) *models.FinancialReport {
	report := &models.FinancialReport{
		Period:        period,
		ExpenseLines:  []models.Transaction{},
		IncomeLines:   []models.Transaction{},
		TotalExpenses: decimal.Zero,
		TotalIncome:   decimal.Zero,
	}

	for _, txn := range txns {
		if !period.Contains(txn.TransactionDate) {
			continue
		}

		switch Classify(txn.TransactionType) {
		case models.ClassIncome:
			report.IncomeLines = append(report.IncomeLines, txn)
			report.TotalIncome = report.TotalIncome.Add(txn.Amount)
		case models.ClassExpense:
			report.ExpenseLines = append(report.ExpenseLines, txn)
			report.TotalExpenses = report.TotalExpenses.Add(txn.Amount)
		default:
			report.UnclassifiedCount++
		}
	}

	report.NetResult = report.TotalIncome.Sub(report.TotalExpenses)
	report.ResultLabel = models.ResultProfit
	if report.NetResult.IsNegative() {
		report.ResultLabel = models.ResultLoss
	}

	return report
}

// BuildUserListing groups users by type. Groups appear in order of the
// first user of each type; RunningTotal counts users up to and including
// the group.
func BuildUserListing(users []models.User) *models.UserListingReport {
	report := &models.UserListingReport{Groups: []models.UserTypeGroup{}}
	index := make(map[models.UserType]int)

	for _, user := range users {
		pos, ok := index[user.UserType]
		if !ok {
			report.Groups = append(report.Groups, models.UserTypeGroup{UserType: user.UserType})
			pos = len(report.Groups) - 1
			index[user.UserType] = pos
		}
		group := &report.Groups[pos]
		group.Users = append(group.Users, user)
		group.Count++
	}

	running := 0
	for i := range report.Groups {
		running += report.Groups[i].Count
		report.Groups[i].RunningTotal = running
	}
	report.GrandTotal = running

	return report
}
