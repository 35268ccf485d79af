package dto

import (
	"construction-dashboard/internal/models"
)

// PeriodQuery selects the reporting month
type PeriodQuery struct {
	Year  int `query:"year" validate:"required,gte=1,lte=9999"`
	Month int `query:"month" validate:"required,period_month"`
}

func (q PeriodQuery) Period() (models.Period, error) {
	return models.NewPeriod(q.Year, q.Month)
}

// ReportLine is one transaction row of the financial report
type ReportLine struct {
	ProjectID       string `json:"projectId"`
	ProjectName     string `json:"projectName"`
	TransactionType string `json:"transactionType"`
	Amount          string `json:"amount"`
	TransactionDate string `json:"transactionDate"`
}

// FinancialReportResponse is the structured income statement for one month
type FinancialReportResponse struct {
	Period            string       `json:"period"`
	PeriodLabel       string       `json:"periodLabel"`
	Currency          string       `json:"currency"`
	ExpenseLines      []ReportLine `json:"expenseLines"`
	IncomeLines       []ReportLine `json:"incomeLines"`
	TotalExpenses     string       `json:"totalExpenses"`
	TotalIncome       string       `json:"totalIncome"`
	NetResult         string       `json:"netResult"`
	ResultLabel       string       `json:"resultLabel"`
	UnclassifiedCount int          `json:"unclassifiedCount"`
}

// NewFinancialReportResponse renders amounts with two decimals
func NewFinancialReportResponse(report *models.FinancialReport, currency string) FinancialReportResponse {
	return FinancialReportResponse{
		Period:            report.Period.Key(),
		PeriodLabel:       report.Period.String(),
		Currency:          currency,
		ExpenseLines:      newReportLines(report.ExpenseLines),
		IncomeLines:       newReportLines(report.IncomeLines),
		TotalExpenses:     report.TotalExpenses.StringFixed(2),
		TotalIncome:       report.TotalIncome.StringFixed(2),
		NetResult:         report.NetResult.StringFixed(2),
		ResultLabel:       string(report.ResultLabel),
		UnclassifiedCount: report.UnclassifiedCount,
	}
}

func newReportLines(txns []models.Transaction) []ReportLine {
	lines := make([]ReportLine, 0, len(txns))
	for _, txn := range txns {
		lines = append(lines, ReportLine{
			ProjectID:       txn.ProjectID,
			ProjectName:     txn.ProjectName,
			TransactionType: string(txn.TransactionType),
			Amount:          txn.Amount.StringFixed(2),
			TransactionDate: models.FormatCalendarDate(txn.TransactionDate),
		})
	}
	return lines
}

// MonthlyBucketResponse is one month of the dashboard series
type MonthlyBucketResponse struct {
	Period   string `json:"period"`
	Label    string `json:"label"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// MonthlyOverviewResponse carries both the chart points and the exact buckets
type MonthlyOverviewResponse struct {
	Chart         []models.ChartPoint     `json:"chart"`
	Buckets       []MonthlyBucketResponse `json:"buckets"`
	TotalIncome   string                  `json:"totalIncome"`
	TotalExpenses string                  `json:"totalExpenses"`
	IgnoredCount  int                     `json:"ignoredCount"`
}

func NewMonthlyOverviewResponse(overview *models.MonthlyOverview) MonthlyOverviewResponse {
	buckets := make([]MonthlyBucketResponse, 0, len(overview.Series.Buckets))
	for _, b := range overview.Series.Buckets {
		buckets = append(buckets, MonthlyBucketResponse{
			Period:   b.PeriodKey,
			Label:    b.DisplayLabel,
			Income:   b.Income.StringFixed(2),
			Expenses: b.Expenses.StringFixed(2),
			Net:      b.Net().StringFixed(2),
		})
	}

	income, expenses := overview.Series.Totals()
	return MonthlyOverviewResponse{
		Chart:         overview.Chart,
		Buckets:       buckets,
		TotalIncome:   income.StringFixed(2),
		TotalExpenses: expenses.StringFixed(2),
		IgnoredCount:  overview.Series.IgnoredCount,
	}
}

// UserGroupResponse is one user type section of the listing
type UserGroupResponse struct {
	UserType     string        `json:"userType"`
	Count        int           `json:"count"`
	RunningTotal int           `json:"runningTotal"`
	Users        []models.User `json:"users"`
}

type UserListingResponse struct {
	Groups     []UserGroupResponse `json:"groups"`
	GrandTotal int                 `json:"grandTotal"`
}

func NewUserListingResponse(report *models.UserListingReport) UserListingResponse {
	groups := make([]UserGroupResponse, 0, len(report.Groups))
	for _, g := range report.Groups {
		groups = append(groups, UserGroupResponse{
			UserType:     string(g.UserType),
			Count:        g.Count,
			RunningTotal: g.RunningTotal,
			Users:        g.Users,
		})
	}
	return UserListingResponse{Groups: groups, GrandTotal: report.GrandTotal}
}
