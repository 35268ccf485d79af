package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"construction-dashboard/internal/models"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	reportWidth = 79

	colDate    = 10
	colProject = 20
	colType    = 15
	// fits the widest DECIMAL(15,2) value, $9,999,999,999,999.99
	colAmount = 21

	colUserName   = 26
	colUserEmail  = 32
	colUserStatus = 11
)

// FormatMoney renders an amount in the currency's display format, e.g. $1,000.00.
// Amounts are rounded half away from zero to the currency's minor unit.
func FormatMoney(amount decimal.Decimal, currency string) string {
	fraction := 2
	if c := money.GetCurrency(currency); c != nil {
		fraction = c.Fraction
	}
	minor := amount.Shift(int32(fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

// FormatSignedMoney prefixes non-negative amounts with "+"; negatives carry "-"
func FormatSignedMoney(amount decimal.Decimal, currency string) string {
	formatted := FormatMoney(amount, currency)
	if strings.HasPrefix(formatted, "-") {
		return formatted
	}
	return "+" + formatted
}

// RenderFinancialReport produces the downloadable text statement. The output
// depends only on the report and currency, so identical input renders
// byte-identical documents. Amounts are never cut: when a total outgrows the
// amount column the whole document widens with it.
func RenderFinancialReport(report *models.FinancialReport, currency string) string {
	var b strings.Builder

	amountWidth := widestAmount(report, currency)
	width := colDate + colProject + colType + amountWidth + 13
	heavy := strings.Repeat("=", width) + "\n"

	banner(&b, "FINANCIAL REPORT", width)
	fmt.Fprintf(&b, "Period:   %s\n", report.Period.String())
	fmt.Fprintf(&b, "Currency: %s\n", currency)
	b.WriteString(heavy + "\n")

	renderLedgerSection(&b, "EXPENSES", report.ExpenseLines, report.TotalExpenses, currency, amountWidth)
	b.WriteString("\n")
	renderLedgerSection(&b, "INCOME", report.IncomeLines, report.TotalIncome, currency, amountWidth)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Total income:   %s\n", FormatMoney(report.TotalIncome, currency))
	fmt.Fprintf(&b, "Total expenses: %s\n", FormatMoney(report.TotalExpenses, currency))
	fmt.Fprintf(&b, "Unclassified transactions excluded: %d\n\n", report.UnclassifiedCount)

	b.WriteString(heavy)
	b.WriteString(center(fmt.Sprintf("NET RESULT (%s): %s", report.ResultLabel, FormatSignedMoney(report.NetResult, currency)), width) + "\n")
	b.WriteString(heavy)

	return b.String()
}

// widestAmount is the amount column width needed for every line and subtotal
func widestAmount(report *models.FinancialReport, currency string) int {
	widest := colAmount
	measure := func(amount decimal.Decimal) {
		widest = max(widest, utf8.RuneCountInString(FormatMoney(amount, currency)))
	}
	for _, line := range report.ExpenseLines {
		measure(line.Amount)
	}
	for _, line := range report.IncomeLines {
		measure(line.Amount)
	}
	measure(report.TotalExpenses)
	measure(report.TotalIncome)
	return widest
}

func renderLedgerSection(b *strings.Builder, title string, lines []models.Transaction, subtotal decimal.Decimal, currency string, amountWidth int) {
	labelWidth := colDate + colProject + colType + 6
	rule := strings.Repeat("-", labelWidth+amountWidth+7) + "\n"

	b.WriteString(title + "\n")
	b.WriteString(rule)
	fmt.Fprintf(b, "| %-*s | %-*s | %-*s | %*s |\n",
		colDate, "Date", colProject, "Project", colType, "Type", amountWidth, "Amount")
	b.WriteString(rule)

	if len(lines) == 0 {
		fmt.Fprintf(b, "| %-*s | %*s |\n", labelWidth, "No transactions", amountWidth, "")
	}
	for _, line := range lines {
		fmt.Fprintf(b, "| %-*s | %-*s | %-*s | %*s |\n",
			colDate, models.FormatCalendarDate(line.TransactionDate),
			colProject, truncate(line.ProjectName, colProject),
			colType, truncate(string(line.TransactionType), colType),
			amountWidth, FormatMoney(line.Amount, currency),
		)
	}

	b.WriteString(rule)
	fmt.Fprintf(b, "| %-*s | %*s |\n", labelWidth, "Subtotal ("+strings.ToLower(title)+")", amountWidth, FormatMoney(subtotal, currency))
	b.WriteString(rule)
}

// RenderUserListing produces the grouped user listing document
func RenderUserListing(report *models.UserListingReport) string {
	var b strings.Builder
	rule := strings.Repeat("-", reportWidth) + "\n"

	banner(&b, "USER LISTING REPORT", reportWidth)
	b.WriteString("\n")

	for _, group := range report.Groups {
		fmt.Fprintf(&b, "%s: %d (running total: %d)\n", strings.ToUpper(string(group.UserType)), group.Count, group.RunningTotal)
		b.WriteString(rule)
		fmt.Fprintf(&b, "| %-*s | %-*s | %-*s |\n",
			colUserName, "Name", colUserEmail, "Email", colUserStatus, "Status")
		b.WriteString(rule)
		for _, user := range group.Users {
			fmt.Fprintf(&b, "| %-*s | %-*s | %-*s |\n",
				colUserName, truncate(user.Name, colUserName),
				colUserEmail, truncate(user.Email, colUserEmail),
				colUserStatus, truncate(user.Status, colUserStatus),
			)
		}
		b.WriteString(rule + "\n")
	}

	b.WriteString(strings.Repeat("=", reportWidth) + "\n")
	b.WriteString(center(fmt.Sprintf("GRAND TOTAL: %d users", report.GrandTotal), reportWidth) + "\n")
	b.WriteString(strings.Repeat("=", reportWidth) + "\n")

	return b.String()
}

func banner(b *strings.Builder, title string, width int) {
	b.WriteString(strings.Repeat("=", width) + "\n")
	b.WriteString(center(title, width) + "\n")
	b.WriteString(strings.Repeat("=", width) + "\n")
}

func center(text string, width int) string {
	pad := (width - utf8.RuneCountInString(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// truncate shortens s to width runes, marking the cut with "..."
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
