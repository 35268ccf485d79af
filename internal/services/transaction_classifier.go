package services

import "construction-dashboard/internal/models"

// Classify maps a transaction type onto income, expense or ignored.
// Unknown labels are ignored rather than rejected so callers can count them.
func Classify(t models.TransactionType) models.TransactionClass {
	switch t {
	case models.TransactionTypeClientPayment:
		return models.ClassIncome
	case models.TransactionTypePurchase, models.TransactionTypeLaborPayment, models.TransactionTypePettyCash:
		return models.ClassExpense
	default:
		return models.ClassIgnored
	}
}
