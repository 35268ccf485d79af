package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the label a ledger entry carries in the source system.
// Labels outside the known set are kept verbatim and reported as unclassified.
type TransactionType string

const (
	TransactionTypeClientPayment TransactionType = "Client Payment"
	TransactionTypePurchase      TransactionType = "Purchase"
	TransactionTypeLaborPayment  TransactionType = "Labor Payment"
	TransactionTypePettyCash     TransactionType = "Petty Cash"
)

// KnownTransactionTypes lists every classified label in display order
var KnownTransactionTypes = []TransactionType{
	TransactionTypeClientPayment,
	TransactionTypePurchase,
	TransactionTypeLaborPayment,
	TransactionTypePettyCash,
}

// Known reports whether the label belongs to the closed set of classified types
func (t TransactionType) Known() bool {
	for _, known := range KnownTransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// TransactionClass is the outcome of classifying a transaction type
type TransactionClass int

const (
	ClassIgnored TransactionClass = iota
	ClassIncome
	ClassExpense
)

func (c TransactionClass) String() string {
	switch c {
	case ClassIncome:
		return "income"
	case ClassExpense:
		return "expense"
	default:
		return "ignored"
	}
}

const calendarDateLayout = "2006-01-02"

var (
	ErrNegativeAmount     = errors.New("transaction amount must not be negative")
	ErrMissingDate        = errors.New("transaction date is required")
	ErrMissingProject     = errors.New("transaction project is required")
	ErrInvalidCalendarDay = errors.New("invalid calendar date")
)

// Transaction is a single construction ledger entry
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID       string          `gorm:"type:varchar(64);not null;index" json:"project_id"`
	ProjectName     string          `gorm:"type:varchar(255);not null" json:"project_name"`
	TransactionType TransactionType `gorm:"type:varchar(50);not null;index" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transaction_date"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// AfterFind puts the ledger date back in UTC; pgx returns TIMESTAMPTZ in the local zone
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	t.TransactionDate = t.TransactionDate.UTC()
	return nil
}

// Validate checks the structural invariants of a transaction
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.ProjectID) == "" {
		return ErrMissingProject
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if t.TransactionDate.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// Period returns the calendar month the transaction falls in
func (t *Transaction) Period() Period {
	return PeriodOf(t.TransactionDate)
}

// ParseCalendarDate accepts YYYY-MM-DD or a full RFC 3339 timestamp.
// The result is normalised to midnight UTC of the calendar day.
func ParseCalendarDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrMissingDate
	}

	if day, err := time.Parse(calendarDateLayout, value); err == nil {
		return day, nil
	}

	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidCalendarDay, value)
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatCalendarDate renders a date the way records carry it on the wire
func FormatCalendarDate(t time.Time) string {
	return t.Format(calendarDateLayout)
}
