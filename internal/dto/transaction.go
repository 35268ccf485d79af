package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"construction-dashboard/internal/models"
)

// TransactionRecord is one raw transaction as delivered by a source.
// Amount accepts either a JSON number or a numeric string.
type TransactionRecord struct {
	ProjectID       string `json:"projectId" validate:"required"`
	ProjectName     string `json:"projectName" validate:"required"`
	TransactionType string `json:"transactionType" validate:"required"`
	Amount          string `json:"amount" validate:"required,decimal_amount,non_negative_amount"`
	TransactionDate string `json:"transactionDate" validate:"required,calendar_date"`
}

func (r *TransactionRecord) UnmarshalJSON(data []byte) error {
	type alias TransactionRecord
	aux := struct {
		*alias
		Amount json.RawMessage `json:"amount"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.Amount)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
		r.Amount = ""
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		r.Amount = s
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("amount must be a number or numeric string: %w", err)
		}
		r.Amount = n.String()
	}

	return nil
}

// NewTransactionRecord converts a stored transaction back into its wire form
func NewTransactionRecord(txn models.Transaction) TransactionRecord {
	return TransactionRecord{
		ProjectID:       txn.ProjectID,
		ProjectName:     txn.ProjectName,
		TransactionType: string(txn.TransactionType),
		Amount:          txn.Amount.String(),
		TransactionDate: models.FormatCalendarDate(txn.TransactionDate),
	}
}
