package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"construction-dashboard/internal/dto"
	"construction-dashboard/internal/models"
	"construction-dashboard/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ingestService struct {
	validator *validation.Validator
}

func NewIngestService() IngestServiceInterface {
	return &ingestService{validator: validation.GetValidator()}
}

// DecodeTransactions parses a JSON array of transaction records and validates
// every record. A payload that is not an array fails as a whole with a
// DataError at index -1.
func (s *ingestService) DecodeTransactions(payload []byte) ([]models.Transaction, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, models.DataErrors{{
			Index:  -1,
			Reason: "payload must be a JSON array of transaction records",
		}}
	}

	records := make([]dto.TransactionRecord, len(raw))
	var errs models.DataErrors
	for i, item := range raw {
		if err := json.Unmarshal(item, &records[i]); err != nil {
			errs = append(errs, &models.DataError{Index: i, Reason: describeDecodeError(err)})
		}
	}
	if len(errs) > 0 {
		slog.Warn("Rejected malformed transaction payload", "records", len(raw), "errors", len(errs))
		return nil, errs
	}

	return s.ValidateRecords(records)
}

// ValidateRecords converts records into transactions. Every violation across
// every record is returned; nothing is dropped silently. Unknown transaction
// types are accepted here and classified as ignored later.
func (s *ingestService) ValidateRecords(records []dto.TransactionRecord) ([]models.Transaction, error) {
	txns := make([]models.Transaction, 0, len(records))
	var errs models.DataErrors

	for i, record := range records {
		record = normalizeRecord(record)

		if err := s.validator.Struct(record); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				return nil, fmt.Errorf("validate record %d: %w", i, err)
			}
			for _, fe := range fieldErrs {
				errs = append(errs, &models.DataError{
					Index:  i,
					Field:  fe.Field(),
					Reason: validation.DescribeFieldError(fe),
				})
			}
			continue
		}

		txn, err := toTransaction(record)
		if err != nil {
			errs = append(errs, &models.DataError{Index: i, Reason: err.Error()})
			continue
		}
		txns = append(txns, txn)
	}

	if len(errs) > 0 {
		slog.Warn("Rejected invalid transaction records", "records", len(records), "errors", len(errs))
		return nil, errs
	}

	return txns, nil
}

func normalizeRecord(r dto.TransactionRecord) dto.TransactionRecord {
	r.ProjectID = strings.TrimSpace(r.ProjectID)
	r.ProjectName = strings.TrimSpace(r.ProjectName)
	r.TransactionType = strings.TrimSpace(r.TransactionType)
	r.Amount = strings.TrimSpace(r.Amount)
	r.TransactionDate = strings.TrimSpace(r.TransactionDate)
	return r
}

func toTransaction(r dto.TransactionRecord) (models.Transaction, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("amount: %w", err)
	}
	date, err := models.ParseCalendarDate(r.TransactionDate)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transactionDate: %w", err)
	}

	txn := models.Transaction{
		ID:              uuid.New(),
		ProjectID:       r.ProjectID,
		ProjectName:     r.ProjectName,
		TransactionType: models.TransactionType(r.TransactionType),
		Amount:          amount,
		TransactionDate: date,
	}
	if err := txn.Validate(); err != nil {
		return models.Transaction{}, err
	}
	return txn, nil
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s has the wrong type (%s)", typeErr.Field, typeErr.Value)
	}
	return err.Error()
}
