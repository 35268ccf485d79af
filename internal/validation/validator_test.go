package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amountRecord struct {
	Amount string `json:"amount" validate:"required,decimal_amount,non_negative_amount"`
	Date   string `json:"transactionDate" validate:"required,calendar_date"`
}

type listQuery struct {
	Direction string `query:"direction" validate:"sort_direction"`
	PageSize  int    `query:"pageSize" validate:"gte=0"`
}

func firstFieldError(t *testing.T, err error) validator.FieldError {
	t.Helper()
	var fieldErrs validator.ValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.NotEmpty(t, fieldErrs)
	return fieldErrs[0]
}

func TestValidator_AmountRules(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		amount  string
		wantTag string
	}{
		{"integer", "1000", ""},
		{"decimal", "400.25", ""},
		{"zero", "0", ""},
		{"negative", "-5", "non_negative_amount"},
		{"not numeric", "12abc", "decimal_amount"},
		{"missing", "", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(amountRecord{Amount: tt.amount, Date: "2025-01-05"})
			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}
			fe := firstFieldError(t, err)
			assert.Equal(t, "amount", fe.Field())
			assert.Equal(t, tt.wantTag, fe.Tag())
		})
	}
}

func TestValidator_CalendarDate(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(amountRecord{Amount: "1", Date: "2025-02-28"}))
	assert.NoError(t, v.Struct(amountRecord{Amount: "1", Date: "2025-02-28T10:00:00Z"}))

	fe := firstFieldError(t, v.Struct(amountRecord{Amount: "1", Date: "28/02/2025"}))
	assert.Equal(t, "transactionDate", fe.Field())
	assert.Equal(t, "must be a calendar date (YYYY-MM-DD)", DescribeFieldError(fe))
}

func TestValidator_QueryTagNames(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(listQuery{Direction: "DESC"}))

	fe := firstFieldError(t, v.Struct(listQuery{Direction: "sideways"}))
	assert.Equal(t, "direction", fe.Field())
	assert.Equal(t, "must be asc or desc", DescribeFieldError(fe))
}

func TestGetValidator_ReturnsSharedInstance(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestValidator_PeriodMonth(t *testing.T) {
	type periodQuery struct {
		Month int `query:"month" validate:"period_month"`
	}
	v := NewValidator()

	assert.NoError(t, v.Struct(periodQuery{Month: 1}))
	assert.NoError(t, v.Struct(periodQuery{Month: 12}))

	for _, month := range []int{0, 13, -1} {
		fe := firstFieldError(t, v.Struct(periodQuery{Month: month}))
		assert.Equal(t, "month", fe.Field())
		assert.Equal(t, "must be a month between 1 and 12", DescribeFieldError(fe))
	}
}
