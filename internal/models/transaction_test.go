package models

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionType_Known(t *testing.T) {
	tests := []struct {
		name     string
		txType   TransactionType
		expected bool
	}{
		{"client payment", TransactionTypeClientPayment, true},
		{"purchase", TransactionTypePurchase, true},
		{"labor payment", TransactionTypeLaborPayment, true},
		{"petty cash", TransactionTypePettyCash, true},
		{"lowercase variant is unknown", "purchase", false},
		{"refund", "Refund", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.txType.Known())
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	date := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		txn     Transaction
		wantErr error
	}{
		{
			name: "valid transaction",
			txn: Transaction{
				ProjectID:       "P-1",
				ProjectName:     "Riverside Tower",
				TransactionType: TransactionTypePurchase,
				Amount:          decimal.NewFromInt(400),
				TransactionDate: date,
			},
		},
		{
			name: "zero amount is allowed",
			txn: Transaction{
				ProjectID:       "P-1",
				TransactionType: TransactionTypePurchase,
				Amount:          decimal.Zero,
				TransactionDate: date,
			},
		},
		{
			name: "negative amount",
			txn: Transaction{
				ProjectID:       "P-1",
				Amount:          decimal.NewFromInt(-1),
				TransactionDate: date,
			},
			wantErr: ErrNegativeAmount,
		},
		{
			name: "missing date",
			txn: Transaction{
				ProjectID: "P-1",
				Amount:    decimal.NewFromInt(1),
			},
			wantErr: ErrMissingDate,
		},
		{
			name: "missing project",
			txn: Transaction{
				Amount:          decimal.NewFromInt(1),
				TransactionDate: date,
			},
			wantErr: ErrMissingProject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseCalendarDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		got, err := ParseCalendarDate("2025-01-05")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339 keeps the calendar day", func(t *testing.T) {
		got, err := ParseCalendarDate("2025-02-01T23:30:00-05:00")
		require.NoError(t, err)
		assert.Equal(t, "2025-02-01", FormatCalendarDate(got))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseCalendarDate("  ")
		assert.ErrorIs(t, err, ErrMissingDate)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseCalendarDate("05/01/2025")
		assert.ErrorIs(t, err, ErrInvalidCalendarDay)
	})

	t.Run("impossible day", func(t *testing.T) {
		_, err := ParseCalendarDate("2025-02-30")
		assert.ErrorIs(t, err, ErrInvalidCalendarDay)
	})
}

func TestPeriod(t *testing.T) {
	p, err := NewPeriod(2025, 1)
	require.NoError(t, err)

	assert.Equal(t, "2025-01", p.Key())
	assert.Equal(t, "Jan", p.Label())
	assert.Equal(t, "January 2025", p.String())
	assert.True(t, p.Contains(time.Date(2025, time.January, 31, 12, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, "0987-11", Period{Year: 987, Month: time.November}.Key())

	_, err = NewPeriod(2025, 13)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, err = NewPeriod(0, 5)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestPeriod_DecomposesInUTC(t *testing.T) {
	westOfUTC := time.FixedZone("UTC-5", -5*60*60)
	firstOfFeb := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC).In(westOfUTC)

	feb, err := NewPeriod(2025, 2)
	require.NoError(t, err)

	assert.Equal(t, feb, PeriodOf(firstOfFeb))
	assert.True(t, feb.Contains(firstOfFeb))
	assert.False(t, Period{Year: 2025, Month: time.January}.Contains(firstOfFeb))
}

func TestTransaction_AfterFindRestoresUTC(t *testing.T) {
	eastOfUTC := time.FixedZone("UTC+9", 9*60*60)
	txn := Transaction{TransactionDate: time.Date(2025, time.March, 1, 9, 0, 0, 0, eastOfUTC)}

	require.NoError(t, txn.AfterFind(nil))

	assert.Equal(t, time.UTC, txn.TransactionDate.Location())
	assert.Equal(t, "2025-03-01", FormatCalendarDate(txn.TransactionDate))
	assert.Equal(t, "2025-03", txn.Period().Key())
}

func TestDataErrors(t *testing.T) {
	errs := DataErrors{
		{Index: 0, Field: "amount", Reason: "must not be negative"},
		{Index: 2, Field: "transactionDate", Reason: "is required"},
	}

	var err error = errs
	assert.True(t, errors.Is(err, ErrInvalidRecord))
	assert.Equal(t, "record 0: amount: must not be negative; record 2: transactionDate: is required", err.Error())
	assert.Equal(t, []string{
		"record 0: amount: must not be negative",
		"record 2: transactionDate: is required",
	}, errs.Details())

	var single *DataError
	require.True(t, errors.As(err, &single))
	assert.Equal(t, 0, single.Index)

	payload := &DataError{Index: -1, Reason: "payload must be a JSON array"}
	assert.Equal(t, "payload must be a JSON array", payload.Error())
}

func TestMonthlySeries_Chart(t *testing.T) {
	series := &MonthlySeries{
		Buckets: []MonthlyBucket{
			{PeriodKey: "2025-01", DisplayLabel: "Jan", Income: decimal.NewFromInt(1500), Expenses: decimal.NewFromInt(400)},
			{PeriodKey: "2025-02", DisplayLabel: "Feb", Income: decimal.NewFromInt(2499), Expenses: decimal.RequireFromString("600.50")},
		},
	}

	points := series.Chart(decimal.Zero)

	require.Len(t, points, 2)
	assert.Equal(t, ChartPoint{Name: "Jan", Income: 2, Expenses: 0}, points[0])
	assert.Equal(t, ChartPoint{Name: "Feb", Income: 2, Expenses: 1}, points[1])

	income, expenses := series.Totals()
	assert.True(t, income.Equal(decimal.NewFromInt(3999)))
	assert.True(t, expenses.Equal(decimal.RequireFromString("1000.50")))
	assert.True(t, series.Buckets[0].Net().Equal(decimal.NewFromInt(1100)))
}
