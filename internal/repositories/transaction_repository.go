package repositories

import (
	"context"
	"errors"
	"fmt"

	"construction-dashboard/internal/models"

	"gorm.io/gorm"
)

var (
	ErrDuplicateRecord = errors.New("record already exists")
)

const transactionsTable = "transactions"

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

func (r *transactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	return listAll[models.Transaction](ctx, r.db, transactionsTable, "transaction_date ASC", "created_at ASC")
}

// ListByPeriod returns the transactions dated within one calendar month
func (r *transactionRepository) ListByPeriod(ctx context.Context, period models.Period) ([]models.Transaction, error) {
	start := period.Start()
	end := start.AddDate(0, 1, 0)

	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("transaction_date >= ? AND transaction_date < ?", start, end).
		Order("transaction_date ASC").
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions for %s: %w", period.Key(), err)
	}
	return transactions, nil
}

func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) error {
	return createBatch(ctx, r.db, transactionsTable, transactions)
}

func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	return countAll[models.Transaction](ctx, r.db, transactionsTable)
}
