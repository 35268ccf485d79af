package repositories

import (
	"context"

	"construction-dashboard/internal/models"
)

// TransactionRepositoryInterface reads and seeds the construction ledger
type TransactionRepositoryInterface interface {
	// List returns every transaction ordered by transaction date, then creation time
	List(ctx context.Context) ([]models.Transaction, error)
	ListByPeriod(ctx context.Context, period models.Period) ([]models.Transaction, error)
	Create(ctx context.Context, transaction *models.Transaction) error
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	Count(ctx context.Context) (int64, error)
}

// ProjectRepositoryInterface defines the contract for project repository operations
type ProjectRepositoryInterface interface {
	List(ctx context.Context) ([]models.Project, error)
	CreateBatch(ctx context.Context, projects []models.Project) error
	Count(ctx context.Context) (int64, error)
}

// EmployeeRepositoryInterface defines the contract for employee repository operations
type EmployeeRepositoryInterface interface {
	List(ctx context.Context) ([]models.Employee, error)
	CreateBatch(ctx context.Context, employees []models.Employee) error
	Count(ctx context.Context) (int64, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	// List returns users in registration order, which fixes the group order of the listing report
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	CreateBatch(ctx context.Context, users []models.User) error
	Count(ctx context.Context) (int64, error)
}
