package repositories

import (
	"context"
	"errors"
	"fmt"

	"construction-dashboard/internal/models"

	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
)

const usersTable = "users"

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	return listAll[models.User](ctx, r.db, usersTable, "created_at ASC", "name ASC")
}

// Create creates a new user in the database
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) CreateBatch(ctx context.Context, users []models.User) error {
	return createBatch(ctx, r.db, usersTable, users)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return countAll[models.User](ctx, r.db, usersTable)
}
