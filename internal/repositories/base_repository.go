package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const batchSize = 100

// listAll loads the whole table in the given order
func listAll[T any](ctx context.Context, db *gorm.DB, table string, order ...string) ([]T, error) {
	var items []T
	query := db.WithContext(ctx)
	for _, o := range order {
		query = query.Order(o)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	return items, nil
}

// createBatch inserts items in one database transaction so a failed seed leaves nothing behind
func createBatch[T any](ctx context.Context, db *gorm.DB, table string, items []T) error {
	if len(items) == 0 {
		return nil
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(items, batchSize).Error
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateRecord, table)
		}
		return fmt.Errorf("failed to create %s: %w", table, err)
	}
	return nil
}

func countAll[T any](ctx context.Context, db *gorm.DB, table string) (int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return total, nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Postgres duplicate key error detection
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
