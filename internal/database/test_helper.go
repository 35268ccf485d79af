package database

import (
	"fmt"
	"testing"
	"time"

	"construction-dashboard/internal/config"
	"construction-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"transactions",
	"projects",
	"employees",
	"users",
}

// SetupTestDB opens a migrated in-memory SQLite database
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection would get its own :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

// CreateTestTransaction inserts a transaction dated at midnight UTC of the given day
func CreateTestTransaction(t *testing.T, db *DB, txnType models.TransactionType, amount string, date string) *models.Transaction {
	t.Helper()

	day, err := models.ParseCalendarDate(date)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", date, err)
	}

	txn := &models.Transaction{
		ProjectID:       "PRJ-001",
		ProjectName:     "Riverside Tower",
		TransactionType: txnType,
		Amount:          decimal.RequireFromString(amount),
		TransactionDate: day,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CreateTestUser(t *testing.T, db *DB, name, email string, userType models.UserType) *models.User {
	t.Helper()

	user := &models.User{
		Name:      name,
		Email:     email,
		UserType:  userType,
		CreatedAt: time.Now().UTC(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}
