package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"construction-dashboard/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortRetries(t *testing.T, retries int) {
	t.Helper()
	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 100 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestNewMigrationRunner_DefaultsPaths(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, MigrationOptions{LoadSeeds: true})

	assert.NotNil(t, runner)
	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.options.MigrationsPath)
	assert.Equal(t, seedsPath, runner.options.SeedsPath)
	assert.True(t, runner.options.LoadSeeds)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db, DefaultMigrationOptions(false))
	err = runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	shortRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db, DefaultMigrationOptions(false))
	err = runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	shortRetries(t, 2)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	runner := NewMigrationRunner(db, DefaultMigrationOptions(false))
	err = runner.WaitForDatabase(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestWaitForDatabase_StopsWhenContextCancelled(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	shortRetries(t, 10)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewMigrationRunner(db, DefaultMigrationOptions(false))
	err = runner.WaitForDatabase(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, MigrationOptions{MigrationsPath: "/nonexistent/path/to/migrations"})

	assert.NoError(t, runner.RunMigrations())
}

func TestLoadSeeds_Disabled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, DefaultMigrationOptions(false))

	assert.NoError(t, runner.LoadSeeds(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, MigrationOptions{SeedsPath: "/nonexistent/seeds/path", LoadSeeds: true})

	assert.NoError(t, runner.LoadSeeds(context.Background()))
}

func TestLoadSeeds_NoSeedFiles(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, MigrationOptions{SeedsPath: t.TempDir(), LoadSeeds: true})

	assert.NoError(t, runner.LoadSeeds(context.Background()))
}

func TestLoadSeeds_SuccessfulExecution(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	seedContent := `
INSERT INTO projects (id, code, name, client_name, location, status, budget, start_date, created_at)
VALUES ('b0000000-0000-0000-0000-000000000001', 'PRJ-001', 'Riverside Tower', 'Acme Holdings', 'Springfield', 'In Progress', 4500000, '2024-03-01', NOW())
ON CONFLICT (code) DO NOTHING;
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "001_projects.sql"), []byte(seedContent), 0644))

	mock.ExpectExec("INSERT INTO projects").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := NewMigrationRunner(db, MigrationOptions{SeedsPath: tempDir, LoadSeeds: true})

	assert.NoError(t, runner.LoadSeeds(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ExecutionFailureIsContinued(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "001_bad_data.sql"), []byte("INSERT INTO nonexistent_table VALUES (1);"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "002_good_data.sql"), []byte("INSERT INTO transactions VALUES ('test');"), 0644))

	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("table does not exist"))
	mock.ExpectExec("INSERT INTO transactions").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := NewMigrationRunner(db, MigrationOptions{SeedsPath: tempDir, LoadSeeds: true})

	assert.NoError(t, runner.LoadSeeds(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ReadFileError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	// a directory with a .sql name cannot be read as a file
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "001_invalid.sql"), 0755))

	runner := NewMigrationRunner(db, MigrationOptions{SeedsPath: tempDir, LoadSeeds: true})
	err = runner.LoadSeeds(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	err = RunMigrationsIfEnabled(context.Background(), db, &config.DatabaseConfig{AutoMigrate: false})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsIfEnabled_Enabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	shortRetries(t, 2)
	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = RunMigrationsIfEnabled(context.Background(), db, &config.DatabaseConfig{AutoMigrate: true})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, MigrationOptions{MigrationsPath: "/nonexistent/migrations"})

	_, _, err = runner.GetMigrationStatus()

	assert.ErrorIs(t, err, ErrMigrationsNotFound)
}
