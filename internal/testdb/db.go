//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/taskboard-api/internal/platform/postgres/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// TestDatabaseURLEnv names the variable pointing tests at an existing database.
const TestDatabaseURLEnv = "TASKBOARD_TEST_DATABASE_URL"

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

var (
	sharedOnce sync.Once
	sharedDB   *sql.DB
	sharedErr  error
)

// GetTestDatabaseURL returns the externally provided test database URL, or "".
func GetTestDatabaseURL() string {
	return os.Getenv(TestDatabaseURLEnv)
}

// GetTestDBWithT returns a migrated database shared by every test in the binary.
// The first call starts a container when no external database is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	sharedOnce.Do(func() {
		sharedDB, sharedErr = openShared()
	})
	if sharedErr != nil {
		t.Skipf("integration database unavailable: %v", sharedErr)
	}
	return sharedDB
}

func openShared() (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		var err error
		dbURL, err = startPostgresContainer(ctx)
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open test database: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, TestTimeout)
	defer pingCancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping test database: %w", err)
	}

	if err := ApplyMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// ApplyMigrations runs every embedded migration against db.
func ApplyMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetTableName("schema_migrations")
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// WithTx executes a test function within a transaction, automatically rolling back
// after the test completes. This ensures test isolation and prevents side effects.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		// sql.ErrTxDone is expected if the test committed or rolled back itself
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}
