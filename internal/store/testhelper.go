package store

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"subgate/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  Store
}

// SetupTestDB connects to the PostgreSQL instance described by TEST_DB_* and
// applies the schema. The test is skipped when no database is reachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	logger := observability.NewNopLogger()

	db, err := setupPostgresDB(t)
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}

	store := Store{db: db, logger: logger}
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tdb := &TestDB{
		db:     db,
		logger: logger,
		Store:  store,
	}
	tdb.Truncate(t)
	return tdb
}

func setupPostgresDB(t *testing.T) (*sqlx.DB, error) {
	t.Helper()

	dbHost := envOr("TEST_DB_HOST", "localhost")
	dbPort := envOr("TEST_DB_PORT", "5432")
	dbUser := envOr("TEST_DB_USER", "subgate_user")
	dbPass := envOr("TEST_DB_PASSWORD", "subgate_password")
	dbName := envOr("TEST_DB_NAME", "subgate_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		tables = []string{
			"campaign_items",
			"gate_channels",
			"gate_links",
			"campaigns",
			"users",
		}
	}

	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	if _, err := tdb.db.Exec(query); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// GetDB returns the underlying database connection
func (tdb *TestDB) GetDB() *sqlx.DB {
	return tdb.db
}
