package store

import (
	"bati-server/internal/observability"
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  Store
}

// SetupTestDB connects to the PostgreSQL instance named by the TEST_DB_*
// environment variables. Tests that need a database are skipped when
// TEST_DB_HOST is unset so the suite stays runnable without infrastructure.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbHost := os.Getenv("TEST_DB_HOST")
	if dbHost == "" {
		t.Skip("TEST_DB_HOST not set; skipping database tests")
	}
	dbPort := getTestEnv("TEST_DB_PORT", "5432")
	dbUser := getTestEnv("TEST_DB_USER", "postgres")
	dbPass := getTestEnv("TEST_DB_PASSWORD", "postgres")
	dbName := getTestEnv("TEST_DB_NAME", "bati_test")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	logger := observability.NewLogger()
	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	store := Store{db: db, logger: logger}

	ctx := context.Background()
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("failed to ensure schema: %v", err)
	}
	// The membres directory is administered out-of-band in production; tests
	// need their own copy of it.
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS membres (
		id SERIAL PRIMARY KEY,
		nom_societe TEXT NOT NULL,
		telephone TEXT UNIQUE NOT NULL
	)`); err != nil {
		t.Fatalf("failed to create membres table: %v", err)
	}

	return &TestDB{db: db, logger: logger, Store: store}
}

// Truncate clears all tables between test cases.
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()
	for _, table := range []string{"chantiers", "documents", "membres"} {
		if _, err := tdb.db.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY"); err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}

// Close releases the test database connection.
func (tdb *TestDB) Close() {
	tdb.db.Close()
}

// createTestMember inserts a directory entry and returns it.
func createTestMember(t *testing.T, tdb *TestDB, companyName, phone string) Member {
	t.Helper()
	var member Member
	err := tdb.db.Get(&member, `INSERT INTO membres (nom_societe, telephone)
		VALUES ($1, $2) RETURNING id, nom_societe, telephone`, companyName, phone)
	if err != nil {
		t.Fatalf("failed to create test member: %v", err)
	}
	return member
}

func getTestEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
