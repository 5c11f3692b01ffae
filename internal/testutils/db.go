package testutils

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/slidegen/slidegen-api/internal/platform/postgres"
)

// TestDatabaseURLEnv is the environment variable consulted for the
// integration test database.
const TestDatabaseURLEnv = "DATABASE_URL"

// GetTestDB opens a connection to the integration test database and applies
// schema migrations. Tests calling it are skipped when DATABASE_URL is not
// set, so the rest of the suite runs without a database.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv(TestDatabaseURLEnv)
	if dbURL == "" {
		t.Skipf("skipping database test: %s not set", TestDatabaseURLEnv)
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	if err := db.Ping(); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	if err := postgres.RunMigrations(db, nil); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}
