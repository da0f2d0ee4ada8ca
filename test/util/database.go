// Package util holds the PostgreSQL fixtures shared by integration and
// end-to-end tests. Every test gets its own schema inside one database, so
// the whole package runs against a single container (or, in CI, a single
// external service) without cross-test interference.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/qawave/qawave/ent"
)

var (
	baseOnce    sync.Once
	baseConnStr string
	baseErr     error
)

// SetupTestDatabase gives the test a fresh schema with migrations applied
// and returns the ent client plus the underlying pool. Cleanup (schema drop,
// connection close) is registered on t; callers wrap the return values but
// never close them.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	ctx := context.Background()

	connStr := GetBaseConnectionString(t)
	schemaName := GenerateSchemaName(t)

	// A short-lived admin connection creates the schema; the pool the test
	// actually uses is opened afterwards with search_path baked into its DSN,
	// so every pooled connection lands in the right schema.
	admin, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	_ = admin.Close()

	t.Logf("test schema %s created", schemaName)

	db, err := stdsql.Open("pgx", AddSearchPathToConnString(connStr, schemaName))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() {
		// Schema first, while the pool is still usable.
		_, err := db.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
		if err != nil {
			t.Logf("dropping schema %s: %v", schemaName, err)
		}
		_ = entClient.Close()
		_ = db.Close()
	})

	return entClient, db
}

// GetBaseConnectionString returns the DSN of the shared database with no
// search_path attached. Tests that open dedicated connections, such as the
// listener's LISTEN conn, start from this and add their own parameters.
func GetBaseConnectionString(t *testing.T) string {
	if ciURL := os.Getenv("CI_DATABASE_URL"); ciURL != "" {
		t.Log("using PostgreSQL from CI_DATABASE_URL")
		return ciURL
	}

	baseOnce.Do(func() { startSharedContainer(t) })
	require.NoError(t, baseErr, "shared PostgreSQL container unavailable")
	return baseConnStr
}

// startSharedContainer boots the package-wide testcontainer. Runs at most
// once; later tests reuse the cached DSN or see the cached error.
func startSharedContainer(t *testing.T) {
	ctx := context.Background()
	t.Log("starting shared PostgreSQL testcontainer")

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		baseErr = fmt.Errorf("starting postgres container: %w", err)
		return
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		baseErr = fmt.Errorf("resolving container DSN: %w", err)
		return
	}

	baseConnStr = connStr
	t.Logf("shared container up at %s", baseConnStr)
}

// GenerateSchemaName derives a schema identifier from the test name:
// lowercased, non-alphanumerics folded to underscores, truncated below
// PostgreSQL's 63-byte identifier limit, and suffixed with random hex so
// reruns and parallel subtests never collide.
func GenerateSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))

	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("random schema suffix: %v", err)
	}

	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// AddSearchPathToConnString appends search_path=<schema> to a DSN, using ?
// or & depending on whether the DSN already carries parameters.
func AddSearchPathToConnString(connStr, schemaName string) string {
	separator := "?"
	if strings.Contains(connStr, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%ssearch_path=%s", connStr, separator, schemaName)
}
