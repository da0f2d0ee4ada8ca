package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/pkg/database"
	"github.com/qawave/qawave/test/util"
)

// SharedTestDB is one schema serving several simulated replicas at once.
// Replicas must see each other's rows and NOTIFY traffic, so unlike the
// per-test setup they cannot each get their own schema; instead each
// replica gets its own pool onto this shared one.
type SharedTestDB struct {
	connStrWithSchema string
	baseConnStr       string
	schemaName        string
}

// NewSharedTestDB provisions the schema, applies migrations and GIN indexes
// once, and schedules the schema drop on t.Cleanup. Replicas then obtain
// their pools through NewClient.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()
	ctx := context.Background()

	baseConnStr := util.GetBaseConnectionString(t)
	schemaName := util.GenerateSchemaName(t)

	db, err := stdsql.Open("pgx", baseConnStr)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	t.Logf("shared schema %s created", schemaName)
	_ = db.Close()

	// Migrations run once here, over a throwaway connection with the
	// schema's search_path; replica pools connect later.
	connStrWithSchema := util.AddSearchPathToConnString(baseConnStr, schemaName)
	db, err = stdsql.Open("pgx", connStrWithSchema)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = database.CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	// Close the migration client; each replica creates its own.
	_ = entClient.Close()
	_ = db.Close()

	s := &SharedTestDB{
		connStrWithSchema: connStrWithSchema,
		baseConnStr:       baseConnStr,
		schemaName:        schemaName,
	}

	// The schema drops only after every replica has shut down: t.Cleanup
	// runs LIFO, and replica clients register theirs later.
	t.Cleanup(func() {
		cleanDB, err := stdsql.Open("pgx", baseConnStr)
		if err != nil {
			t.Logf("connecting to drop shared schema %s: %v", schemaName, err)
			return
		}
		defer func() { _ = cleanDB.Close() }()
		_, err = cleanDB.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
		if err != nil {
			t.Logf("dropping shared schema %s: %v", schemaName, err)
		}
	})

	return s
}

// NewClient opens a fresh pool onto the shared schema and wraps it as a
// *database.Client. Separate pools let one replica shut down without
// starving another; the pool closes via t.Cleanup.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	db, err := stdsql.Open("pgx", s.connStrWithSchema)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	client := database.NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})

	return client
}

// ConnString returns the schema-scoped connection string. Dedicated
// connections, e.g. a NotifyListener's pgx.Conn, should use this so raw SQL
// resolves against the shared test schema.
func (s *SharedTestDB) ConnString() string {
	return s.connStrWithSchema
}
