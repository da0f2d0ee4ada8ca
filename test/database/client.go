package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/database"
	"github.com/qawave/qawave/test/util"
)

// NewTestClient hands the test a *database.Client on its own schema, with
// migrations and GIN indexes applied. Works against CI's external
// PostgreSQL and the local shared container alike; teardown rides on the
// t.Cleanup registered by the util helpers.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	// The GIN indexes are raw SQL, issued outside the ent migration.
	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateGINIndexes(ctx, drv))

	return database.NewClientFromEnt(entClient, db)
}
