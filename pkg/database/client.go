// Package database provides the PostgreSQL client and migration utilities.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql

	"github.com/qawave/qawave/ent"
)

//go:embed migrations
var migrationsFS embed.FS

// Config is everything needed to reach PostgreSQL and size its pool.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN renders the pgx-compatible connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Validate rejects configurations that cannot produce a working pool.
func (c Config) Validate() error {
	if c.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.MaxOpenConns < 1 {
		return fmt.Errorf("max open connections must be >= 1, got %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must be >= 0, got %d", c.MaxIdleConns)
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("max idle connections (%d) must not exceed max open connections (%d)", c.MaxIdleConns, c.MaxOpenConns)
	}
	return nil
}

// Client embeds the ent client and keeps the raw *sql.DB it runs on.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB returns the underlying database connection for health checks, direct
// queries, and the LISTEN connection factory
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// NewClientFromEnt adopts an already-open ent client and pool. The test
// harness uses it to hand the app a per-schema client it built itself.
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{
		Client: entClient,
		db:     db,
	}
}

// NewClient opens the pool, verifies connectivity, applies any pending
// migrations, and returns the wrapped client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := stdsql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// ent speaks dialect.Postgres; pgx does the actual driving underneath.
	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := runMigrations(ctx, db, cfg, drv); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Client{
		Client: entClient,
		db:     db,
	}, nil
}

// runMigrations brings the schema to the latest version with golang-migrate
// over the SQL files embedded next to this package. A deployed binary carries
// its own migrations, so startup applies whatever is pending and is a no-op
// on an up-to-date database. Schema changes always land as a pair: the ent
// schema edit under ent/schema plus a matching SQL file under
// pkg/database/migrations.
func runMigrations(ctx context.Context, db *stdsql.DB, cfg Config, drv *entsql.Driver) error {
	hasMigrations, err := hasEmbeddedMigrations()
	if err != nil {
		return fmt.Errorf("inspecting embedded migrations: %w", err)
	}
	if !hasMigrations {
		return fmt.Errorf("embedded migrations missing, binary built without them")
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("preparing postgres migrate driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("opening migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, cfg.Database, driver)
	if err != nil {
		return fmt.Errorf("building migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("applying migrations: %w", err)
	}

	// Close only the source driver. m.Close() also closes the database
	// driver, and postgres.WithInstance shares our *sql.DB, so that would
	// tear down the pool the ent client is still using.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("closing migration source: %w", err)
	}

	// The GIN indexes are raw SQL the ent schema cannot express.
	if err := CreateGINIndexes(ctx, drv); err != nil {
		return fmt.Errorf("creating GIN indexes: %w", err)
	}

	return nil
}

// hasEmbeddedMigrations reports whether the embed actually captured any .sql
// files, guarding against a build where the directory went missing.
func hasEmbeddedMigrations() (bool, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading embedded migrations: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			return true, nil
		}
	}

	return false, nil
}
