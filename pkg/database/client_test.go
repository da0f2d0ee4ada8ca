package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/pkg/models"
)

// newTestClient builds a Client straight from a container (or CI's
// external PostgreSQL), bypassing the shared per-schema helpers so this
// package can test NewClientFromEnt and the raw pool itself.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("using PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("starting dedicated PostgreSQL testcontainer")
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
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// ent auto-migration; the GIN indexes need the extra raw SQL pass.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func createRun(t *testing.T, client *Client, id, requirement string) *ent.QARun {
	t.Helper()
	run, err := client.QARun.Create().
		SetID(id).
		SetName("run " + id).
		SetRequirementText(requirement).
		SetSpecSource(qarun.SpecSource(string(models.SpecSourceInline))).
		SetSpecInline(`{"openapi":"3.0.3"}`).
		SetBaseURL("http://api.internal").
		SetConfig(models.DefaultRunConfig()).
		Save(context.Background())
	require.NoError(t, err)
	return run
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	run1 := createRun(t, client, "run-fts-1", "Verify user creation rejects duplicate emails in production")
	run2 := createRun(t, client, "run-fts-2", "Check memory endpoints report usage")

	rows, err := client.DB().QueryContext(ctx,
		`SELECT run_id FROM qa_runs
		WHERE to_tsvector('english', COALESCE(requirement_text, '')) @@ to_tsquery('english', $1)`,
		"duplicate & production",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var runID string
		require.NoError(t, rows.Scan(&runID))
		results = append(results, runID)
	}
	require.NoError(t, rows.Err())

	assert.Len(t, results, 1)
	assert.Equal(t, run1.ID, results[0])

	rows2, err := client.DB().QueryContext(ctx,
		`SELECT run_id FROM qa_runs
		WHERE to_tsvector('english', COALESCE(requirement_text, '')) @@ to_tsquery('english', $1)`,
		"memory",
	)
	require.NoError(t, err)
	defer rows2.Close()

	results2 := []string{}
	for rows2.Next() {
		var runID string
		require.NoError(t, rows2.Scan(&runID))
		results2 = append(results2, runID)
	}
	require.NoError(t, rows2.Err())

	assert.Len(t, results2, 1)
	assert.Equal(t, run2.ID, results2[0])
}

func TestConfigRoundTripsThroughJSONB(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	cfg := models.DefaultRunConfig()
	three := 3
	cfg.MaxScenarios = &three
	cfg.Environment = map[string]string{"API_KEY": "k"}
	run, err := client.QARun.Create().
		SetID("run-cfg").
		SetName("config round trip").
		SetSpecSource(qarun.SpecSource(string(models.SpecSourceURL))).
		SetSpecURL("http://spec.internal/openapi.json").
		SetBaseURL("http://api.internal").
		SetConfig(cfg).
		Save(ctx)
	require.NoError(t, err)

	loaded, err := client.QARun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Config.ScenarioBudget())
	assert.Equal(t, "k", loaded.Config.Environment["API_KEY"])
	assert.True(t, loaded.Config.Parallel())
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config with defaults",
			envVars: map[string]string{
				"DB_PASSWORD": "test",
			},
			wantErr: false,
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			wantErr: false,
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT":     "invalid",
				"DB_PASSWORD": "test",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name: "invalid DB_MAX_OPEN_CONNS",
			envVars: map[string]string{
				"DB_MAX_OPEN_CONNS": "not_a_number",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name: "invalid DB_MAX_IDLE_CONNS",
			envVars: map[string]string{
				"DB_MAX_IDLE_CONNS": "abc123",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_IDLE_CONNS",
		},
		{
			name: "invalid DB_CONN_MAX_LIFETIME",
			envVars: map[string]string{
				"DB_CONN_MAX_LIFETIME": "invalid_duration",
				"DB_PASSWORD":          "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name: "invalid DB_CONN_MAX_IDLE_TIME",
			envVars: map[string]string{
				"DB_CONN_MAX_IDLE_TIME": "not_a_duration",
				"DB_PASSWORD":           "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_IDLE_TIME",
		},
		{
			name: "missing password",
			envVars: map[string]string{
				"DB_PASSWORD": "",
			},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envKeys := []string{
				"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
				"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
				"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
			}
			for _, key := range envKeys {
				os.Unsetenv(key)
			}

			for key, val := range tt.envVars {
				if val != "" {
					os.Setenv(key, val)
				}
			}

			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
				if tt.name == "valid config with defaults" {
					assert.Equal(t, "localhost", cfg.Host)
					assert.Equal(t, 5432, cfg.Port)
					assert.Equal(t, 25, cfg.MaxOpenConns)
					assert.Equal(t, 10, cfg.MaxIdleConns)
				}
			}
		})
	}
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	// Response time can be 0 for very fast local pings.
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000))

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	err = json.Unmarshal(jsonBytes, &jsonData)
	require.NoError(t, err)

	// Millisecond values, not nanoseconds.
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1000000))

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.GreaterOrEqual(t, waitDuration, float64(0))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				SSLMode:      "disable",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
			wantErr: false,
		},
		{
			name: "missing password",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "",
				Database:     "test",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
			wantErr: true,
		},
		{
			name: "idle conns exceed max conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				MaxOpenConns: 5,
				MaxIdleConns: 10,
			},
			wantErr: true,
		},
		{
			name: "zero max open conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				MaxOpenConns: 0,
				MaxIdleConns: 0,
			},
			wantErr: true,
		},
		{
			name: "negative idle conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				MaxOpenConns: 10,
				MaxIdleConns: -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
