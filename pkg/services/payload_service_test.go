package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/ent/runpayload"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/payload"
	testdb "github.com/qawave/qawave/test/database"
)

func TestPayloadService(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := NewRunService(client.Client, nil)
	service := NewPayloadService(client.Client)
	ctx := context.Background()

	newDoc := func(t *testing.T) *payload.Document {
		t.Helper()
		run, err := runService.CreateRun(ctx, minimalRunRequest())
		require.NoError(t, err)
		return &payload.Document{
			RunID:    run.ID,
			SpecHash: "sha256:beef",
			Scenarios: []models.Scenario{{
				ID:   "sc-1",
				Name: "probe",
				Steps: []models.Step{
					{Name: "probe", Method: models.MethodGet, Endpoint: "/healthz",
						Expected: models.Expectation{Status: "200"}},
				},
			}},
			Environment: map[string]string{"TOKEN": "t"},
		}
	}

	t.Run("save and load round-trip", func(t *testing.T) {
		doc := newDoc(t)
		row, err := service.SavePayload(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, len(row.Body), row.SizeBytes)
		assert.NotEmpty(t, row.ContentHash)
		assert.False(t, payload.IsCompressed(row.Body), "small payloads stay raw JSON")

		got, err := service.GetPayload(ctx, doc.RunID)
		require.NoError(t, err)
		assert.Equal(t, doc.RunID, got.RunID)
		assert.Equal(t, doc.SpecHash, got.SpecHash)
		require.Len(t, got.Scenarios, 1)
		assert.Equal(t, "sc-1", got.Scenarios[0].ID)
		assert.Equal(t, doc.Environment, got.Environment)
	})

	t.Run("one payload per run", func(t *testing.T) {
		doc := newDoc(t)
		_, err := service.SavePayload(ctx, doc)
		require.NoError(t, err)

		_, err = service.SavePayload(ctx, doc)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("large payloads are stored compressed transparently", func(t *testing.T) {
		doc := newDoc(t)
		// Inflate well past the compression threshold.
		filler := strings.Repeat("a", 4096)
		for i := 0; i < 80; i++ {
			doc.Scenarios = append(doc.Scenarios, models.Scenario{
				Name:        filler,
				Description: filler,
				Steps: []models.Step{
					{Name: "s", Method: models.MethodGet, Endpoint: "/x"},
				},
			})
		}

		row, err := service.SavePayload(ctx, doc)
		require.NoError(t, err)
		assert.True(t, payload.IsCompressed(row.Body))

		got, err := service.GetPayload(ctx, doc.RunID)
		require.NoError(t, err)
		assert.Len(t, got.Scenarios, len(doc.Scenarios))
	})

	t.Run("corrupted payload is refused", func(t *testing.T) {
		doc := newDoc(t)
		_, err := service.SavePayload(ctx, doc)
		require.NoError(t, err)

		// Flip the stored hash so verification must fail.
		err = client.RunPayload.Update().
			Where(runpayload.RunIDEQ(doc.RunID)).
			SetContentHash("sha256:tampered").
			Exec(ctx)
		require.NoError(t, err)

		_, err = service.GetPayload(ctx, doc.RunID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "corrupted")
	})

	t.Run("HasPayload distinguishes replayable runs", func(t *testing.T) {
		doc := newDoc(t)
		has, err := service.HasPayload(ctx, doc.RunID)
		require.NoError(t, err)
		assert.False(t, has)

		_, err = service.SavePayload(ctx, doc)
		require.NoError(t, err)

		has, err = service.HasPayload(ctx, doc.RunID)
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("missing payload returns ErrNotFound", func(t *testing.T) {
		_, err := service.GetPayload(ctx, "no-such-run")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates run reference", func(t *testing.T) {
		_, err := service.SavePayload(ctx, &payload.Document{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
