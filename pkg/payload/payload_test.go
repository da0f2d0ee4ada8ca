package payload

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qawave/qawave/pkg/models"
)

func sampleDocument() *Document {
	return &Document{
		RunID:    "run-1",
		SpecHash: "abc123",
		Scenarios: []models.Scenario{
			{
				ID:          "scn-1",
				Name:        "create user",
				OperationID: "createUser",
				Source:      models.ScenarioSourceAIGenerated,
				Steps: []models.Step{
					{
						Index:    0,
						Name:     "create",
						Method:   models.MethodPost,
						Endpoint: "/users",
						Body:     json.RawMessage(`{"email":"${random.email}"}`),
						Expected: models.Expectation{Status: "201"},
					},
				},
			},
		},
		Environment: map[string]string{"API_KEY": "k"},
		Config:      models.DefaultRunConfig(),
	}
}

func TestEncodeSmallPayloadStaysRaw(t *testing.T) {
	doc := sampleDocument()

	body, hash, err := Encode(doc)
	require.NoError(t, err)

	assert.False(t, IsCompressed(body))
	assert.NotEmpty(t, hash)
	assert.Equal(t, byte('{'), body[0])

	decoded, err := Decode(body)
	require.NoError(t, err)
	assert.Equal(t, doc.RunID, decoded.RunID)
	assert.Equal(t, doc.Scenarios[0].Name, decoded.Scenarios[0].Name)
}

func TestEncodeLargePayloadCompresses(t *testing.T) {
	doc := sampleDocument()
	// Inflate well past the threshold with compressible content.
	doc.Scenarios[0].Description = strings.Repeat("the quick brown fox ", 20000)

	canonical, err := Canonical(doc)
	require.NoError(t, err)
	require.Greater(t, len(canonical), CompressThreshold)

	body, hash, err := Encode(doc)
	require.NoError(t, err)
	assert.True(t, IsCompressed(body))
	assert.Less(t, len(body), len(canonical))

	decoded, err := Decode(body)
	require.NoError(t, err)
	assert.Equal(t, doc.Scenarios[0].Description, decoded.Scenarios[0].Description)

	// The content hash covers the canonical JSON, not the compressed blob.
	assert.Equal(t, models.SHA256Hex(canonical), hash)
}

func TestCanonicalIsStableThroughRoundTrip(t *testing.T) {
	doc := sampleDocument()
	// Out-of-order indices normalize to 0..n-1.
	doc.Scenarios[0].Steps[0].Index = 7

	body, _, err := Encode(doc)
	require.NoError(t, err)
	decoded, err := Decode(body)
	require.NoError(t, err)

	first, err := Canonical(decoded)
	require.NoError(t, err)
	second, err := Canonical(doc)
	require.NoError(t, err)
	assert.Equal(t, second, first, "round trip must preserve canonical bytes")
	assert.Equal(t, 0, decoded.Scenarios[0].Steps[0].Index)
}

func TestCanonicalDoesNotMutateInput(t *testing.T) {
	doc := sampleDocument()
	doc.Scenarios[0].Steps[0].Index = 7

	_, err := Canonical(doc)
	require.NoError(t, err)
	assert.Equal(t, 7, doc.Scenarios[0].Steps[0].Index)
}

func TestHashStableAcrossRepresentations(t *testing.T) {
	small := sampleDocument()
	_, smallHash, err := Encode(small)
	require.NoError(t, err)

	_, again, err := Encode(small)
	require.NoError(t, err)
	assert.Equal(t, smallHash, again)
}

func TestDecodeBytesRejectsCorruptGzip(t *testing.T) {
	_, err := DecodeBytes([]byte{0x1f, 0x8b, 0xff, 0x00, 0x01})
	require.Error(t, err)
}

func TestIsCompressed(t *testing.T) {
	assert.False(t, IsCompressed(nil))
	assert.False(t, IsCompressed([]byte{0x1f}))
	assert.False(t, IsCompressed([]byte(`{"a":1}`)))
	assert.True(t, IsCompressed([]byte{0x1f, 0x8b, 0x08}))
}
