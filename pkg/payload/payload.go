// Package payload implements the canonical run payload codec. The payload
// is the replay contract: the verified scenarios, environment, and config
// of a run serialized once at AI_SUCCESS and replayed byte-for-byte later.
package payload

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"

	"github.com/qawave/qawave/pkg/models"
)

// CompressThreshold is the canonical-JSON size above which stored payloads
// are gzip-compressed.
const CompressThreshold = 256 << 10

// gzipMagic doubles as the storage marker: JSON cannot begin with these
// bytes, so the first two bytes of a stored blob distinguish compressed
// from raw payloads.
var gzipMagic = []byte{0x1f, 0x8b}

// Document is the canonical payload persisted per run.
type Document struct {
	RunID       string            `json:"run_id"`
	SpecHash    string            `json:"spec_hash,omitempty"`
	Scenarios   []models.Scenario `json:"scenarios"`
	Environment map[string]string `json:"environment,omitempty"`
	Config      models.RunConfig  `json:"config"`
}

// Canonical returns the normalized JSON form of doc: step indices rewritten
// contiguous, map keys in Go's sorted marshal order. Encoding and decoding
// the same document yields identical Canonical bytes.
func Canonical(doc *Document) ([]byte, error) {
	clone := *doc
	if len(doc.Scenarios) > 0 {
		clone.Scenarios = make([]models.Scenario, len(doc.Scenarios))
		copy(clone.Scenarios, doc.Scenarios)
		for i := range clone.Scenarios {
			steps := make([]models.Step, len(clone.Scenarios[i].Steps))
			copy(steps, clone.Scenarios[i].Steps)
			clone.Scenarios[i].Steps = steps
			clone.Scenarios[i].NormalizeStepIndices()
		}
	}
	raw, err := json.Marshal(&clone)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return raw, nil
}

// Encode produces the storage blob for doc plus the content hash of its
// canonical JSON. The hash is computed before compression so it is stable
// across storage representations.
func Encode(doc *Document) (body []byte, contentHash string, err error) {
	raw, err := Canonical(doc)
	if err != nil {
		return nil, "", err
	}
	contentHash = models.SHA256Hex(raw)
	if len(raw) <= CompressThreshold {
		return raw, contentHash, nil
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, "", fmt.Errorf("compress payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, "", fmt.Errorf("compress payload: %w", err)
	}
	return buf.Bytes(), contentHash, nil
}

// Decode parses a storage blob back into a Document, transparently
// decompressing when the marker indicates gzip.
func Decode(data []byte) (*Document, error) {
	raw, err := DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	return &doc, nil
}

// DecodeBytes returns the canonical JSON bytes of a storage blob.
func DecodeBytes(data []byte) ([]byte, error) {
	if !IsCompressed(data) {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open compressed payload: %w", err)
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	return raw, nil
}

// IsCompressed reports whether a storage blob carries the gzip marker.
func IsCompressed(data []byte) bool {
	return len(data) >= 2 && data[0] == gzipMagic[0] && data[1] == gzipMagic[1]
}
