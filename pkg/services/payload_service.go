package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qawave/qawave/ent"
	"github.com/qawave/qawave/ent/runpayload"
	"github.com/qawave/qawave/pkg/models"
	"github.com/qawave/qawave/pkg/payload"
)

// PayloadService stores and retrieves the canonical replay payload, one per
// run.
type PayloadService struct {
	client *ent.Client
}

// NewPayloadService creates a new PayloadService.
func NewPayloadService(client *ent.Client) *PayloadService {
	return &PayloadService{client: client}
}

// SavePayload encodes and persists the run's canonical payload. A run has at
// most one payload; saving twice fails with ErrAlreadyExists.
func (s *PayloadService) SavePayload(httpCtx context.Context, doc *payload.Document) (*ent.RunPayload, error) {
	if doc == nil || doc.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	body, contentHash, err := payload.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	row, err := s.client.RunPayload.Create().
		SetID(uuid.New().String()).
		SetRunID(doc.RunID).
		SetBody(body).
		SetSizeBytes(len(body)).
		SetContentHash(contentHash).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to save payload: %w", err)
	}
	return row, nil
}

// GetPayload loads and decodes a run's payload, verifying the stored content
// hash against the decoded document. A mismatch means the stored bytes were
// corrupted and the payload must not be replayed.
func (s *PayloadService) GetPayload(ctx context.Context, runID string) (*payload.Document, error) {
	row, err := s.client.RunPayload.Query().
		Where(runpayload.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payload: %w", err)
	}

	doc, err := payload.Decode(row.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload for run %s: %w", runID, err)
	}

	canonical, err := payload.Canonical(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize payload: %w", err)
	}
	if got := models.SHA256Hex(canonical); got != row.ContentHash {
		return nil, fmt.Errorf("payload for run %s is corrupted: content hash %s does not match stored %s",
			runID, got, row.ContentHash)
	}

	return doc, nil
}

// HasPayload reports whether a payload row exists for the run. The pipeline
// uses this to detect replayed runs, which skip spec fetch and generation.
func (s *PayloadService) HasPayload(ctx context.Context, runID string) (bool, error) {
	exists, err := s.client.RunPayload.Query().
		Where(runpayload.RunIDEQ(runID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check payload existence: %w", err)
	}
	return exists, nil
}
