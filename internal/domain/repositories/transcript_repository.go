package repositories

import (
	"context"

	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
)

// TranscriptRepository defines persistence operations for reviewed transcripts.
// Records are append-only.
type TranscriptRepository interface {
	// Create inserts the record and returns the store-assigned ID.
	// An empty ID with a nil error means the store returned no row.
	Create(ctx context.Context, record *entities.TranscriptRecord) (entities.RecordID, error)

	// ListRecent returns up to limit records, newest first by created_at
	ListRecent(ctx context.Context, limit int) ([]*entities.TranscriptRecord, error)
}
