package repositories

import (
	"context"

	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
)

// IcebreakerRepository defines persistence operations for icebreaker analyses
type IcebreakerRepository interface {
	// Create inserts the record and returns the store-assigned ID.
	// An empty ID with a nil error means the store returned no row.
	Create(ctx context.Context, record *entities.IcebreakerRecord) (entities.RecordID, error)

	// ListRecent returns up to limit records, newest first by created_at
	ListRecent(ctx context.Context, limit int) ([]*entities.IcebreakerRecord, error)
}
