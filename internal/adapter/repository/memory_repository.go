package repository

import (
	"context"

	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
	"github.com/johnquangdev/sales-copilot/internal/domain/repositories"
	"github.com/johnquangdev/sales-copilot/internal/infrastructure/memory"
)

var (
	_ repositories.TranscriptRepository = (*MemoryTranscriptRepository)(nil)
	_ repositories.IcebreakerRepository = (*MemoryIcebreakerRepository)(nil)
)

// MemoryTranscriptRepository keeps transcripts in process memory
type MemoryTranscriptRepository struct {
	table *memory.Table[entities.TranscriptRecord]
}

// NewMemoryTranscriptRepository creates an empty transcript repository
func NewMemoryTranscriptRepository() *MemoryTranscriptRepository {
	return &MemoryTranscriptRepository{table: memory.NewTable[entities.TranscriptRecord]()}
}

func (r *MemoryTranscriptRepository) Create(ctx context.Context, record *entities.TranscriptRecord) (entities.RecordID, error) {
	if record == nil {
		return "", entities.ErrNilRecord
	}
	saved := r.table.Insert(func(id entities.RecordID, createdAt string) entities.TranscriptRecord {
		row := *record
		row.ID = id
		row.CreatedAt = createdAt
		return row
	})
	record.ID = saved.ID
	record.CreatedAt = saved.CreatedAt
	return saved.ID, nil
}

func (r *MemoryTranscriptRepository) ListRecent(ctx context.Context, limit int) ([]*entities.TranscriptRecord, error) {
	rows := r.table.Recent(limit)
	records := make([]*entities.TranscriptRecord, 0, len(rows))
	for i := range rows {
		records = append(records, &rows[i])
	}
	return records, nil
}

// MemoryIcebreakerRepository keeps icebreakers in process memory
type MemoryIcebreakerRepository struct {
	table *memory.Table[entities.IcebreakerRecord]
}

// NewMemoryIcebreakerRepository creates an empty icebreaker repository
func NewMemoryIcebreakerRepository() *MemoryIcebreakerRepository {
	return &MemoryIcebreakerRepository{table: memory.NewTable[entities.IcebreakerRecord]()}
}

func (r *MemoryIcebreakerRepository) Create(ctx context.Context, record *entities.IcebreakerRecord) (entities.RecordID, error) {
	if record == nil {
		return "", entities.ErrNilRecord
	}
	saved := r.table.Insert(func(id entities.RecordID, createdAt string) entities.IcebreakerRecord {
		row := *record
		row.ID = id
		row.CreatedAt = createdAt
		return row
	})
	record.ID = saved.ID
	record.CreatedAt = saved.CreatedAt
	return saved.ID, nil
}

func (r *MemoryIcebreakerRepository) ListRecent(ctx context.Context, limit int) ([]*entities.IcebreakerRecord, error) {
	rows := r.table.Recent(limit)
	records := make([]*entities.IcebreakerRecord, 0, len(rows))
	for i := range rows {
		records = append(records, &rows[i])
	}
	return records, nil
}
