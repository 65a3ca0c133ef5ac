package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
	"github.com/johnquangdev/sales-copilot/internal/domain/repositories"
)

// transcriptModel is the SQL row for a transcript record
type transcriptModel struct {
	ID          uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	CompanyName string                                `gorm:"not null;default:''"`
	Attendees   string                                `gorm:"not null;default:''"`
	Date        string                                `gorm:"not null;default:''"`
	Transcript  string                                `gorm:"not null"`
	Analysis    datatypes.JSONType[entities.Analysis] `gorm:"not null"`
	CreatedAt   time.Time                             `gorm:"not null;index"`
}

func (transcriptModel) TableName() string {
	return entities.TranscriptRecord{}.TableName()
}

func (m *transcriptModel) toEntity() *entities.TranscriptRecord {
	return &entities.TranscriptRecord{
		ID:          entities.RecordID(m.ID.String()),
		CompanyName: m.CompanyName,
		Attendees:   m.Attendees,
		Date:        m.Date,
		Transcript:  m.Transcript,
		Analysis:    m.Analysis.Data(),
		CreatedAt:   entities.FormatTimestamp(m.CreatedAt),
	}
}

// icebreakerModel is the SQL row for an icebreaker record
type icebreakerModel struct {
	ID          uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	Username    string                                `gorm:"not null"`
	Role        string                                `gorm:"not null"`
	LinkedinBio string                                `gorm:"not null"`
	DeckURL     string                                `gorm:"column:deck_url;not null;default:''"`
	Analysis    datatypes.JSONType[entities.Analysis] `gorm:"not null"`
	CreatedAt   time.Time                             `gorm:"not null;index"`
}

func (icebreakerModel) TableName() string {
	return entities.IcebreakerRecord{}.TableName()
}

func (m *icebreakerModel) toEntity() *entities.IcebreakerRecord {
	return &entities.IcebreakerRecord{
		ID:          entities.RecordID(m.ID.String()),
		Username:    m.Username,
		Role:        m.Role,
		LinkedinBio: m.LinkedinBio,
		DeckURL:     m.DeckURL,
		Analysis:    m.Analysis.Data(),
		CreatedAt:   entities.FormatTimestamp(m.CreatedAt),
	}
}

var (
	_ repositories.TranscriptRepository = (*TranscriptRepository)(nil)
	_ repositories.IcebreakerRepository = (*IcebreakerRepository)(nil)
)

// TranscriptRepository stores transcripts in PostgreSQL through GORM
type TranscriptRepository struct {
	db *gorm.DB
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// Create inserts a transcript and fills in its ID and CreatedAt
func (r *TranscriptRepository) Create(ctx context.Context, record *entities.TranscriptRecord) (entities.RecordID, error) {
	if record == nil {
		return "", entities.ErrNilRecord
	}

	model := transcriptModel{
		ID:          uuid.New(),
		CompanyName: record.CompanyName,
		Attendees:   record.Attendees,
		Date:        record.Date,
		Transcript:  record.Transcript,
		Analysis:    datatypes.NewJSONType(record.Analysis),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return "", fmt.Errorf("insert %s: %w", model.TableName(), err)
	}

	saved := model.toEntity()
	record.ID = saved.ID
	record.CreatedAt = saved.CreatedAt
	return saved.ID, nil
}

// ListRecent returns the newest transcripts first
func (r *TranscriptRepository) ListRecent(ctx context.Context, limit int) ([]*entities.TranscriptRecord, error) {
	var models []transcriptModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("select transcripts: %w", err)
	}

	records := make([]*entities.TranscriptRecord, 0, len(models))
	for i := range models {
		records = append(records, models[i].toEntity())
	}
	return records, nil
}

// IcebreakerRepository stores icebreakers in PostgreSQL through GORM
type IcebreakerRepository struct {
	db *gorm.DB
}

// NewIcebreakerRepository creates a new icebreaker repository
func NewIcebreakerRepository(db *gorm.DB) *IcebreakerRepository {
	return &IcebreakerRepository{db: db}
}

// Create inserts an icebreaker and fills in its ID and CreatedAt
func (r *IcebreakerRepository) Create(ctx context.Context, record *entities.IcebreakerRecord) (entities.RecordID, error) {
	if record == nil {
		return "", entities.ErrNilRecord
	}

	model := icebreakerModel{
		ID:          uuid.New(),
		Username:    record.Username,
		Role:        record.Role,
		LinkedinBio: record.LinkedinBio,
		DeckURL:     record.DeckURL,
		Analysis:    datatypes.NewJSONType(record.Analysis),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return "", fmt.Errorf("insert %s: %w", model.TableName(), err)
	}

	saved := model.toEntity()
	record.ID = saved.ID
	record.CreatedAt = saved.CreatedAt
	return saved.ID, nil
}

// ListRecent returns the newest icebreakers first
func (r *IcebreakerRepository) ListRecent(ctx context.Context, limit int) ([]*entities.IcebreakerRecord, error) {
	var models []icebreakerModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("select icebreakers: %w", err)
	}

	records := make([]*entities.IcebreakerRecord, 0, len(models))
	for i := range models {
		records = append(records, models[i].toEntity())
	}
	return records, nil
}
