package repository

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
	"github.com/johnquangdev/sales-copilot/internal/domain/repositories"
)

// transcriptInsert is the insert payload; id and created_at are left to the store
type transcriptInsert struct {
	CompanyName string            `json:"company_name"`
	Attendees   string            `json:"attendees"`
	Date        string            `json:"date"`
	Transcript  string            `json:"transcript"`
	Analysis    entities.Analysis `json:"analysis"`
}

type icebreakerInsert struct {
	Username    string            `json:"username"`
	Role        string            `json:"role"`
	LinkedinBio string            `json:"linkedin_bio"`
	DeckURL     string            `json:"deck_url"`
	Analysis    entities.Analysis `json:"analysis"`
}

var (
	_ repositories.TranscriptRepository = (*SupabaseTranscriptRepository)(nil)
	_ repositories.IcebreakerRepository = (*SupabaseIcebreakerRepository)(nil)
)

// SupabaseTranscriptRepository stores transcripts through the Supabase REST API.
// PostgREST calls are not cancellable; ctx is only checked before the request.
type SupabaseTranscriptRepository struct {
	client *postgrest.Client
}

// NewSupabaseTranscriptRepository creates a new transcript repository
func NewSupabaseTranscriptRepository(client *postgrest.Client) *SupabaseTranscriptRepository {
	return &SupabaseTranscriptRepository{client: client}
}

// Create inserts a transcript and returns the row id from the representation
func (r *SupabaseTranscriptRepository) Create(ctx context.Context, record *entities.TranscriptRecord) (entities.RecordID, error) {
	if record == nil {
		return "", entities.ErrNilRecord
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	payload := transcriptInsert{
		CompanyName: record.CompanyName,
		Attendees:   record.Attendees,
		Date:        record.Date,
		Transcript:  record.Transcript,
		Analysis:    record.Analysis,
	}

	var rows []entities.TranscriptRecord
	if err := insertRow(r.client, record.TableName(), payload, &rows); err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}

	record.ID = rows[0].ID
	record.CreatedAt = entities.NormalizeTimestamp(rows[0].CreatedAt)
	return record.ID, nil
}

// ListRecent returns the newest transcripts first
func (r *SupabaseTranscriptRepository) ListRecent(ctx context.Context, limit int) ([]*entities.TranscriptRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []entities.TranscriptRecord
	if err := selectRecent(r.client, entities.TranscriptRecord{}.TableName(), limit, &rows); err != nil {
		return nil, err
	}

	records := make([]*entities.TranscriptRecord, 0, len(rows))
	for i := range rows {
		rows[i].CreatedAt = entities.NormalizeTimestamp(rows[i].CreatedAt)
		records = append(records, &rows[i])
	}
	return records, nil
}

// SupabaseIcebreakerRepository stores icebreakers through the Supabase REST API
type SupabaseIcebreakerRepository struct {
	client *postgrest.Client
}

// NewSupabaseIcebreakerRepository creates a new icebreaker repository
func NewSupabaseIcebreakerRepository(client *postgrest.Client) *SupabaseIcebreakerRepository {
	return &SupabaseIcebreakerRepository{client: client}
}

// Create inserts an icebreaker and returns the row id from the representation
func (r *SupabaseIcebreakerRepository) Create(ctx context.Context, record *entities.IcebreakerRecord) (entities.RecordID, error) {
	if record == nil {
		return "", entities.ErrNilRecord
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	payload := icebreakerInsert{
		Username:    record.Username,
		Role:        record.Role,
		LinkedinBio: record.LinkedinBio,
		DeckURL:     record.DeckURL,
		Analysis:    record.Analysis,
	}

	var rows []entities.IcebreakerRecord
	if err := insertRow(r.client, record.TableName(), payload, &rows); err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}

	record.ID = rows[0].ID
	record.CreatedAt = entities.NormalizeTimestamp(rows[0].CreatedAt)
	return record.ID, nil
}

// ListRecent returns the newest icebreakers first
func (r *SupabaseIcebreakerRepository) ListRecent(ctx context.Context, limit int) ([]*entities.IcebreakerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []entities.IcebreakerRecord
	if err := selectRecent(r.client, entities.IcebreakerRecord{}.TableName(), limit, &rows); err != nil {
		return nil, err
	}

	records := make([]*entities.IcebreakerRecord, 0, len(rows))
	for i := range rows {
		rows[i].CreatedAt = entities.NormalizeTimestamp(rows[i].CreatedAt)
		records = append(records, &rows[i])
	}
	return records, nil
}

func insertRow(client *postgrest.Client, table string, payload any, out any) error {
	_, err := client.From(table).
		Insert(payload, false, "", "representation", "").
		ExecuteTo(out)
	if err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func selectRecent(client *postgrest.Client, table string, limit int, out any) error {
	_, err := client.From(table).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteTo(out)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	return nil
}
