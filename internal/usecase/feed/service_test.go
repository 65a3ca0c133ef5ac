package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/sales-copilot/internal/usecase/errors"
)

type fakeTranscripts struct {
	records []*entities.TranscriptRecord
	err     error
	limit   int
}

func (f *fakeTranscripts) Create(ctx context.Context, r *entities.TranscriptRecord) (entities.RecordID, error) {
	return "", errors.New("not implemented")
}

func (f *fakeTranscripts) ListRecent(ctx context.Context, limit int) ([]*entities.TranscriptRecord, error) {
	f.limit = limit
	return f.records, f.err
}

type fakeIcebreakers struct {
	records []*entities.IcebreakerRecord
	err     error
	limit   int
}

func (f *fakeIcebreakers) Create(ctx context.Context, r *entities.IcebreakerRecord) (entities.RecordID, error) {
	return "", errors.New("not implemented")
}

func (f *fakeIcebreakers) ListRecent(ctx context.Context, limit int) ([]*entities.IcebreakerRecord, error) {
	f.limit = limit
	return f.records, f.err
}

func TestGetFeed_NewestFirstAcrossKinds(t *testing.T) {
	transcripts := &fakeTranscripts{records: []*entities.TranscriptRecord{
		{ID: "t1", CompanyName: "Acme", Attendees: "Bob", Date: "2024-01-02", CreatedAt: "2024-01-02"},
	}}
	icebreakers := &fakeIcebreakers{records: []*entities.IcebreakerRecord{
		{ID: "i1", Username: "Jane", Role: "CTO", CreatedAt: "2024-01-03"},
	}}
	svc := NewFeedService(transcripts, icebreakers, zaptest.NewLogger(t))

	items, err := svc.GetFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, entities.RecordID("i1"), items[0].ID)
	assert.Equal(t, entities.FeedItemTypeIcebreaker, items[0].Type)
	assert.Equal(t, entities.RecordID("t1"), items[1].ID)

	assert.Equal(t, SourceLimit, transcripts.limit)
	assert.Equal(t, SourceLimit, icebreakers.limit)
}

func TestGetFeed_ReadFailure(t *testing.T) {
	readErr := errors.New("timeout")

	t.Run("transcripts", func(t *testing.T) {
		svc := NewFeedService(&fakeTranscripts{err: readErr}, &fakeIcebreakers{}, nil)
		items, err := svc.GetFeed(context.Background())
		assert.Nil(t, items)
		assert.ErrorIs(t, err, usecaseErrors.ErrStoreRead)
		assert.ErrorIs(t, err, readErr)
	})

	t.Run("icebreakers", func(t *testing.T) {
		svc := NewFeedService(
			&fakeTranscripts{records: []*entities.TranscriptRecord{{ID: "t1"}}},
			&fakeIcebreakers{err: readErr},
			nil,
		)
		items, err := svc.GetFeed(context.Background())
		assert.Nil(t, items, "no partial feed")
		assert.ErrorIs(t, err, usecaseErrors.ErrStoreRead)
	})
}

func TestGetFeed_Empty(t *testing.T) {
	svc := NewFeedService(&fakeTranscripts{}, &fakeIcebreakers{}, nil)
	items, err := svc.GetFeed(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFromTranscript(t *testing.T) {
	analysis := entities.NewSuccessAnalysis("Good job.")

	item := FromTranscript(&entities.TranscriptRecord{
		ID:        "t1",
		Attendees: "Bob, Alice",
		Analysis:  analysis,
		CreatedAt: "2024-01-02T10:00:00.000000Z",
	})

	assert.Equal(t, UnknownCompany, item.Title)
	assert.Equal(t, "Bob, Alice", item.Description)
	require.NotNil(t, item.Date)
	assert.Equal(t, "", *item.Date)
	assert.Equal(t, analysis, item.Analysis)
	assert.Equal(t, "2024-01-02T10:00:00.000000Z", item.CreatedAt)

	named := FromTranscript(&entities.TranscriptRecord{CompanyName: "Acme", Date: "2024-01-02"})
	assert.Equal(t, "Acme", named.Title)
	assert.Equal(t, "2024-01-02", *named.Date)
}

func TestFromIcebreaker(t *testing.T) {
	tests := []struct {
		name      string
		record    entities.IcebreakerRecord
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "populated",
			record:    entities.IcebreakerRecord{Username: "Jane", Role: "CTO"},
			wantTitle: "LinkedIn Icebreaker - Jane",
			wantDesc:  "CTO • Sales Outreach Analysis",
		},
		{
			name:      "empty fields",
			record:    entities.IcebreakerRecord{},
			wantTitle: "LinkedIn Icebreaker - Unknown User",
			wantDesc:  "Unknown Role • Sales Outreach Analysis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := FromIcebreaker(&tt.record)
			assert.Equal(t, entities.FeedItemTypeIcebreaker, item.Type)
			assert.Equal(t, tt.wantTitle, item.Title)
			assert.Equal(t, tt.wantDesc, item.Description)
			assert.Nil(t, item.Date)
		})
	}
}

func TestMerge_SortedAndCapped(t *testing.T) {
	var transcripts []*entities.TranscriptRecord
	var icebreakers []*entities.IcebreakerRecord
	for i := 0; i < 25; i++ {
		transcripts = append(transcripts, &entities.TranscriptRecord{
			ID:        entities.RecordID(fmt.Sprintf("t%d", i)),
			CreatedAt: fmt.Sprintf("2024-01-%02dT00:00:00.000000Z", 28-i),
		})
		icebreakers = append(icebreakers, &entities.IcebreakerRecord{
			ID:        entities.RecordID(fmt.Sprintf("i%d", i)),
			CreatedAt: fmt.Sprintf("2024-02-%02dT00:00:00.000000Z", 28-i),
		})
	}

	items := Merge(transcripts, icebreakers)
	require.Len(t, items, 2*SourceLimit)

	var nTranscripts, nIcebreakers int
	for i, item := range items {
		if i > 0 {
			assert.GreaterOrEqual(t, items[i-1].CreatedAt, item.CreatedAt)
		}
		switch item.Type {
		case entities.FeedItemTypeTranscript:
			nTranscripts++
		case entities.FeedItemTypeIcebreaker:
			nIcebreakers++
		}
	}
	assert.Equal(t, SourceLimit, nTranscripts)
	assert.Equal(t, SourceLimit, nIcebreakers)
	assert.Equal(t, entities.RecordID("i0"), items[0].ID)
}

func TestMerge_StableOnTies(t *testing.T) {
	items := Merge(
		[]*entities.TranscriptRecord{{ID: "t1", CreatedAt: "2024-01-01"}},
		[]*entities.IcebreakerRecord{{ID: "i1", CreatedAt: "2024-01-01"}},
	)
	require.Len(t, items, 2)
	assert.Equal(t, entities.RecordID("t1"), items[0].ID)
	assert.Equal(t, entities.RecordID("i1"), items[1].ID)
}
