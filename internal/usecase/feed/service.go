package feed

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
	"github.com/johnquangdev/sales-copilot/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/sales-copilot/internal/usecase/errors"
	"github.com/johnquangdev/sales-copilot/pkg/reqcontext"
)

// SourceLimit is how many records are read from each table
const SourceLimit = 20

// Fallback display values
const (
	UnknownCompany = "Unknown Company"
	UnknownUser    = "Unknown User"
	UnknownRole    = "Unknown Role"

	icebreakerTitlePrefix     = "LinkedIn Icebreaker - "
	icebreakerDescriptionTail = " • Sales Outreach Analysis"
)

// Service defines the feed use case
type Service interface {
	// GetFeed merges the newest transcripts and icebreakers, newest first
	GetFeed(ctx context.Context) ([]entities.FeedItem, error)
}

var _ Service = (*FeedService)(nil)

// FeedService reads both record tables and merges them into one view
type FeedService struct {
	transcriptRepo repositories.TranscriptRepository
	icebreakerRepo repositories.IcebreakerRepository
	logger         *zap.Logger
}

// NewFeedService creates a new feed service
func NewFeedService(
	transcriptRepo repositories.TranscriptRepository,
	icebreakerRepo repositories.IcebreakerRepository,
	logger *zap.Logger,
) *FeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedService{
		transcriptRepo: transcriptRepo,
		icebreakerRepo: icebreakerRepo,
		logger:         logger,
	}
}

// GetFeed implements Service. Any read failure fails the whole feed.
func (s *FeedService) GetFeed(ctx context.Context) ([]entities.FeedItem, error) {
	transcripts, err := s.transcriptRepo.ListRecent(ctx, SourceLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: transcripts: %w", usecaseErrors.ErrStoreRead, err)
	}
	icebreakers, err := s.icebreakerRepo.ListRecent(ctx, SourceLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: icebreakers: %w", usecaseErrors.ErrStoreRead, err)
	}

	items := Merge(transcripts, icebreakers)

	s.logger.Debug("feed assembled",
		append(reqcontext.Fields(ctx),
			zap.Int("transcripts", len(transcripts)),
			zap.Int("icebreakers", len(icebreakers)),
			zap.Int("items", len(items)),
		)...,
	)
	return items, nil
}

// Merge maps both record kinds and sorts the result by created_at descending.
// Inputs beyond SourceLimit are ignored. The sort is stable, so items with
// equal timestamps keep transcripts ahead of icebreakers.
func Merge(transcripts []*entities.TranscriptRecord, icebreakers []*entities.IcebreakerRecord) []entities.FeedItem {
	transcripts = capped(transcripts)
	icebreakers = capped(icebreakers)

	items := make([]entities.FeedItem, 0, len(transcripts)+len(icebreakers))
	for _, t := range transcripts {
		if t != nil {
			items = append(items, FromTranscript(t))
		}
	}
	for _, ib := range icebreakers {
		if ib != nil {
			items = append(items, FromIcebreaker(ib))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt > items[j].CreatedAt
	})
	return items
}

// FromTranscript maps a transcript record to a feed item
func FromTranscript(t *entities.TranscriptRecord) entities.FeedItem {
	title := t.CompanyName
	if title == "" {
		title = UnknownCompany
	}
	date := t.Date
	return entities.FeedItem{
		ID:          t.ID,
		Type:        entities.FeedItemTypeTranscript,
		Title:       title,
		Description: t.Attendees,
		Date:        &date,
		Analysis:    t.Analysis,
		CreatedAt:   t.CreatedAt,
	}
}

// FromIcebreaker maps an icebreaker record to a feed item. Date stays nil.
func FromIcebreaker(ib *entities.IcebreakerRecord) entities.FeedItem {
	username := ib.Username
	if username == "" {
		username = UnknownUser
	}
	role := ib.Role
	if role == "" {
		role = UnknownRole
	}
	return entities.FeedItem{
		ID:          ib.ID,
		Type:        entities.FeedItemTypeIcebreaker,
		Title:       icebreakerTitlePrefix + username,
		Description: role + icebreakerDescriptionTail,
		Analysis:    ib.Analysis,
		CreatedAt:   ib.CreatedAt,
	}
}

func capped[T any](records []T) []T {
	if len(records) > SourceLimit {
		return records[:SourceLimit]
	}
	return records
}
