package analysis

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
	"github.com/johnquangdev/sales-copilot/internal/domain/repositories"
	aiuse "github.com/johnquangdev/sales-copilot/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/sales-copilot/internal/usecase/errors"
	"github.com/johnquangdev/sales-copilot/internal/usecase/prompt"
	"github.com/johnquangdev/sales-copilot/pkg/reqcontext"
)

// Service defines the submission use cases
type Service interface {
	// SubmitTranscript reviews a sales-call transcript and stores the result
	SubmitTranscript(ctx context.Context, input TranscriptInput) (*Output, error)

	// SubmitIcebreaker analyses a LinkedIn prospect and stores the result
	SubmitIcebreaker(ctx context.Context, input IcebreakerInput) (*Output, error)
}

// TranscriptInput is a validated transcript submission; optional fields are "" when absent
type TranscriptInput struct {
	CompanyName string
	Attendees   string
	Date        string
	Transcript  string
}

// IcebreakerInput is a validated icebreaker submission
type IcebreakerInput struct {
	Username    string
	Role        string
	LinkedinBio string
	DeckURL     string
}

// Output is what a submission returns. ID is empty when the store returned no row.
type Output struct {
	Result entities.Analysis
	ID     entities.RecordID
}

// Ensure AnalysisService implements Service interface
var _ Service = (*AnalysisService)(nil)

// AnalysisService runs prompt -> model -> store for each submission
type AnalysisService struct {
	gateway        aiuse.Gateway
	transcriptRepo repositories.TranscriptRepository
	icebreakerRepo repositories.IcebreakerRepository
	logger         *zap.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	gateway aiuse.Gateway,
	transcriptRepo repositories.TranscriptRepository,
	icebreakerRepo repositories.IcebreakerRepository,
	logger *zap.Logger,
) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		gateway:        gateway,
		transcriptRepo: transcriptRepo,
		icebreakerRepo: icebreakerRepo,
		logger:         logger,
	}
}

// SubmitTranscript implements Service. Once started it runs to completion
// even if the caller goes away.
func (s *AnalysisService) SubmitTranscript(ctx context.Context, input TranscriptInput) (*Output, error) {
	ctx = context.WithoutCancel(ctx)

	text, err := prompt.Transcript(prompt.TranscriptInput{
		CompanyName: input.CompanyName,
		Attendees:   input.Attendees,
		Date:        input.Date,
		Transcript:  input.Transcript,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrPromptRender, err)
	}

	result, err := s.gateway.Generate(ctx, text)
	if err != nil {
		return nil, err
	}

	record := entities.NewTranscriptRecord(input.CompanyName, input.Attendees, input.Date, input.Transcript, result)
	id, err := s.transcriptRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrStoreWrite, err)
	}

	s.logSaved(ctx, record.TableName(), id, result)
	return &Output{Result: result, ID: id}, nil
}

// SubmitIcebreaker implements Service. Like SubmitTranscript it ignores
// caller cancellation.
func (s *AnalysisService) SubmitIcebreaker(ctx context.Context, input IcebreakerInput) (*Output, error) {
	ctx = context.WithoutCancel(ctx)

	text, err := prompt.Icebreaker(prompt.IcebreakerInput{
		Username:    input.Username,
		Role:        input.Role,
		LinkedinBio: input.LinkedinBio,
		DeckURL:     input.DeckURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrPromptRender, err)
	}

	result, err := s.gateway.Generate(ctx, text)
	if err != nil {
		return nil, err
	}

	record := entities.NewIcebreakerRecord(input.Username, input.Role, input.LinkedinBio, input.DeckURL, result)
	id, err := s.icebreakerRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrStoreWrite, err)
	}

	s.logSaved(ctx, record.TableName(), id, result)
	return &Output{Result: result, ID: id}, nil
}

func (s *AnalysisService) logSaved(ctx context.Context, table string, id entities.RecordID, result entities.Analysis) {
	fields := append(reqcontext.Fields(ctx),
		zap.String("table", table),
		zap.String("id", id.String()),
		zap.String("status", string(result.Status)),
	)
	if id.IsZero() {
		s.logger.Warn("store returned no row for insert", fields...)
		return
	}
	s.logger.Info("record saved", fields...)
}
