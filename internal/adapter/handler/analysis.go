package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/sales-copilot/errors"
	dto "github.com/johnquangdev/sales-copilot/internal/adapter/dto/analysis"
	"github.com/johnquangdev/sales-copilot/internal/adapter/presenter"
	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
	analysisuc "github.com/johnquangdev/sales-copilot/internal/usecase/analysis"
	usecaseErrors "github.com/johnquangdev/sales-copilot/internal/usecase/errors"
)

// Analysis handles the transcript and icebreaker submission endpoints
type Analysis struct {
	svc    analysisuc.Service
	logger *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc analysisuc.Service, logger *zap.Logger) *Analysis {
	return &Analysis{svc: svc, logger: logger}
}

// AnalyzeTranscript reviews a sales-call transcript
// @Summary      Review a sales-call transcript
// @Description  Sends the transcript to the model and stores the review. Model failures are returned with status "error" and still stored.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      analysis.AnalyzeTranscriptRequest  true  "Transcript to review"
// @Success      200      {object}  analysis.AnalyzeResponse
// @Failure      400      {object}  common.ErrorResponse  "Malformed body or missing transcript"
// @Failure      500      {object}  common.ErrorResponse  "Record could not be stored"
// @Router       /analyze_transcript [post]
func (h *Analysis) AnalyzeTranscript(c echo.Context) error {
	var req dto.AnalyzeTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err))
	}

	out, err := h.svc.SubmitTranscript(c.Request().Context(), analysisuc.TranscriptInput{
		CompanyName: dto.Value(req.CompanyName),
		Attendees:   dto.Value(req.Attendees),
		Date:        dto.Value(req.Date),
		Transcript:  dto.Value(req.Transcript),
	})
	if err != nil {
		return HandleError(h.logger, c, submitError(entities.TranscriptRecord{}.TableName(), err))
	}

	return HandleSuccess(h.logger, c, presenter.ToAnalyzeResponse(out.Result, out.ID))
}

// GenerateIcebreaker analyses a LinkedIn prospect
// @Summary      Generate an icebreaker analysis
// @Description  Builds an outreach analysis for a LinkedIn prospect and stores it.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      analysis.GenerateIcebreakerRequest  true  "Prospect profile"
// @Success      200      {object}  analysis.AnalyzeResponse
// @Failure      400      {object}  common.ErrorResponse  "Malformed body or missing field"
// @Failure      500      {object}  common.ErrorResponse  "Record could not be stored"
// @Router       /generate_icebreaker [post]
func (h *Analysis) GenerateIcebreaker(c echo.Context) error {
	var req dto.GenerateIcebreakerRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err))
	}

	out, err := h.svc.SubmitIcebreaker(c.Request().Context(), analysisuc.IcebreakerInput{
		Username:    dto.Value(req.Username),
		Role:        dto.Value(req.Role),
		LinkedinBio: dto.Value(req.LinkedinBio),
		DeckURL:     dto.Value(req.DeckURL),
	})
	if err != nil {
		return HandleError(h.logger, c, submitError(entities.IcebreakerRecord{}.TableName(), err))
	}

	return HandleSuccess(h.logger, c, presenter.ToAnalyzeResponse(out.Result, out.ID))
}

func submitError(table string, err error) error {
	if stdErrors.Is(err, usecaseErrors.ErrStoreWrite) {
		return errors.ErrStoreWriteFailed(table, err)
	}
	return errors.ErrInternal(err)
}
