package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/sales-copilot/errors"
	"github.com/johnquangdev/sales-copilot/internal/adapter/presenter"
	feeduc "github.com/johnquangdev/sales-copilot/internal/usecase/feed"
	usecaseErrors "github.com/johnquangdev/sales-copilot/internal/usecase/errors"
)

// Feed serves the merged history of transcripts and icebreakers
type Feed struct {
	svc    feeduc.Service
	logger *zap.Logger
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(svc feeduc.Service, logger *zap.Logger) *Feed {
	return &Feed{svc: svc, logger: logger}
}

// GetFeed returns the newest records of both kinds
// @Summary      Get the activity feed
// @Description  Up to 20 transcripts and 20 icebreakers merged newest first. Icebreaker items have no date field.
// @Tags         Feed
// @Produce      json
// @Success      200  {object}  feed.FeedResponse
// @Failure      500  {object}  common.ErrorResponse  "Records could not be read"
// @Router       /feed [get]
func (h *Feed) GetFeed(c echo.Context) error {
	items, err := h.svc.GetFeed(c.Request().Context())
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrStoreRead) {
			return HandleError(h.logger, c, errors.ErrStoreReadFailed("feed", err))
		}
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToFeedResponse(items))
}
