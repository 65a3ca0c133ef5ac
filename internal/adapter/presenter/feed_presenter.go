package presenter

import (
	"github.com/johnquangdev/sales-copilot/internal/adapter/dto/feed"
	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
)

// ToFeedItemResponse converts a FeedItem entity to its DTO
func ToFeedItemResponse(item entities.FeedItem) feed.FeedItemResponse {
	response := feed.FeedItemResponse{
		ID:          item.ID.String(),
		Type:        string(item.Type),
		Title:       item.Title,
		Description: item.Description,
		Analysis:    ToAnalysisResult(item.Analysis),
		CreatedAt:   item.CreatedAt,
	}
	if item.Date != nil {
		date := *item.Date
		response.Date = &date
	}
	return response
}

// ToFeedResponse converts feed items, keeping their order
func ToFeedResponse(items []entities.FeedItem) *feed.FeedResponse {
	responses := make([]feed.FeedItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToFeedItemResponse(item)
	}
	return &feed.FeedResponse{Items: responses}
}
