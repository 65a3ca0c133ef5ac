package feed

import "github.com/johnquangdev/sales-copilot/internal/adapter/dto/common"

// FeedItemResponse is one entry of the merged feed.
// Date is omitted entirely for icebreaker items.
type FeedItemResponse struct {
	ID          string                `json:"id"`
	Type        string                `json:"type" enums:"transcript,icebreaker"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Date        *string               `json:"date,omitempty"`
	Analysis    common.AnalysisResult `json:"analysis"`
	// CreatedAt is normalized to UTC with six fractional digits
	CreatedAt   string                `json:"created_at"`
}

// FeedResponse wraps the feed items, newest first
type FeedResponse struct {
	Items []FeedItemResponse `json:"items"`
}
