package analysis

import "github.com/johnquangdev/sales-copilot/internal/adapter/dto/common"

// AnalyzeResponse is returned by both submission endpoints.
// ID is null when the store returned no row.
type AnalyzeResponse struct {
	Result common.AnalysisResult `json:"result"`
	ID     *string               `json:"id"`
}
