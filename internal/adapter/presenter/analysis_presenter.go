package presenter

import (
	"github.com/johnquangdev/sales-copilot/internal/adapter/dto/analysis"
	"github.com/johnquangdev/sales-copilot/internal/adapter/dto/common"
	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
)

// ToAnalysisResult converts an Analysis entity to its DTO; insights is never null
func ToAnalysisResult(a entities.Analysis) common.AnalysisResult {
	insights := make([]string, len(a.Insights))
	copy(insights, a.Insights)
	return common.AnalysisResult{
		Summary:  a.Summary,
		Insights: insights,
		Status:   string(a.Status),
	}
}

// ToAnalyzeResponse builds the submission response; an empty id renders as null
func ToAnalyzeResponse(result entities.Analysis, id entities.RecordID) *analysis.AnalyzeResponse {
	response := &analysis.AnalyzeResponse{
		Result: ToAnalysisResult(result),
	}
	if !id.IsZero() {
		s := id.String()
		response.ID = &s
	}
	return response
}
