package entities

import "encoding/json"

// AnalysisStatus is the outcome of a model call
type AnalysisStatus string

// AnalysisStatus constants
const (
	AnalysisStatusSuccess AnalysisStatus = "success"
	AnalysisStatusError   AnalysisStatus = "error"
)

// Analysis is the structured result persisted with every record.
// Insights is never populated on success; the model's free text is kept whole in Summary.
type Analysis struct {
	Summary  string         `json:"summary"`
	Insights []string       `json:"insights"`
	Status   AnalysisStatus `json:"status"`
}

// NewSuccessAnalysis wraps raw model output
func NewSuccessAnalysis(text string) Analysis {
	return Analysis{
		Summary:  text,
		Insights: []string{},
		Status:   AnalysisStatusSuccess,
	}
}

// NewErrorAnalysis builds an error payload. At most one explanatory insight is kept.
func NewErrorAnalysis(message string, insight ...string) Analysis {
	insights := []string{}
	if len(insight) > 0 {
		insights = append(insights, insight[0])
	}
	return Analysis{
		Summary:  message,
		Insights: insights,
		Status:   AnalysisStatusError,
	}
}

// IsError reports whether the analysis carries an error message
func (a Analysis) IsError() bool {
	return a.Status == AnalysisStatusError
}

// MarshalJSON keeps insights an array even for zero-value analyses read back from a store
func (a Analysis) MarshalJSON() ([]byte, error) {
	type alias Analysis
	out := alias(a)
	if out.Insights == nil {
		out.Insights = []string{}
	}
	return json.Marshal(out)
}
