package common

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// AnalysisResult is the structured model result shared by all responses
type AnalysisResult struct {
	Summary  string   `json:"summary" example:"The rep handled objections well..."`
	Insights []string `json:"insights"`
	Status   string   `json:"status" enums:"success,error" example:"success"`
}
