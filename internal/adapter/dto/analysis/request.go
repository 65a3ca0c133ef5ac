package analysis

// Optional fields are pointers so that absence can be told apart from "".
// Required fields only need to be present; an empty string is accepted.

// AnalyzeTranscriptRequest represents the request to review a sales-call transcript
type AnalyzeTranscriptRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	Attendees   *string `json:"attendees,omitempty"`
	Date        *string `json:"date,omitempty"`
	Transcript  *string `json:"transcript" validate:"required"`
}

// GenerateIcebreakerRequest represents the request to analyse a LinkedIn prospect
type GenerateIcebreakerRequest struct {
	Username    *string `json:"username" validate:"required"`
	Role        *string `json:"role" validate:"required"`
	LinkedinBio *string `json:"linkedin_bio" validate:"required"`
	DeckURL     *string `json:"deck_url,omitempty"`
}

// Value dereferences an optional field, defaulting to ""
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
