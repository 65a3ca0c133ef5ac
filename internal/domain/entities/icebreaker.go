package entities

// IcebreakerRecord is an outreach analysis of a LinkedIn prospect (table "icebreakers").
type IcebreakerRecord struct {
	ID          RecordID `json:"id"`
	Username    string   `json:"username"`
	Role        string   `json:"role"`
	LinkedinBio string   `json:"linkedin_bio"`
	DeckURL     string   `json:"deck_url"`
	Analysis    Analysis `json:"analysis"`
	CreatedAt   string   `json:"created_at"`
}

// TableName specifies the table name
func (IcebreakerRecord) TableName() string {
	return "icebreakers"
}

// NewIcebreakerRecord creates an unsaved icebreaker record
func NewIcebreakerRecord(username, role, linkedinBio, deckURL string, analysis Analysis) *IcebreakerRecord {
	return &IcebreakerRecord{
		Username:    username,
		Role:        role,
		LinkedinBio: linkedinBio,
		DeckURL:     deckURL,
		Analysis:    analysis,
	}
}
