package entities

// TranscriptRecord is a reviewed sales-call transcript (table "transcripts").
// ID and CreatedAt are assigned by the store.
type TranscriptRecord struct {
	ID          RecordID `json:"id"`
	CompanyName string   `json:"company_name"`
	Attendees   string   `json:"attendees"`
	Date        string   `json:"date"`
	Transcript  string   `json:"transcript"`
	Analysis    Analysis `json:"analysis"`
	CreatedAt   string   `json:"created_at"`
}

// TableName specifies the table name
func (TranscriptRecord) TableName() string {
	return "transcripts"
}

// NewTranscriptRecord creates an unsaved transcript record
func NewTranscriptRecord(companyName, attendees, date, transcript string, analysis Analysis) *TranscriptRecord {
	return &TranscriptRecord{
		CompanyName: companyName,
		Attendees:   attendees,
		Date:        date,
		Transcript:  transcript,
		Analysis:    analysis,
	}
}
