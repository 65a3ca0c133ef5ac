// Package prompt renders the fixed natural-language prompts sent to the model.
//
// Field values are embedded verbatim: nothing is escaped, trimmed or
// truncated, so any text the caller submits reaches the model unchanged.
package prompt

import (
	_ "embed"
	"strings"
	"text/template"
)

//go:embed templates/transcript_review.tmpl
var transcriptReviewRaw string

//go:embed templates/icebreaker_analysis.tmpl
var icebreakerAnalysisRaw string

var (
	transcriptReviewTemplate   = template.Must(template.New("transcript_review").Option("missingkey=error").Parse(transcriptReviewRaw))
	icebreakerAnalysisTemplate = template.Must(template.New("icebreaker_analysis").Option("missingkey=error").Parse(icebreakerAnalysisRaw))
)

// TranscriptInput holds the fields of a transcript review request
type TranscriptInput struct {
	CompanyName string
	Attendees   string
	Date        string
	Transcript  string
}

// IcebreakerInput holds the fields of an icebreaker request
type IcebreakerInput struct {
	Username    string
	Role        string
	LinkedinBio string
	DeckURL     string
}

// Transcript renders the transcript review prompt
func Transcript(in TranscriptInput) (string, error) {
	return render(transcriptReviewTemplate, in)
}

// Icebreaker renders the icebreaker analysis prompt
func Icebreaker(in IcebreakerInput) (string, error) {
	return render(icebreakerAnalysisTemplate, in)
}

func render(t *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
