package models

import "time"

// MatchVerdict buckets the similarity percentage into a human verdict.
type MatchVerdict string

const (
	VerdictHigh MatchVerdict = "high"
	VerdictGood MatchVerdict = "good"
	VerdictLow  MatchVerdict = "low"
)

// Report is the full result of one resume/job-description analysis.
// It is built once per request and never persisted.
type Report struct {
	ID                   string       `json:"id"`
	SimilarityPercentage float64      `json:"similarity_percentage"`
	MatchVerdict         MatchVerdict `json:"match_verdict"`
	Category             string       `json:"category"`
	ATSScore             int          `json:"ats_score"`
	ATSBreakdown         []string     `json:"ats_breakdown"`
	MatchingSkills       []string     `json:"matching_skills"`
	MissingSkills        []string     `json:"missing_skills"`
	Advice               string       `json:"advice"`
	ResumeWordCount      int          `json:"resume_word_count"`
	AnalyzedAt           time.Time    `json:"analyzed_at"`
}

type AnalyzeRequest struct {
	JobDescription string `form:"job_description" validate:"required,min=1"`
}

type AnalyzeErrorResponse struct {
	Error string `json:"error"`
}
