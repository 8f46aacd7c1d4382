package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillsync/internal/models"
)

var (
	ErrEmptyResume         = errors.New("resume text is empty")
	ErrEmptyJobDescription = errors.New("job description is empty")
)

// Verdict thresholds for the similarity percentage.
const (
	highMatchThreshold = 50
	goodMatchThreshold = 35
)

// AnalyzerService runs the full scoring pipeline for one resume/JD pair:
// normalize, classify, similarity, skill extraction, ATS scoring, advice.
type AnalyzerService interface {
	Analyze(resumeText, jobDescription string) (*models.Report, error)
}

type analyzerService struct {
	classifier Classifier
	advice     *AdviceGenerator
}

func NewAnalyzerService(classifier Classifier, advice *AdviceGenerator) AnalyzerService {
	return &analyzerService{
		classifier: classifier,
		advice:     advice,
	}
}

func (a *analyzerService) Analyze(resumeText, jobDescription string) (*models.Report, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyResume
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyJobDescription
	}

	cleanResume := Normalize(resumeText)
	cleanJD := Normalize(jobDescription)
	resumeMatchText := NormalizeForMatch(resumeText)
	jdMatchText := NormalizeForMatch(jobDescription)

	category := a.classifier.Classify(cleanResume)
	matchPercentage := Similarity(cleanResume, cleanJD)

	resumeSkills := ExtractSkills(resumeMatchText)
	jdSkills := ExtractSkills(jdMatchText)
	matchingSkills := IntersectSkills(resumeSkills, jdSkills)
	missingSkills := DiffSkills(jdSkills, resumeSkills)

	// ATS scoring runs over the raw resume text: contact info and section
	// headers are exactly what normalization strips away.
	atsScore, atsBreakdown := ScoreATS(resumeText, missingSkills, jdMatchText)

	return &models.Report{
		ID:                   uuid.New().String(),
		SimilarityPercentage: matchPercentage,
		MatchVerdict:         verdictFor(matchPercentage),
		Category:             category,
		ATSScore:             atsScore,
		ATSBreakdown:         atsBreakdown,
		MatchingSkills:       matchingSkills,
		MissingSkills:        missingSkills,
		Advice:               a.advice.Generate(missingSkills),
		ResumeWordCount:      len(strings.Fields(resumeText)),
		AnalyzedAt:           time.Now().UTC(),
	}, nil
}

func verdictFor(matchPercentage float64) models.MatchVerdict {
	switch {
	case matchPercentage >= highMatchThreshold:
		return models.VerdictHigh
	case matchPercentage >= goodMatchThreshold:
		return models.VerdictGood
	default:
		return models.VerdictLow
	}
}
