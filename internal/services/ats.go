package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.]?)?\(?\d{3}\)?[-.]?\d{3}[-.]?\d{4}`)
)

var requiredSections = []string{"experience", "education", "skills", "projects"}

const (
	minResumeWords = 300
	maxResumeWords = 1200
)

// ScoreATS simulates how an applicant tracking system would parse the
// resume. Four weighted components: keyword coverage (50), contact info
// (20), section headers (20), and length (10). The breakdown lines come
// back in that fixed order, one per sub-check.
func ScoreATS(rawResumeText string, missingSkills []string, jdMatchText string) (int, []string) {
	score := 0.0
	breakdown := make([]string, 0, 5)

	// 1. Keyword matching (50 points). A JD with no recognized skills
	// cannot penalize the resume, so it awards the full 50.
	keywordScore := 50.0
	if totalJDKeywords := len(ExtractSkills(jdMatchText)); totalJDKeywords > 0 {
		matchRatio := float64(totalJDKeywords-len(missingSkills)) / float64(totalJDKeywords)
		keywordScore = math.Round(matchRatio*50*10) / 10
	}
	score += keywordScore
	breakdown = append(breakdown, fmt.Sprintf("Keywords: %.1f/50 points", keywordScore))

	// 2. Contact info (20 points), email and phone checked independently.
	if emailPattern.MatchString(rawResumeText) {
		score += 10
		breakdown = append(breakdown, "Email: found (+10 pts)")
	} else {
		breakdown = append(breakdown, "Email: not detected")
	}
	if phonePattern.MatchString(rawResumeText) {
		score += 10
		breakdown = append(breakdown, "Phone: found (+10 pts)")
	} else {
		breakdown = append(breakdown, "Phone: not detected")
	}

	// 3. Section headers (20 points, 5 each). Substring match over the
	// lowercased raw text, same as real ATS parsers that only look for
	// the section word anywhere on the page.
	lowerText := strings.ToLower(rawResumeText)
	missingSections := []string{}
	sectionsFound := 0
	for _, sec := range requiredSections {
		if strings.Contains(lowerText, sec) {
			sectionsFound++
			score += 5
		} else {
			missingSections = append(missingSections, sec)
		}
	}
	if sectionsFound == len(requiredSections) {
		breakdown = append(breakdown, "Sections: all essential sections found (+20 pts)")
	} else {
		breakdown = append(breakdown, fmt.Sprintf("Sections: found %d/4, missing: %s",
			sectionsFound, strings.Join(missingSections, ", ")))
	}

	// 4. Length (10 points).
	wordCount := len(strings.Fields(rawResumeText))
	if wordCount >= minResumeWords && wordCount <= maxResumeWords {
		score += 10
		breakdown = append(breakdown, fmt.Sprintf("Length: optimal (%d words) (+10 pts)", wordCount))
	} else {
		breakdown = append(breakdown, fmt.Sprintf("Length: %d words (aim for %d-%d)",
			wordCount, minResumeWords, maxResumeWords))
	}

	return int(math.Round(score)), breakdown
}
