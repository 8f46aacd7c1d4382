package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildScenarioResume returns a resume with contact info, all four section
// words, python and sql, padded into the optimal length band.
func buildScenarioResume() string {
	header := "Experienced Python developer, email: a@b.com, phone 555-123-4567. " +
		"Skills: python, sql. Experience: data pipelines. Education: BSc. Projects: several."
	filler := strings.Repeat("delivered measurable results across product teams ", 50)
	return header + " " + strings.TrimSpace(filler)
}

func TestScoreATSScenario(t *testing.T) {
	resume := buildScenarioResume()
	jdMatchText := NormalizeForMatch("We need python, sql and docker experience")

	jdSkills := ExtractSkills(jdMatchText)
	require.Equal(t, []string{"docker", "python", "sql"}, jdSkills)

	resumeSkills := ExtractSkills(NormalizeForMatch(resume))
	missing := DiffSkills(jdSkills, resumeSkills)
	require.Equal(t, []string{"docker"}, missing)

	score, breakdown := ScoreATS(resume, missing, jdMatchText)

	// 33.3 keywords + 20 contact + 20 sections + 10 length
	assert.Equal(t, 83, score)
	require.Len(t, breakdown, 5)
	assert.Equal(t, "Keywords: 33.3/50 points", breakdown[0])
	assert.Equal(t, "Email: found (+10 pts)", breakdown[1])
	assert.Equal(t, "Phone: found (+10 pts)", breakdown[2])
	assert.Equal(t, "Sections: all essential sections found (+20 pts)", breakdown[3])
	assert.Contains(t, breakdown[4], "Length: optimal")
}

func TestScoreATSKeywordFullWhenJDHasNoSkills(t *testing.T) {
	score, breakdown := ScoreATS("short resume text", nil, NormalizeForMatch("we hire nice people"))
	require.Len(t, breakdown, 5)
	assert.Equal(t, "Keywords: 50.0/50 points", breakdown[0])
	assert.Equal(t, 50, score)
}

func TestScoreATSBounds(t *testing.T) {
	jdMatchText := NormalizeForMatch("python sql docker kubernetes aws")
	jdSkills := ExtractSkills(jdMatchText)

	// Worst case: everything missing, no contact, no sections, zero words.
	score, breakdown := ScoreATS("", jdSkills, jdMatchText)
	assert.Equal(t, 0, score)
	assert.Len(t, breakdown, 5)

	// Best case: nothing missing, full contact/sections/length.
	score, _ = ScoreATS(buildScenarioResume(), nil, jdMatchText)
	assert.Equal(t, 100, score)

	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}

func TestScoreATSKeywordMonotonicInMissingCount(t *testing.T) {
	resume := buildScenarioResume()
	jdMatchText := NormalizeForMatch("python sql docker kubernetes")

	missingSets := [][]string{
		nil,
		{"docker"},
		{"docker", "kubernetes"},
		{"docker", "kubernetes", "python"},
	}

	prev := 101
	for _, missing := range missingSets {
		score, _ := ScoreATS(resume, missing, jdMatchText)
		assert.LessOrEqual(t, score, prev, "score must not increase as missing skills grow")
		prev = score
	}
}

func TestScoreATSContactLinesAlwaysPresent(t *testing.T) {
	_, breakdown := ScoreATS("no contact information here", nil, "")
	require.Len(t, breakdown, 5)
	assert.Equal(t, "Email: not detected", breakdown[1])
	assert.Equal(t, "Phone: not detected", breakdown[2])
}

func TestScoreATSSectionReporting(t *testing.T) {
	_, breakdown := ScoreATS("experience and education only", nil, "")
	assert.Equal(t, "Sections: found 2/4, missing: skills, projects", breakdown[3])
}

func TestScoreATSLengthBand(t *testing.T) {
	word := "word "

	short, _ := ScoreATS(strings.Repeat(word, 299), nil, "")
	inBandLow, _ := ScoreATS(strings.Repeat(word, 300), nil, "")
	inBandHigh, _ := ScoreATS(strings.Repeat(word, 1200), nil, "")
	long, _ := ScoreATS(strings.Repeat(word, 1201), nil, "")

	assert.Equal(t, inBandLow, short+10)
	assert.Equal(t, inBandHigh, long+10)
}
