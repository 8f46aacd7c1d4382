package services

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Senior Python Developer",
			want:  "senior python developer",
		},
		{
			name:  "strips urls",
			input: "see my portfolio at https://example.com/me and github",
			want:  "see my portfolio at and github",
		},
		{
			name:  "removes punctuation",
			input: "python, sql; docker!",
			want:  "python sql docker",
		},
		{
			name:  "collapses whitespace",
			input: "python\t\tsql\n\ndocker",
			want:  "python sql docker",
		},
		{
			name:  "punctuation separators leave no double space",
			input: "frontend - backend - devops",
			want:  "frontend backend devops",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeProperties(t *testing.T) {
	inputs := []string{
		"Experienced Python Developer, email: a@b.com, phone 555-123-4567.",
		"Check HTTP://EXAMPLE.COM and http://other.example for details!!!",
		"  lots\tof   whitespace \n and CAPS  ",
		"c++ / c# / .NET — multi-punctuation",
		"",
	}

	punct := regexp.MustCompile(`[^\w\s]`)
	for _, input := range inputs {
		out := Normalize(input)
		assert.Equal(t, strings.ToLower(out), out, "no uppercase in %q", out)
		assert.NotContains(t, out, "http")
		assert.False(t, punct.MatchString(out), "no punctuation in %q", out)
		assert.NotContains(t, out, "  ", "no multi-space runs in %q", out)
		assert.Equal(t, strings.TrimSpace(out), out)

		// Normalization is idempotent
		assert.Equal(t, out, Normalize(out))
	}
}

func TestNormalizeForMatchKeepsPunctuation(t *testing.T) {
	out := NormalizeForMatch("Skilled in C++ and C#. https://example.com")
	assert.Equal(t, "skilled in c++ and c#.", out)
	assert.Equal(t, out, NormalizeForMatch(out))
}
