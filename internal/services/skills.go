package services

import (
	"regexp"
	"sort"
)

// skillVocabulary is the fixed list of recognized skill terms. Matching is
// whole-word, so "go" never fires inside "django" and "java" never fires
// inside "javascript".
var skillVocabulary = []string{
	// Languages
	"python", "java", "c++", "javascript", "typescript", "c#", "go", "ruby", "php", "swift", "kotlin", "rust",
	// Frontend
	"html", "css", "react", "angular", "vue", "redux", "tailwind", "bootstrap", "jquery",
	// Backend
	"node", "express", "django", "flask", "spring boot", "dotnet", "rails", "fastapi",
	// Database
	"sql", "mysql", "postgresql", "mongodb", "redis", "oracle", "firebase", "cassandra",
	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github", "gitlab", "terraform", "ansible", "circleci",
	// Data Science & ML
	"machine learning", "deep learning", "nlp", "computer vision", "tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "matplotlib", "seaborn",
	// Tools & Concepts
	"agile", "scrum", "jira", "tableau", "power bi", "excel", "linux", "bash", "rest api", "graphql", "system design", "microservices",
}

type skillPattern struct {
	term string
	re   *regexp.Regexp
}

var skillPatterns = buildSkillPatterns(skillVocabulary)

// buildSkillPatterns compiles one matcher per vocabulary term. Regexp \b
// boundaries fail on terms ending in "+" or "#", so boundaries are spelled
// out as "not a token character" on each side instead.
func buildSkillPatterns(vocab []string) []skillPattern {
	patterns := make([]skillPattern, 0, len(vocab))
	for _, term := range vocab {
		expr := `(?:^|[^a-z0-9+#])` + regexp.QuoteMeta(term) + `(?:[^a-z0-9+#]|$)`
		patterns = append(patterns, skillPattern{
			term: term,
			re:   regexp.MustCompile(expr),
		})
	}
	return patterns
}

// ExtractSkills scans text produced by NormalizeForMatch and returns the
// vocabulary terms present, sorted and duplicate-free.
func ExtractSkills(matchText string) []string {
	found := []string{}
	for _, p := range skillPatterns {
		if p.re.MatchString(matchText) {
			found = append(found, p.term)
		}
	}
	sort.Strings(found)
	return found
}

// IntersectSkills returns the sorted intersection of two skill sets.
func IntersectSkills(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}
	out := []string{}
	for _, s := range a {
		if set[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// DiffSkills returns the sorted elements of a that are not in b.
func DiffSkills(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}
	out := []string{}
	for _, s := range a {
		if !set[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
