package services

import (
	"math"
	"regexp"
)

// tokenPattern keeps runs of word characters of length >= 2; single-letter
// tokens carry no signal and are dropped.
var tokenPattern = regexp.MustCompile(`\w\w+`)

func tokenize(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// Similarity computes the cosine similarity between two normalized texts in
// a TF-IDF vector space built from just these two documents, scaled to a
// percentage and rounded to two decimals. A corpus with no extractable
// tokens yields 0 rather than an error.
func Similarity(textA, textB string) float64 {
	tfA := termFrequencies(tokenize(textA))
	tfB := termFrequencies(tokenize(textB))

	vocab := make([]string, 0, len(tfA)+len(tfB))
	seen := make(map[string]bool, len(tfA)+len(tfB))
	for term := range tfA {
		vocab = append(vocab, term)
		seen[term] = true
	}
	for term := range tfB {
		if !seen[term] {
			vocab = append(vocab, term)
		}
	}
	if len(vocab) == 0 {
		return 0
	}

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, term := range vocab {
		idf := smoothIDF(documentFrequency(term, tfA, tfB))
		vecA[i] = float64(tfA[term]) * idf
		vecB[i] = float64(tfB[term]) * idf
	}

	cos := cosine(vecA, vecB)
	return math.Round(cos*100*100) / 100
}

func termFrequencies(tokens []string) map[string]int {
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}

func documentFrequency(term string, tfA, tfB map[string]int) int {
	df := 0
	if tfA[term] > 0 {
		df++
	}
	if tfB[term] > 0 {
		df++
	}
	return df
}

// smoothIDF is the smoothed inverse document frequency for a two-document
// corpus: ln((1+n)/(1+df)) + 1 with n = 2.
func smoothIDF(df int) float64 {
	return math.Log(3.0/(1.0+float64(df))) + 1.0
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
