package services

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGob(t *testing.T, path string, value any) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gob.NewEncoder(f).Encode(value))
}

func writeTestArtifacts(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vectorizerPath := filepath.Join(dir, "tfidf_vectorizer.gob")
	modelPath := filepath.Join(dir, "category_classifier.gob")

	writeGob(t, vectorizerPath, vectorizerArtifact{
		Vocabulary: map[string]int{"python": 0, "pandas": 1, "react": 2, "css": 3},
		IDF:        []float64{1, 1.2, 1, 1.2},
	})
	writeGob(t, modelPath, modelArtifact{
		Classes: []string{"Data Science", "Web Development"},
		Weights: [][]float64{
			{1, 1, 0, 0},
			{0, 0, 1, 1},
		},
		Intercepts: []float64{0, 0},
	})

	return vectorizerPath, modelPath
}

func TestLoadClassifierFallsBackWhenArtifactsMissing(t *testing.T) {
	classifier := LoadClassifier("/nonexistent/vectorizer.gob", "/nonexistent/model.gob")
	assert.Equal(t, FallbackCategory, classifier.Classify("python pandas machine learning"))
}

func TestLoadClassifierFallsBackOnInconsistentArtifacts(t *testing.T) {
	dir := t.TempDir()
	vectorizerPath := filepath.Join(dir, "vec.gob")
	modelPath := filepath.Join(dir, "model.gob")

	writeGob(t, vectorizerPath, vectorizerArtifact{
		Vocabulary: map[string]int{"python": 0},
		IDF:        []float64{1},
	})
	// Weight row length does not match the vocabulary size.
	writeGob(t, modelPath, modelArtifact{
		Classes:    []string{"Data Science"},
		Weights:    [][]float64{{1, 2, 3}},
		Intercepts: []float64{0},
	})

	classifier := LoadClassifier(vectorizerPath, modelPath)
	assert.Equal(t, FallbackCategory, classifier.Classify("python"))
}

func TestLoadClassifierFallsBackOnOutOfRangeVocabularyIndex(t *testing.T) {
	dir := t.TempDir()
	vectorizerPath := filepath.Join(dir, "vec.gob")
	modelPath := filepath.Join(dir, "model.gob")

	// The vocabulary index points past the IDF vector, so classifying any
	// text containing the term would index out of range.
	writeGob(t, vectorizerPath, vectorizerArtifact{
		Vocabulary: map[string]int{"python": 5},
		IDF:        []float64{1},
	})
	writeGob(t, modelPath, modelArtifact{
		Classes:    []string{"Data Science"},
		Weights:    [][]float64{{1}},
		Intercepts: []float64{0},
	})

	classifier := LoadClassifier(vectorizerPath, modelPath)
	assert.NotPanics(t, func() {
		assert.Equal(t, FallbackCategory, classifier.Classify("python developer"))
	})
}

func TestLoadedClassifierPredicts(t *testing.T) {
	vectorizerPath, modelPath := writeTestArtifacts(t)
	classifier := LoadClassifier(vectorizerPath, modelPath)

	assert.Equal(t, "Data Science", classifier.Classify("python pandas data pipelines"))
	assert.Equal(t, "Web Development", classifier.Classify("react css frontend apps"))
}

func TestLoadedClassifierUnknownTokens(t *testing.T) {
	vectorizerPath, modelPath := writeTestArtifacts(t)
	classifier := LoadClassifier(vectorizerPath, modelPath)

	// Text with no vocabulary hits still returns some class label.
	got := classifier.Classify("completely out of vocabulary text")
	assert.Contains(t, []string{"Data Science", "Web Development"}, got)
}
