package services

import (
	"encoding/gob"
	"fmt"
	"log"
	"math"
	"os"
)

// FallbackCategory is reported when no classifier artifacts are available.
const FallbackCategory = "General"

// Classifier predicts a resume category from normalized text.
type Classifier interface {
	Classify(normalizedText string) string
}

// vectorizerArtifact is the gob-encoded TF-IDF vocabulary produced by the
// offline training job.
type vectorizerArtifact struct {
	Vocabulary map[string]int
	IDF        []float64
}

// modelArtifact is the gob-encoded linear one-vs-rest model paired with the
// vectorizer.
type modelArtifact struct {
	Classes    []string
	Weights    [][]float64
	Intercepts []float64
}

type fallbackClassifier struct{}

func (fallbackClassifier) Classify(string) string { return FallbackCategory }

type loadedClassifier struct {
	vectorizer vectorizerArtifact
	model      modelArtifact
}

// LoadClassifier returns a classifier backed by the artifact pair when both
// files are present and consistent, or the constant-label fallback
// otherwise. Missing artifacts are expected and not an error.
func LoadClassifier(vectorizerPath, modelPath string) Classifier {
	vectorizer, err := loadVectorizer(vectorizerPath)
	if err != nil {
		log.Printf("Classifier artifacts unavailable (%v), falling back to %q category", err, FallbackCategory)
		return fallbackClassifier{}
	}

	model, err := loadModel(modelPath)
	if err != nil {
		log.Printf("Classifier artifacts unavailable (%v), falling back to %q category", err, FallbackCategory)
		return fallbackClassifier{}
	}

	if err := validateArtifacts(vectorizer, model); err != nil {
		log.Printf("Classifier artifacts inconsistent (%v), falling back to %q category", err, FallbackCategory)
		return fallbackClassifier{}
	}

	log.Printf("✅ Classifier loaded: %d terms, %d categories", len(vectorizer.Vocabulary), len(model.Classes))
	return &loadedClassifier{vectorizer: vectorizer, model: model}
}

func loadVectorizer(path string) (vectorizerArtifact, error) {
	var artifact vectorizerArtifact
	f, err := os.Open(path)
	if err != nil {
		return artifact, err
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(&artifact); err != nil {
		return artifact, fmt.Errorf("failed to decode vectorizer artifact: %w", err)
	}
	return artifact, nil
}

func loadModel(path string) (modelArtifact, error) {
	var artifact modelArtifact
	f, err := os.Open(path)
	if err != nil {
		return artifact, err
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(&artifact); err != nil {
		return artifact, fmt.Errorf("failed to decode model artifact: %w", err)
	}
	return artifact, nil
}

func validateArtifacts(vectorizer vectorizerArtifact, model modelArtifact) error {
	size := len(vectorizer.Vocabulary)
	if size == 0 {
		return fmt.Errorf("empty vocabulary")
	}
	if len(vectorizer.IDF) != size {
		return fmt.Errorf("idf length %d does not match vocabulary size %d", len(vectorizer.IDF), size)
	}
	for term, idx := range vectorizer.Vocabulary {
		if idx < 0 || idx >= size {
			return fmt.Errorf("vocabulary index %d for term %q out of range [0,%d)", idx, term, size)
		}
	}
	if len(model.Classes) == 0 {
		return fmt.Errorf("no classes")
	}
	if len(model.Weights) != len(model.Classes) || len(model.Intercepts) != len(model.Classes) {
		return fmt.Errorf("model dimensions do not match class count %d", len(model.Classes))
	}
	for i, row := range model.Weights {
		if len(row) != size {
			return fmt.Errorf("weight row %d has length %d, want %d", i, len(row), size)
		}
	}
	return nil
}

// Classify vectorizes the text with the stored vocabulary and returns the
// class with the highest linear score.
func (c *loadedClassifier) Classify(normalizedText string) string {
	vec := make([]float64, len(c.vectorizer.IDF))
	for _, tok := range tokenize(normalizedText) {
		if idx, ok := c.vectorizer.Vocabulary[tok]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= c.vectorizer.IDF[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	best := 0
	bestScore := math.Inf(-1)
	for classIdx, weights := range c.model.Weights {
		score := c.model.Intercepts[classIdx]
		for i, w := range weights {
			score += w * vec[i]
		}
		if score > bestScore {
			bestScore = score
			best = classIdx
		}
	}
	return c.model.Classes[best]
}
