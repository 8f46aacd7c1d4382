// Command analyze runs one resume/job-description analysis from the command
// line and prints the report, without starting the HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"skillsync/internal/config"
	"skillsync/internal/services"
)

var (
	resumePath string
	jdText     string
	jdPath     string
	asJSON     bool
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume PDF against a job description",
	Long:  "Extracts text from a resume PDF, scores it against a job description, and prints the similarity, ATS score, skill gaps, and interview prep advice.",
	RunE:  runAnalyze,
}

func init() {
	rootCmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to the resume PDF (required)")
	rootCmd.Flags().StringVarP(&jdText, "jd", "j", "", "Job description text")
	rootCmd.Flags().StringVarP(&jdPath, "jd-file", "f", "", "Path to a file containing the job description")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for advice sampling (0 = time-based)")

	if err := rootCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if jdText == "" && jdPath == "" {
		return fmt.Errorf("either --jd or --jd-file is required")
	}
	if jdText == "" {
		content, err := os.ReadFile(jdPath)
		if err != nil {
			return fmt.Errorf("failed to read job description file %s: %w", jdPath, err)
		}
		jdText = string(content)
	}

	cfg := config.Load()

	resumeData, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", resumePath, err)
	}

	pdfParser := services.NewPDFParserService()
	resumeText, err := pdfParser.ExtractTextFromBytes(resumeData)
	if err != nil {
		return fmt.Errorf("failed to extract text from resume: %w", err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	classifier := services.LoadClassifier(cfg.Classifier.VectorizerPath, cfg.Classifier.ModelPath)
	adviceGenerator := services.NewAdviceGenerator(rand.New(rand.NewSource(seed)))
	analyzer := services.NewAnalyzerService(classifier, adviceGenerator)

	report, err := analyzer.Analyze(resumeText, jdText)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if asJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("JD Match:       %.2f%% (%s)\n", report.SimilarityPercentage, report.MatchVerdict)
	fmt.Printf("ATS Score:      %d/100\n", report.ATSScore)
	fmt.Printf("Category:       %s\n", report.Category)
	fmt.Printf("Matching:       %s\n", joinOrNone(report.MatchingSkills))
	fmt.Printf("Missing:        %s\n", joinOrNone(report.MissingSkills))
	fmt.Println("\nATS Breakdown:")
	for _, line := range report.ATSBreakdown {
		fmt.Printf("  - %s\n", line)
	}
	fmt.Println()
	fmt.Println(report.Advice)
	return nil
}

func joinOrNone(skills []string) string {
	if len(skills) == 0 {
		return "(none)"
	}
	return strings.Join(skills, ", ")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
