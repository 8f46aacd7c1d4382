package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillsync/internal/models"
	"skillsync/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	pdfParser   services.PDFParserService
	storage     services.StorageService
	validate    *validator.Validate
	maxFileSize int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	pdfParser services.PDFParserService,
	storage services.StorageService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		pdfParser:   pdfParser,
		storage:     storage,
		validate:    validator.New(),
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /api/v1/analyze: a multipart form with a
// "resume" PDF and a "job_description" text field. The whole pipeline runs
// synchronously and the report is returned in the response; nothing is kept
// afterwards.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume PDF file is required",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	req := models.AnalyzeRequest{
		JobDescription: c.FormValue("job_description"),
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	filename, filePath, err := h.storage.SaveFile(resumeFile)
	if err != nil {
		if errors.Is(err, services.ErrInvalidExtension) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "resume must be a PDF file",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}
	defer func() {
		if err := h.storage.DeleteFile(filename); err != nil {
			log.Printf("⚠️  Failed to clean up upload %s: %v\n", filename, err)
		}
	}()

	resumeText, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		// A bad PDF is its own outcome; its error text never flows into
		// the scoring pipeline as resume content.
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract text from resume: %v", err),
		})
	}

	report, err := h.analyzer.Analyze(resumeText, req.JobDescription)
	if err != nil {
		if errors.Is(err, services.ErrEmptyResume) || errors.Is(err, services.ErrEmptyJobDescription) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("analysis failed: %v", err),
		})
	}

	return c.JSON(report)
}
