package api

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/ledger-converter/internal/extractor"
	"github.com/insightdelivered/ledger-converter/internal/models"
	"github.com/insightdelivered/ledger-converter/internal/parser"
)

const version = "1.0.0"

// extractText is swapped out in tests.
var extractText = extractor.ExtractText

// NewApp builds the fiber application with all routes registered.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "ledger-converter",
		BodyLimit: 32 << 20,
	})
	app.Get("/api/health", HandleHealth)
	app.Post("/api/convert", HandleConvert)
	return app
}

// ConvertResponse is the JSON body of /api/convert.
type ConvertResponse struct {
	Success          bool                    `json:"success"`
	Error            string                  `json:"error,omitempty"`
	Transactions     []models.Transaction    `json:"transactions"`
	Summaries        []models.AccountSummary `json:"summaries"`
	TransactionCount int                     `json:"transactionCount"`
	AccountCount     int                     `json:"accountCount"`
	Stats            models.ParseStats       `json:"stats"`
	Reconciliation   []string                `json:"reconciliation,omitempty"`
	Version          string                  `json:"version,omitempty"`
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleConvert accepts a multipart PDF upload, parses it, and returns the
// extracted transactions and account summaries as JSON. Pass ?verify=true
// to include reconciliation notes.
func HandleConvert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return writeError(c, fiber.StatusBadRequest, "Only PDF files are supported.")
	}

	tmpFile, err := os.CreateTemp("", "ledger-*.pdf")
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to create temp file.")
	}
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	if err := c.SaveFile(fileHeader, tmpFile.Name()); err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to save uploaded file.")
	}

	pages, err := extractText(tmpFile.Name())
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("PDF extraction failed: %v", err))
	}

	report := parser.New().Parse(pages)

	resp := ConvertResponse{
		Success:          true,
		Transactions:     report.Transactions,
		Summaries:        report.Summaries,
		TransactionCount: len(report.Transactions),
		AccountCount:     len(report.Summaries),
		Stats:            report.Stats,
		Version:          version,
	}
	if c.Query("verify") == "true" {
		resp.Reconciliation = parser.Reconcile(report)
	}
	return c.JSON(resp)
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.Transaction{},
		Summaries:    []models.AccountSummary{},
	})
}
