package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/insightdelivered/ledger-converter/internal/config"
	"github.com/insightdelivered/ledger-converter/internal/extractor"
	"github.com/insightdelivered/ledger-converter/internal/logger"
	"github.com/insightdelivered/ledger-converter/internal/models"
	"github.com/insightdelivered/ledger-converter/internal/parser"
	"github.com/insightdelivered/ledger-converter/internal/writer"
)

func newConvertCommand() *cobra.Command {
	var outputDir string
	var configPath string
	var verify bool

	cmd := &cobra.Command{
		Use:   "convert <pdf-file-or-directory>",
		Short: "Convert ledger report PDFs into two-sheet Excel workbooks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Argument errors above print usage; runtime failures should not.
			cmd.SilenceUsage = true

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}
			return runConvert(cmd, args[0], cfg, verify)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for workbooks (default \"output\")")
	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check summary totals against transaction rows")

	return cmd
}

func runConvert(cmd *cobra.Command, inputPath string, cfg *config.Config, verify bool) error {
	log := logger.New()

	stat, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("input path not found: %s", inputPath)
	}

	var pdfFiles []string
	if stat.IsDir() {
		entries, err := os.ReadDir(inputPath)
		if err != nil {
			return fmt.Errorf("reading directory %q: %w", inputPath, err)
		}
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
				pdfFiles = append(pdfFiles, filepath.Join(inputPath, e.Name()))
			}
		}
		if len(pdfFiles) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No PDF files found in %s\n", inputPath)
			return nil
		}
	} else {
		if !strings.EqualFold(filepath.Ext(inputPath), ".pdf") {
			return fmt.Errorf("expected a .pdf file, got %q", filepath.Ext(inputPath))
		}
		pdfFiles = []string{inputPath}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %q: %w", cfg.OutputDir, err)
	}

	for _, pdfPath := range pdfFiles {
		base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
		outPath := filepath.Join(cfg.OutputDir, base+".xlsx")

		report, err := convertFile(pdfPath, cfg)
		if err != nil {
			return fmt.Errorf("processing %s: %w", pdfPath, err)
		}

		if verify {
			for _, note := range parser.Reconcile(report) {
				log.Warn().Str("file", pdfPath).Msg(note)
			}
		}

		w := &writer.ExcelWriter{}
		if err := w.WriteToFile(outPath, report); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		log.Info().
			Str("file", pdfPath).
			Str("output", outPath).
			Int("transactions", len(report.Transactions)).
			Int("accounts", len(report.Summaries)).
			Msg("converted")
		fmt.Fprintf(cmd.OutOrStdout(), "Processed %s. Results written to %s\n", filepath.Base(pdfPath), outPath)
	}

	return nil
}

func convertFile(pdfPath string, cfg *config.Config) (*models.LedgerReport, error) {
	log := logger.New()

	pages, err := extractor.ExtractText(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("PDF extraction failed: %w", err)
	}

	p := parser.New(parser.WithBannerMarkers(cfg.BannerMarkers...))
	report := p.Parse(pages)
	report.SourceFile = filepath.Base(pdfPath)

	stats := report.Stats
	if stats.SkippedLines > 0 || stats.OrphanRows > 0 || stats.PagesWithoutText > 0 {
		log.Debug().
			Str("file", pdfPath).
			Int("skippedLines", stats.SkippedLines).
			Int("orphanRows", stats.OrphanRows).
			Int("pagesWithoutText", stats.PagesWithoutText).
			Msg("some input was dropped")
	}

	return report, nil
}
