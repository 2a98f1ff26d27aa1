package writer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/insightdelivered/ledger-converter/internal/models"
)

const (
	detailsSheet = "Details"
	summarySheet = "Summary"
)

// Column order mirrors the report's own field order.
var (
	detailColumns = []string{
		"Account ID", "Account Description", "ID No", "Src", "Date", "Memo",
		"Debit", "Credit", "Job No", "Net Activity", "Ending Balance",
	}
	summaryColumns = []string{
		"Account ID", "Account Description", "Beginning Balance",
		"Total Debit", "Total Credit", "Total Net Activity", "Total Ending Balance",
	}
)

// ExcelWriter serializes a LedgerReport as a workbook with a "Details"
// sheet (one row per transaction) and a "Summary" sheet (one row per
// account). An empty report is a caller error: a ledger conversion that
// found nothing should not produce a degenerate workbook.
type ExcelWriter struct{}

// WriteToFile writes the workbook to the given path.
func (w *ExcelWriter) WriteToFile(path string, report *models.LedgerReport) error {
	f, err := w.build(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook %q: %w", path, err)
	}
	return nil
}

// Write streams the workbook to the given writer.
func (w *ExcelWriter) Write(out io.Writer, report *models.LedgerReport) error {
	f, err := w.build(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (w *ExcelWriter) build(report *models.LedgerReport) (*excelize.File, error) {
	if report == nil || len(report.Transactions) == 0 {
		return nil, fmt.Errorf("refusing to write workbook: no transactions")
	}
	if len(report.Summaries) == 0 {
		return nil, fmt.Errorf("refusing to write workbook: no account summaries")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", detailsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := setRow(f, detailsSheet, 1, detailColumns); err != nil {
		f.Close()
		return nil, err
	}
	for i, txn := range report.Transactions {
		row := []string{
			txn.AccountID, txn.AccountDesc, txn.TransID, txn.Src, txn.Date,
			txn.Memo, txn.Debit, txn.Credit, txn.JobNo, txn.NetActivity,
			txn.EndingBalance,
		}
		if err := setRow(f, detailsSheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := setRow(f, summarySheet, 1, summaryColumns); err != nil {
		f.Close()
		return nil, err
	}
	for i, s := range report.Summaries {
		row := []string{
			s.AccountID, s.AccountDesc, s.BeginningBalance,
			s.TotalDebit, s.TotalCredit, s.TotalNetActivity, s.TotalEndingBalance,
		}
		if err := setRow(f, summarySheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNum), &cells); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", rowNum, sheet, err)
	}
	return nil
}
