package writer

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/insightdelivered/ledger-converter/internal/models"
)

func sampleReport() *models.LedgerReport {
	return &models.LedgerReport{
		Transactions: []models.Transaction{
			{
				AccountID: "1-2210", AccountDesc: "Cash Account",
				TransID: "TRX0001", Src: "AB", Date: "01/07/2023", Memo: "Opening Entry",
				Debit: "500.00", Credit: "0.00", JobNo: "001",
				NetActivity: "500.00", EndingBalance: "1500.00",
			},
			{
				AccountID: "1-2210", AccountDesc: "Cash Account",
				TransID: "TRX0002", Src: "AB", Date: "05/07/2023", Memo: "Purchase",
				Debit: "0.00", Credit: "200.00", JobNo: "002",
				NetActivity: "200.00", EndingBalance: "1300.00",
			},
		},
		Summaries: []models.AccountSummary{
			{
				AccountID: "1-2210", AccountDesc: "Cash Account",
				BeginningBalance: "1000.00", TotalDebit: "500.00", TotalCredit: "200.00",
				TotalNetActivity: "300.00", TotalEndingBalance: "1300.00",
			},
		},
	}
}

func TestExcelWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := &ExcelWriter{}
	if err := w.Write(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	details, err := f.GetRows("Details")
	if err != nil {
		t.Fatalf("failed to read Details sheet: %v", err)
	}
	if len(details) != 3 {
		t.Fatalf("Details rows: got %d, want 3", len(details))
	}
	if details[0][0] != "Account ID" || details[0][10] != "Ending Balance" {
		t.Errorf("unexpected Details header row: %v", details[0])
	}
	if details[1][2] != "TRX0001" {
		t.Errorf("Details[1] ID No: got %q, want %q", details[1][2], "TRX0001")
	}
	if details[2][7] != "200.00" {
		t.Errorf("Details[2] Credit: got %q, want %q", details[2][7], "200.00")
	}

	summary, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("failed to read Summary sheet: %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("Summary rows: got %d, want 2", len(summary))
	}
	if summary[0][2] != "Beginning Balance" {
		t.Errorf("unexpected Summary header row: %v", summary[0])
	}
	if summary[1][0] != "1-2210" || summary[1][6] != "1300.00" {
		t.Errorf("unexpected Summary data row: %v", summary[1])
	}
}

func TestExcelWriter_WriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	w := &ExcelWriter{}
	if err := w.WriteToFile(path, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Details" || sheets[1] != "Summary" {
		t.Errorf("sheets: got %v, want [Details Summary]", sheets)
	}
}

func TestExcelWriter_RejectsEmptyTransactions(t *testing.T) {
	report := sampleReport()
	report.Transactions = nil

	var buf bytes.Buffer
	err := (&ExcelWriter{}).Write(&buf, report)
	if err == nil {
		t.Fatal("expected error for report with no transactions")
	}
	if !strings.Contains(err.Error(), "no transactions") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExcelWriter_RejectsEmptySummaries(t *testing.T) {
	report := sampleReport()
	report.Summaries = nil

	var buf bytes.Buffer
	err := (&ExcelWriter{}).Write(&buf, report)
	if err == nil {
		t.Fatal("expected error for report with no summaries")
	}
	if !strings.Contains(err.Error(), "no account summaries") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExcelWriter_WriteToFileBadPath(t *testing.T) {
	err := (&ExcelWriter{}).WriteToFile(filepath.Join(t.TempDir(), "missing", "ledger.xlsx"), sampleReport())
	if err == nil {
		t.Fatal("expected error writing to a missing directory")
	}
}
