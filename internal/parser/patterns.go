package parser

import (
	"regexp"
	"strings"
)

// Line shapes found in "General Ledger [Detail]" reports.
var (
	// Account header, e.g. "1-2210   Cash Account".
	accountHeaderPattern = regexp.MustCompile(`^(\d{1,3}-\d{4})\s+(.+)$`)

	// "Beginning Balance: $1000.00"
	beginningBalancePattern = regexp.MustCompile(`Beginning Balance:\s*(\S+)`)

	// Totals row closing an account block:
	// "Total: $500.00 $200.00 $300.00 $1300.00"
	// (debit, credit, net activity, ending balance)
	totalsPattern = regexp.MustCompile(`^Total:\s+(\S+)\s+(\S+)\s+(\S+)\s+(\S+)\s*$`)

	// Transaction row:
	// "TRX0001 AB 01/07/2023 Opening Entry $500.00 $0.00 001 $500.00 $1500.00"
	transactionPattern = regexp.MustCompile(
		`^(\S+)\s+([A-Z]{2})\s+(\d{1,2}/\d{1,2}/\d{4})\s+(.+?)\s+` +
			`(\$?-?[\d,]+\.\d{2}-?)\s+(\$?-?[\d,]+\.\d{2}-?)\s+(\S+)\s+` +
			`(\$?-?[\d,]+\.\d{2}-?)\s+(\$?-?[\d,]+\.\d{2}-?)\s*$`,
	)

	// Page footer, e.g. "Page 3 of 12".
	pageFooterPattern = regexp.MustCompile(`^Page\s+\d+\s+of\s+\d+$`)

	// Year-end adjustment marker printed below the final period.
	yearEndPattern = regexp.MustCompile(`(?i)year[- ]end adjustment`)
)

// defaultBannerMarkers are substrings of the document banner the report
// repeats at the top of every page. Organization name and address lines
// vary per document and can be added through configuration.
var defaultBannerMarkers = []string{
	"Created:",
	"General Ledger",
	"ABN:",
	"Email:",
}

// isColumnTitleRow reports whether the line is the column-title band
// ("ID No  Src  Date  Memo ... Ending Balance").
func isColumnTitleRow(line string) bool {
	return strings.Contains(line, "ID No") && strings.Contains(line, "Ending Balance")
}

// cleanAmount normalizes a decimal-amount field: currency marker and sign
// stripped, trailing credit/debit markers tolerated, grouping commas kept.
func cleanAmount(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "CR")
	s = strings.TrimSuffix(s, "DR")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "-")
	return strings.TrimSpace(s)
}
