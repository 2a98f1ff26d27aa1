package models

// Transaction is a single ledger entry row, attributed to the account
// block that was open when the row was read. Amount fields are kept as
// the decimal strings printed in the report (currency marker and sign
// stripped) — this tool structures text, it does not do arithmetic.
type Transaction struct {
	AccountID     string `json:"accountId"`
	AccountDesc   string `json:"accountDesc"`
	TransID       string `json:"transId"`
	Src           string `json:"src"`
	Date          string `json:"date"`
	Memo          string `json:"memo"`
	Debit         string `json:"debit"`
	Credit        string `json:"credit"`
	JobNo         string `json:"jobNo"`
	NetActivity   string `json:"netActivity"`
	EndingBalance string `json:"endingBalance"`
}

// AccountSummary is the closing record for one account block. Totals come
// from the report's own "Total:" row, or are synthesized as zero activity
// when the block never produced one.
type AccountSummary struct {
	AccountID          string `json:"accountId"`
	AccountDesc        string `json:"accountDesc"`
	BeginningBalance   string `json:"beginningBalance"`
	TotalDebit         string `json:"totalDebit"`
	TotalCredit        string `json:"totalCredit"`
	TotalNetActivity   string `json:"totalNetActivity"`
	TotalEndingBalance string `json:"totalEndingBalance"`
}

// ParseStats counts input the parser consumed without producing a record.
// Dropped lines are policy, not errors; the counters exist so an operator
// can see how much of the document was ignored.
type ParseStats struct {
	PagesWithoutText int `json:"pagesWithoutText"`
	BannerLines      int `json:"bannerLines"`
	SkippedLines     int `json:"skippedLines"`
	OrphanRows       int `json:"orphanRows"`
}

// LedgerReport is the complete result of parsing one ledger document.
type LedgerReport struct {
	SourceFile   string           `json:"sourceFile,omitempty"`
	Transactions []Transaction    `json:"transactions"`
	Summaries    []AccountSummary `json:"summaries"`
	Stats        ParseStats       `json:"stats"`
}
