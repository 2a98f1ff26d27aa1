package parser

import (
	"strings"

	"github.com/insightdelivered/ledger-converter/internal/models"
)

// LedgerParser folds the per-page line stream of a "General Ledger [Detail]"
// report into transaction rows and per-account summaries.
//
// The report has no explicit schema: account blocks start with a header line
// ("1-2210   Cash Account"), optionally carry a "Beginning Balance:" line,
// then transaction rows, and usually close with a "Total:" row. Page banners
// and footers are interleaved on every page. The parser walks the lines once,
// keeping at most one account block open at a time; a new header or a totals
// row closes the open block. A block whose totals row was lost (page break,
// extraction glitch, end of input) is closed with a synthetic zero summary,
// so every opened account yields exactly one summary.
//
// Malformed lines never fail a parse: anything that matches no known shape
// is dropped and counted in the report stats.
type LedgerParser struct {
	bannerMarkers []string

	report models.LedgerReport

	currentAccountID        string
	currentAccountDesc      string
	currentBeginningBalance string
	accountOpen             bool

	// seenHeaderLines dedupes the per-page banner across the document;
	// headerRegionClosed tracks whether the current page is past its
	// column-title band, after which banner markers are no longer honored.
	seenHeaderLines    map[string]struct{}
	headerRegionClosed bool
}

// Option configures a LedgerParser.
type Option func(*LedgerParser)

// WithBannerMarkers adds document-specific banner substrings (organization
// name, address lines) to the built-in marker set.
func WithBannerMarkers(markers ...string) Option {
	return func(p *LedgerParser) {
		p.bannerMarkers = append(p.bannerMarkers, markers...)
	}
}

// New returns a parser ready for a single Parse call. Parsers are not
// reusable: each document gets a fresh one.
func New(opts ...Option) *LedgerParser {
	p := &LedgerParser{
		bannerMarkers:   append([]string(nil), defaultBannerMarkers...),
		seenHeaderLines: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse consumes the per-page text of one report, in page order. An empty
// page string means the page had no extractable text; it contributes
// nothing. Lines are split on newlines here, not upstream.
func (p *LedgerParser) Parse(pages []string) *models.LedgerReport {
	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			p.report.Stats.PagesWithoutText++
			continue
		}
		p.headerRegionClosed = false
		for _, line := range strings.Split(page, "\n") {
			p.processLine(strings.TrimSpace(line))
		}
	}

	// Trailing account block with no totals row.
	if p.accountOpen {
		p.flushSynthetic()
	}

	if p.report.Transactions == nil {
		p.report.Transactions = []models.Transaction{}
	}
	if p.report.Summaries == nil {
		p.report.Summaries = []models.AccountSummary{}
	}
	return &p.report
}

// processLine classifies one line. Precedence matters: the first matching
// branch wins and returns.
func (p *LedgerParser) processLine(line string) {
	if line == "" {
		return
	}

	// 1. Footers carry no data and never touch account context.
	if pageFooterPattern.MatchString(line) || yearEndPattern.MatchString(line) {
		return
	}

	// 2. Repeated page banner. Only the first occurrence of each banner
	// line is captured; markers stop applying once the page is past its
	// column-title band, so a memo containing "Email:" is not swallowed.
	if !p.headerRegionClosed && p.isBannerLine(line) {
		if _, seen := p.seenHeaderLines[line]; !seen {
			p.seenHeaderLines[line] = struct{}{}
			p.report.Stats.BannerLines++
		}
		return
	}
	if isColumnTitleRow(line) {
		p.headerRegionClosed = true
		return
	}

	// 3. Account header. An already-open block means its totals row was
	// lost; close it with the synthetic policy before opening the next.
	if m := accountHeaderPattern.FindStringSubmatch(line); m != nil {
		if p.accountOpen {
			p.flushSynthetic()
		}
		p.currentAccountID = m[1]
		p.currentAccountDesc = strings.TrimSpace(m[2])
		p.currentBeginningBalance = ""
		p.accountOpen = true
		return
	}

	// 4. Beginning balance attaches to the open block.
	if m := beginningBalancePattern.FindStringSubmatch(line); m != nil {
		if p.accountOpen {
			p.currentBeginningBalance = cleanAmount(m[1])
		}
		return
	}

	// 5. Transaction row, honored only inside an account block. Checked
	// before totals so a row whose memo contains "Total:" is never
	// misread as a totals line.
	if m := transactionPattern.FindStringSubmatch(line); m != nil {
		if !p.accountOpen {
			p.report.Stats.OrphanRows++
			return
		}
		p.report.Transactions = append(p.report.Transactions, models.Transaction{
			AccountID:     p.currentAccountID,
			AccountDesc:   p.currentAccountDesc,
			TransID:       m[1],
			Src:           m[2],
			Date:          m[3],
			Memo:          strings.TrimSpace(m[4]),
			Debit:         cleanAmount(m[5]),
			Credit:        cleanAmount(m[6]),
			JobNo:         m[7],
			NetActivity:   cleanAmount(m[8]),
			EndingBalance: cleanAmount(m[9]),
		})
		return
	}

	// 6. Totals row closes the block. A malformed totals line, or one with
	// no block to close, is dropped like any other unrecognized line.
	if strings.Contains(line, "Total:") {
		if m := totalsPattern.FindStringSubmatch(line); m != nil && p.accountOpen {
			p.report.Summaries = append(p.report.Summaries, models.AccountSummary{
				AccountID:          p.currentAccountID,
				AccountDesc:        p.currentAccountDesc,
				BeginningBalance:   p.currentBeginningBalance,
				TotalDebit:         cleanAmount(m[1]),
				TotalCredit:        cleanAmount(m[2]),
				TotalNetActivity:   cleanAmount(m[3]),
				TotalEndingBalance: cleanAmount(m[4]),
			})
			p.clearAccount()
			return
		}
	}

	p.report.Stats.SkippedLines++
}

func (p *LedgerParser) isBannerLine(line string) bool {
	for _, marker := range p.bannerMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// flushSynthetic closes an account block that never produced a totals row:
// zero activity, ending balance carried over from the beginning balance.
func (p *LedgerParser) flushSynthetic() {
	p.report.Summaries = append(p.report.Summaries, models.AccountSummary{
		AccountID:          p.currentAccountID,
		AccountDesc:        p.currentAccountDesc,
		BeginningBalance:   p.currentBeginningBalance,
		TotalDebit:         "0.00",
		TotalCredit:        "0.00",
		TotalNetActivity:   "0.00",
		TotalEndingBalance: p.currentBeginningBalance,
	})
	p.clearAccount()
}

func (p *LedgerParser) clearAccount() {
	p.currentAccountID = ""
	p.currentAccountDesc = ""
	p.currentBeginningBalance = ""
	p.accountOpen = false
}
