package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/ledger-converter/internal/models"
)

// Reconcile cross-checks each account summary against the sum of its
// transaction rows and returns one note per discrepancy. It is a
// diagnostic only: report amounts stay untouched strings, and rows with
// unparseable amounts are reported rather than guessed at.
func Reconcile(report *models.LedgerReport) []string {
	type tally struct {
		debit      decimal.Decimal
		credit     decimal.Decimal
		unparsable bool
	}
	tallies := make(map[string]*tally)
	for _, txn := range report.Transactions {
		t := tallies[txn.AccountID]
		if t == nil {
			t = &tally{}
			tallies[txn.AccountID] = t
		}
		debit, errD := parseDecimal(txn.Debit)
		credit, errC := parseDecimal(txn.Credit)
		if errD != nil || errC != nil {
			t.unparsable = true
			continue
		}
		t.debit = t.debit.Add(debit)
		t.credit = t.credit.Add(credit)
	}

	var notes []string
	for _, s := range report.Summaries {
		t := tallies[s.AccountID]
		if t == nil {
			t = &tally{}
		}
		if t.unparsable {
			notes = append(notes, fmt.Sprintf(
				"account %s: rows with unparseable amounts, totals not checked", s.AccountID))
			continue
		}
		wantDebit, errD := parseDecimal(s.TotalDebit)
		wantCredit, errC := parseDecimal(s.TotalCredit)
		if errD != nil || errC != nil {
			notes = append(notes, fmt.Sprintf(
				"account %s: unparseable totals row", s.AccountID))
			continue
		}
		if !t.debit.Equal(wantDebit) {
			notes = append(notes, fmt.Sprintf(
				"account %s: reported debit total %s, rows sum to %s",
				s.AccountID, wantDebit, t.debit))
		}
		if !t.credit.Equal(wantCredit) {
			notes = append(notes, fmt.Sprintf(
				"account %s: reported credit total %s, rows sum to %s",
				s.AccountID, wantCredit, t.credit))
		}
	}
	return notes
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
