package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Labels printed on statements, matching the app's Hinglish wording.
const (
	LabelCredit = "Udhar"
	LabelDebit  = "Mila"
)

// StatementLine is one printed row of a customer statement.
type StatementLine struct {
	Date    string          `json:"date"`
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	Balance decimal.Decimal `json:"balance"`
}

// Statement is the printable ledger for one customer.
type Statement struct {
	Title        string          `json:"title"`
	CustomerName string          `json:"customerName"`
	GeneratedOn  string          `json:"generatedOn"`
	Lines        []StatementLine `json:"lines"`
	Total        decimal.Decimal `json:"total"`
}

const statementTitle = "SmartUdhar Ledger"

// statementDate renders dates the way the app shows them (en-IN, dd/mm/yyyy).
func statementDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// KindLabel maps a transaction kind to its statement label.
func KindLabel(k Kind) string {
	if k == Debit {
		return LabelDebit
	}
	return LabelCredit
}

// BuildStatement lays out a customer's ledger for printing. Lines are always
// emitted oldest first with a forward-accumulated running balance, no matter
// how the input was sorted, so the printed balance column moves forward in
// time. The trailing total equals ComputeBalance over all entries.
func BuildStatement(customerName string, entries []Entry, generatedAt time.Time) Statement {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].CreatedAt.Before(ordered[b].CreatedAt)
	})

	st := Statement{
		Title:        statementTitle,
		CustomerName: customerName,
		GeneratedOn:  statementDate(generatedAt),
		Lines:        make([]StatementLine, 0, len(ordered)),
		Total:        decimal.Zero,
	}

	running := decimal.Zero
	for _, e := range ordered {
		running = running.Add(e.Signed())
		st.Lines = append(st.Lines, StatementLine{
			Date:    statementDate(e.CreatedAt),
			Label:   KindLabel(e.Kind),
			Amount:  e.Amount,
			Balance: running,
		})
	}
	st.Total = running
	return st
}
