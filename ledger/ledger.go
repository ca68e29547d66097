// Package ledger holds the balance arithmetic for a customer's udhar book.
// It is pure computation over already-fetched transactions; no I/O.
package ledger

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the direction of a ledger entry.
type Kind string

const (
	Credit Kind = "credit" // udhar diya: customer owes more
	Debit  Kind = "debit"  // paisa mila: repayment received
)

// Entry is one transaction as the engine sees it.
type Entry struct {
	Kind      Kind
	Amount    decimal.Decimal // always positive; Kind carries the sign
	Note      string
	CreatedAt time.Time
}

// Signed returns the entry's contribution to the balance.
func (e Entry) Signed() decimal.Decimal {
	if e.Kind == Debit {
		return e.Amount.Neg()
	}
	return e.Amount
}

var (
	ErrAmountEmpty       = errors.New("amount is required")
	ErrAmountNotNumeric  = errors.New("amount must be a number")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
)

// ParseAmount converts user-entered amount text into an exact decimal.
// Empty, non-numeric, zero and negative input are rejected.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, ErrAmountEmpty
	}
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, ErrAmountNotNumeric
	}
	if amount.Cmp(decimal.Zero) <= 0 {
		return decimal.Zero, ErrAmountNotPositive
	}
	return amount, nil
}

// ComputeBalance folds entries into the net amount the customer owes:
// sum of credits minus sum of debits. Order does not matter.
func ComputeBalance(entries []Entry) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.Signed())
	}
	return balance
}

// RunningBalances returns, for each entry, the balance as of and including
// that entry in chronological order. The accumulation always runs oldest to
// newest in a single pass, whatever order the caller's slice is in; results
// are positionally aligned with the input. The running balance of the newest
// entry always equals ComputeBalance over the whole slice.
func RunningBalances(entries []Entry) []decimal.Decimal {
	if len(entries) == 0 {
		return nil
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return entries[order[a]].CreatedAt.Before(entries[order[b]].CreatedAt)
	})

	balances := make([]decimal.Decimal, len(entries))
	running := decimal.Zero
	for _, idx := range order {
		running = running.Add(entries[idx].Signed())
		balances[idx] = running
	}
	return balances
}
