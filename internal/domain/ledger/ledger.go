// Package ledger implements the running-balance statement engine used for
// customer statements and supplier extracts.
//
// Given an opening balance, an accrual start date and a set of time-stamped
// debit/credit transactions from heterogeneous sources, Build produces a
// chronologically ordered statement where every entry carries the running
// balance after it, plus the final outstanding balance, all normalized to a
// single target currency.
//
// The engine is pure: no I/O, no clock. Callers assemble transactions from
// the relevant collections (shipments/payments for customers, production
// costs, raw-material and yarn receipts/supplier payments for suppliers) and
// are responsible for setting the opening balance to reflect any history
// before the accrual window, because entries dated before StartDate are
// dropped entirely, not folded in.
package ledger

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction source types. Used as the secondary sort key so that same-date
// entries order deterministically: debit-like sources (goods moving) come
// before credit-like sources (money moving).
const (
	SourceOpening         = "opening"
	SourceShipment        = "shipment"
	SourceProductionCost  = "productionCost"
	SourceRawMaterial     = "rawMaterialShipment"
	SourceYarnShipment    = "yarnShipment"
	SourcePayment         = "payment"
	SourceSupplierPayment = "supplierPayment"
)

// sourceRank orders same-date entries from different sources. Unknown sources
// sort after the known ones, before payments.
func sourceRank(source string) int {
	switch source {
	case SourceOpening:
		return 0
	case SourceShipment, SourceProductionCost, SourceRawMaterial, SourceYarnShipment:
		return 1
	case SourcePayment, SourceSupplierPayment:
		return 3
	default:
		return 2
	}
}

// Transaction is one debit/credit event feeding the statement. Debit
// increases what is owed, credit decreases it. Missing (zero) amounts are
// treated as zero, and zero-amount transactions are still emitted.
// ExchangeRate is the USD/TRY rate stored when the transaction was recorded;
// zero means "not recorded".
type Transaction struct {
	Date         time.Time
	Description  string
	Source       string
	Ref          string // id of the originating record
	Debit        decimal.Decimal
	Credit       decimal.Decimal
	Currency     Currency
	ExchangeRate decimal.Decimal
}

// Entry is one statement row, amounts already in the target currency.
type Entry struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
	Ref         string          `json:"ref,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// Statement is the engine output: ordered entries with running balances and
// the reconciliation totals.
type Statement struct {
	Currency       Currency        `json:"currency"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Entries        []Entry         `json:"entries"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// BuildInput carries everything Build needs.
type BuildInput struct {
	OpeningBalance decimal.Decimal
	StartDate      time.Time // zero = include all history
	Currency       Currency
	CurrentRate    decimal.Decimal // fallback USD/TRY rate for unstored transactions
	Transactions   []Transaction
}

// ErrInvalidCurrency is returned when the target currency is not USD or TRY.
var ErrInvalidCurrency = errors.New("ledger: invalid target currency")

// Build produces the statement:
//
//  1. transactions dated before StartDate are dropped;
//  2. amounts are converted into the target currency (stored rate, else
//     CurrentRate, else the default rate);
//  3. an opening pseudo-entry is emitted when OpeningBalance != 0, dated at
//     StartDate;
//  4. entries sort by date, then source rank, then input order, a total
//     order that is deterministic for the same input;
//  5. the running balance folds opening + debit - credit over the sequence.
//
// Invariant: ClosingBalance == OpeningBalance + TotalDebit - TotalCredit.
func Build(in BuildInput) (*Statement, error) {
	if !in.Currency.Valid() {
		return nil, ErrInvalidCurrency
	}

	start := truncateDay(in.StartDate)

	type keyed struct {
		entry Entry
		rank  int
		seq   int
	}
	var rows []keyed

	for i, tx := range in.Transactions {
		if !start.IsZero() && truncateDay(tx.Date).Before(start) {
			continue
		}
		from := tx.Currency
		if !from.Valid() {
			from = in.Currency
		}
		rate := ResolveRate(tx.ExchangeRate, in.CurrentRate)
		rows = append(rows, keyed{
			entry: Entry{
				Date:        tx.Date,
				Description: tx.Description,
				Source:      tx.Source,
				Ref:         tx.Ref,
				Debit:       Convert(tx.Debit, from, in.Currency, rate),
				Credit:      Convert(tx.Credit, from, in.Currency, rate),
			},
			rank: sourceRank(tx.Source),
			seq:  i,
		})
	}

	sort.SliceStable(rows, func(a, b int) bool {
		da, db := truncateDay(rows[a].entry.Date), truncateDay(rows[b].entry.Date)
		if !da.Equal(db) {
			return da.Before(db)
		}
		if rows[a].rank != rows[b].rank {
			return rows[a].rank < rows[b].rank
		}
		return rows[a].seq < rows[b].seq
	})

	st := &Statement{
		Currency:       in.Currency,
		OpeningBalance: in.OpeningBalance,
		TotalDebit:     decimal.Zero,
		TotalCredit:    decimal.Zero,
	}

	if !in.OpeningBalance.IsZero() {
		st.Entries = append(st.Entries, Entry{
			Date:        in.StartDate,
			Description: "Devir bakiyesi",
			Source:      SourceOpening,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
			Balance:     in.OpeningBalance,
		})
	}

	balance := in.OpeningBalance
	for _, row := range rows {
		e := row.entry
		balance = balance.Add(e.Debit).Sub(e.Credit)
		e.Balance = balance
		st.TotalDebit = st.TotalDebit.Add(e.Debit)
		st.TotalCredit = st.TotalCredit.Add(e.Credit)
		st.Entries = append(st.Entries, e)
	}
	st.ClosingBalance = balance

	return st, nil
}

// ParseStartDate parses an accrual start date stored as a string. Accepts
// "2006-01-02" and RFC 3339. Callers that get an error must warn loudly and
// fall back to a zero time (no filtering), never silently guess a date.
func ParseStartDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("ledger: unparsable start date: " + s)
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
