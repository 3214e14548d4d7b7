package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumasoglu/tekstil-api/internal/domain/ledger"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Scenario: opening $100 on 2024-01-01, debit $50 on Jan 5, credit $30 on
// Jan 10. Statement must have 3 rows with balances [100, 150, 120].
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_SimpleStatement(t *testing.T) {
	st, err := ledger.Build(ledger.BuildInput{
		OpeningBalance: dec("100"),
		StartDate:      day("2024-01-01"),
		Currency:       ledger.USD,
		Transactions: []ledger.Transaction{
			{Date: day("2024-01-05"), Description: "Sevkiyat", Source: ledger.SourceShipment, Debit: dec("50")},
			{Date: day("2024-01-10"), Description: "Tahsilat", Source: ledger.SourcePayment, Credit: dec("30")},
		},
	})
	require.NoError(t, err)
	require.Len(t, st.Entries, 3)

	assert.True(t, st.Entries[0].Balance.Equal(dec("100")), "opening row balance")
	assert.True(t, st.Entries[1].Balance.Equal(dec("150")), "after debit")
	assert.True(t, st.Entries[2].Balance.Equal(dec("120")), "after credit")
	assert.True(t, st.ClosingBalance.Equal(dec("120")))
	assert.Equal(t, ledger.SourceOpening, st.Entries[0].Source)
}

func TestBuild_PreWindowEntriesExcluded(t *testing.T) {
	st, err := ledger.Build(ledger.BuildInput{
		OpeningBalance: dec("100"),
		StartDate:      day("2024-01-01"),
		Currency:       ledger.USD,
		Transactions: []ledger.Transaction{
			// Before the accrual window: must not appear, must not shift any balance.
			{Date: day("2023-12-01"), Description: "Eski sevkiyat", Source: ledger.SourceShipment, Debit: dec("1000")},
			{Date: day("2024-01-05"), Description: "Sevkiyat", Source: ledger.SourceShipment, Debit: dec("50")},
			{Date: day("2024-01-10"), Description: "Tahsilat", Source: ledger.SourcePayment, Credit: dec("30")},
		},
	})
	require.NoError(t, err)
	require.Len(t, st.Entries, 3)
	for _, e := range st.Entries {
		assert.False(t, e.Date.Before(day("2024-01-01")), "entry %q leaked through the date filter", e.Description)
	}
	assert.True(t, st.ClosingBalance.Equal(dec("120")))
}

func TestBuild_TRYDebitConvertedWithStoredRate(t *testing.T) {
	// ₺3050 recorded at rate 30.5 must contribute exactly $100.00.
	st, err := ledger.Build(ledger.BuildInput{
		StartDate: day("2024-01-01"),
		Currency:  ledger.USD,
		Transactions: []ledger.Transaction{
			{
				Date:         day("2024-02-01"),
				Description:  "Boyahane faturası",
				Source:       ledger.SourceProductionCost,
				Debit:        dec("3050"),
				Currency:     ledger.TRY,
				ExchangeRate: dec("30.5"),
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, st.Entries, 1)
	assert.True(t, st.Entries[0].Debit.Equal(dec("100")), "got %s", st.Entries[0].Debit)
	assert.True(t, st.ClosingBalance.Equal(dec("100")))
}

func TestBuild_ReconciliationIdentity(t *testing.T) {
	// closing == opening + Σdebit − Σcredit must hold for an arbitrary mix of
	// currencies, stored rates and zero amounts.
	st, err := ledger.Build(ledger.BuildInput{
		OpeningBalance: dec("250.75"),
		StartDate:      day("2024-01-01"),
		Currency:       ledger.USD,
		CurrentRate:    dec("32"),
		Transactions: []ledger.Transaction{
			{Date: day("2024-01-03"), Source: ledger.SourceShipment, Debit: dec("1234.56")},
			{Date: day("2024-01-03"), Source: ledger.SourcePayment, Credit: dec("500")},
			{Date: day("2024-01-08"), Source: ledger.SourceProductionCost, Debit: dec("6400"), Currency: ledger.TRY},
			{Date: day("2024-01-09"), Source: ledger.SourceSupplierPayment, Credit: dec("96"), Currency: ledger.TRY, ExchangeRate: dec("32")},
			{Date: day("2024-01-15"), Source: ledger.SourceShipment, Debit: decimal.Zero},
		},
	})
	require.NoError(t, err)

	expected := st.OpeningBalance.Add(st.TotalDebit).Sub(st.TotalCredit)
	assert.True(t, st.ClosingBalance.Equal(expected),
		"closing %s != opening %s + debits %s - credits %s",
		st.ClosingBalance, st.OpeningBalance, st.TotalDebit, st.TotalCredit)

	// Each balance is the exact prefix sum over the sorted entries.
	running := st.OpeningBalance
	for _, e := range st.Entries {
		running = running.Add(e.Debit).Sub(e.Credit)
		assert.True(t, e.Balance.Equal(running), "entry %q balance", e.Description)
	}
}

func TestBuild_MonotonicDates(t *testing.T) {
	st, err := ledger.Build(ledger.BuildInput{
		StartDate: day("2024-01-01"),
		Currency:  ledger.USD,
		Transactions: []ledger.Transaction{
			{Date: day("2024-03-01"), Source: ledger.SourcePayment, Credit: dec("10")},
			{Date: day("2024-01-02"), Source: ledger.SourceShipment, Debit: dec("40")},
			{Date: day("2024-02-10"), Source: ledger.SourceShipment, Debit: dec("25")},
			{Date: day("2024-01-02"), Source: ledger.SourcePayment, Credit: dec("5")},
		},
	})
	require.NoError(t, err)
	for i := 1; i < len(st.Entries); i++ {
		assert.False(t, st.Entries[i].Date.Before(st.Entries[i-1].Date),
			"entries out of order at index %d", i)
	}
}

func TestBuild_SameDateTieBreakIsDeterministic(t *testing.T) {
	// Same date: shipments (goods) sort before payments (money) regardless of
	// input order, and within a source input order is preserved.
	in := ledger.BuildInput{
		StartDate: day("2024-01-01"),
		Currency:  ledger.USD,
		Transactions: []ledger.Transaction{
			{Date: day("2024-01-05"), Description: "tahsilat", Source: ledger.SourcePayment, Credit: dec("30")},
			{Date: day("2024-01-05"), Description: "sevk-1", Source: ledger.SourceShipment, Debit: dec("50")},
			{Date: day("2024-01-05"), Description: "sevk-2", Source: ledger.SourceShipment, Debit: dec("20")},
		},
	}
	st1, err := ledger.Build(in)
	require.NoError(t, err)
	st2, err := ledger.Build(in)
	require.NoError(t, err)

	require.Len(t, st1.Entries, 3)
	assert.Equal(t, "sevk-1", st1.Entries[0].Description)
	assert.Equal(t, "sevk-2", st1.Entries[1].Description)
	assert.Equal(t, "tahsilat", st1.Entries[2].Description)
	assert.Equal(t, st1.Entries, st2.Entries)
}

func TestBuild_ZeroOpeningSuppressedZeroAmountKept(t *testing.T) {
	st, err := ledger.Build(ledger.BuildInput{
		OpeningBalance: decimal.Zero,
		StartDate:      day("2024-01-01"),
		Currency:       ledger.USD,
		Transactions: []ledger.Transaction{
			{Date: day("2024-01-05"), Description: "numune", Source: ledger.SourceShipment, Debit: decimal.Zero},
		},
	})
	require.NoError(t, err)
	// No opening row, but the zero-amount debit is still a statement row.
	require.Len(t, st.Entries, 1)
	assert.Equal(t, "numune", st.Entries[0].Description)
	assert.True(t, st.ClosingBalance.IsZero())
}

func TestBuild_NoTransactions(t *testing.T) {
	st, err := ledger.Build(ledger.BuildInput{
		OpeningBalance: dec("42"),
		StartDate:      day("2024-01-01"),
		Currency:       ledger.TRY,
	})
	require.NoError(t, err)
	require.Len(t, st.Entries, 1) // opening row only
	assert.True(t, st.ClosingBalance.Equal(dec("42")))
}

func TestBuild_ZeroStartDateIncludesAllHistory(t *testing.T) {
	st, err := ledger.Build(ledger.BuildInput{
		Currency: ledger.USD,
		Transactions: []ledger.Transaction{
			{Date: day("2019-06-01"), Source: ledger.SourceShipment, Debit: dec("10")},
			{Date: day("2024-06-01"), Source: ledger.SourceShipment, Debit: dec("10")},
		},
	})
	require.NoError(t, err)
	assert.Len(t, st.Entries, 2)
	assert.True(t, st.ClosingBalance.Equal(dec("20")))
}

func TestBuild_InvalidTargetCurrency(t *testing.T) {
	_, err := ledger.Build(ledger.BuildInput{Currency: ledger.Currency("EUR")})
	assert.ErrorIs(t, err, ledger.ErrInvalidCurrency)
}

func TestParseStartDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"empty means no filtering", "", time.Time{}, false},
		{"plain date", "2024-03-15", day("2024-03-15"), false},
		{"rfc3339", "2024-03-15T00:00:00Z", day("2024-03-15"), false},
		{"garbage", "15/03/2024", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ledger.ParseStartDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}
