package ledger

import "github.com/shopspring/decimal"

// Currency is a settlement currency. The business works in USD and TRY only.
type Currency string

const (
	USD Currency = "USD"
	TRY Currency = "TRY"
)

// DefaultUSDTRYRate is the last-resort USD/TRY exchange rate used when a
// transaction carries no stored rate and the caller supplies no current rate.
var DefaultUSDTRYRate = decimal.RequireFromString("30.50")

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	return c == USD || c == TRY
}

// ResolveRate picks the applicable USD/TRY rate: the rate stored on the
// transaction when it was recorded, else the caller-supplied current rate,
// else DefaultUSDTRYRate. Zero or negative candidates fall through to the
// next one, which also guards the division in Convert.
func ResolveRate(storedRate, currentRate decimal.Decimal) decimal.Decimal {
	if storedRate.GreaterThan(decimal.Zero) {
		return storedRate
	}
	if currentRate.GreaterThan(decimal.Zero) {
		return currentRate
	}
	return DefaultUSDTRYRate
}

// Convert converts amount from one currency to another using the given
// USD/TRY rate, rounded to 2 decimal places. Same-currency amounts pass
// through unrounded.
func Convert(amount decimal.Decimal, from, to Currency, rate decimal.Decimal) decimal.Decimal {
	if from == to {
		return amount
	}
	if !rate.GreaterThan(decimal.Zero) {
		rate = DefaultUSDTRYRate
	}
	if from == TRY && to == USD {
		return amount.Div(rate).Round(2)
	}
	// USD -> TRY
	return amount.Mul(rate).Round(2)
}
