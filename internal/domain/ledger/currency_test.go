package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kumasoglu/tekstil-api/internal/domain/ledger"
)

func TestResolveRate(t *testing.T) {
	tests := []struct {
		name    string
		stored  decimal.Decimal
		current decimal.Decimal
		want    decimal.Decimal
	}{
		{"stored wins", dec("31.2"), dec("33"), dec("31.2")},
		{"current when no stored", decimal.Zero, dec("33"), dec("33")},
		{"default when neither", decimal.Zero, decimal.Zero, ledger.DefaultUSDTRYRate},
		{"negative stored ignored", dec("-1"), dec("33"), dec("33")},
		{"zero current falls to default", decimal.Zero, decimal.Zero, ledger.DefaultUSDTRYRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.ResolveRate(tt.stored, tt.current)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestConvert(t *testing.T) {
	rate := dec("30.5")

	t.Run("same currency passes through", func(t *testing.T) {
		got := ledger.Convert(dec("123.45"), ledger.USD, ledger.USD, rate)
		assert.True(t, got.Equal(dec("123.45")))
	})

	t.Run("try to usd divides", func(t *testing.T) {
		got := ledger.Convert(dec("3050"), ledger.TRY, ledger.USD, rate)
		assert.True(t, got.Equal(dec("100")))
	})

	t.Run("usd to try multiplies", func(t *testing.T) {
		got := ledger.Convert(dec("100"), ledger.USD, ledger.TRY, rate)
		assert.True(t, got.Equal(dec("3050")))
	})

	t.Run("zero rate falls back to default instead of dividing by zero", func(t *testing.T) {
		got := ledger.Convert(dec("305"), ledger.TRY, ledger.USD, decimal.Zero)
		assert.True(t, got.Equal(dec("10")), "default rate 30.50 applies, got %s", got)
	})

	t.Run("round trip within 2dp", func(t *testing.T) {
		amounts := []string{"1", "99.99", "1234.56", "0.01"}
		for _, a := range amounts {
			usd := dec(a)
			try := ledger.Convert(usd, ledger.USD, ledger.TRY, rate)
			back := ledger.Convert(try, ledger.TRY, ledger.USD, rate)
			diff := back.Sub(usd).Abs()
			assert.True(t, diff.LessThanOrEqual(dec("0.01")),
				"%s USD round-tripped to %s", a, back)
		}
	})
}
