package analytics

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type countingAnalyticsRepo struct {
	calls int32
}

func (r *countingAnalyticsRepo) GetStockSummary(context.Context) (*repository.StockSummary, error) {
	atomic.AddInt32(&r.calls, 1)
	return &repository.StockSummary{
		TotalRemainingKg: dec("1250.5"),
		LotsInStock:      3,
		LotsPartial:      2,
		LotsFinished:     5,
	}, nil
}

func (r *countingAnalyticsRepo) GetReceivablesTotal(context.Context) (decimal.Decimal, error) {
	return dec("4200"), nil
}

func (r *countingAnalyticsRepo) GetSalesMetrics(_ context.Context, _, _ time.Time) (decimal.Decimal, decimal.Decimal, error) {
	return dec("300"), dec("1350"), nil
}

func (r *countingAnalyticsRepo) GetOutstandingCosts(context.Context) (*repository.OutstandingCosts, error) {
	return &repository.OutstandingCosts{USD: dec("1000"), TRY: dec("6100")}, nil
}

type stubSettings struct{ rate string }

func (s *stubSettings) Get(key, def string) (string, error) {
	if key == "usd_try_rate" && s.rate != "" {
		return s.rate, nil
	}
	return def, nil
}
func (s *stubSettings) Set(string, string) error { return nil }

func TestDashboardSummary(t *testing.T) {
	repo := &countingAnalyticsRepo{}
	uc := NewDashboardUseCase(repo, &stubSettings{rate: "30.50"})

	sum, err := uc.Summary(context.Background(), false)
	require.NoError(t, err)

	assert.True(t, sum.TotalRemainingKg.Equal(dec("1250.5")))
	assert.Equal(t, 3, sum.LotsInStock)
	assert.True(t, sum.ReceivablesUSD.Equal(dec("4200")))
	// 1000 USD + 6100 TRY / 30.50 = 1200 USD payable.
	assert.True(t, sum.PayablesUSD.Equal(dec("1200")), "payables %s", sum.PayablesUSD)
	assert.True(t, sum.MonthlySalesUSD.Equal(dec("1350")))
}

func TestDashboardSummaryCaches(t *testing.T) {
	repo := &countingAnalyticsRepo{}
	uc := NewDashboardUseCase(repo, &stubSettings{})
	ctx := context.Background()

	_, err := uc.Summary(ctx, false)
	require.NoError(t, err)
	_, err = uc.Summary(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&repo.calls), "second call served from cache")

	_, err = uc.Summary(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&repo.calls), "refresh bypasses cache")
}
