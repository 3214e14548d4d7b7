// Package analytics serves the dashboard aggregates.
package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain/ledger"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// cacheTTL bounds how stale the dashboard may be. The queries scan whole
// tables, so every page load hitting them directly would hurt.
const cacheTTL = 30 * time.Second

// DashboardUseCase assembles the dashboard summary. The four aggregate
// queries run concurrently and the combined result is cached for cacheTTL;
// refresh requests bypass the cache.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	settingsRepo  repository.SettingsRepository

	mu       sync.Mutex
	cached   *dto.DashboardSummaryResponse
	cachedAt time.Time
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	settingsRepo repository.SettingsRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		settingsRepo:  settingsRepo,
	}
}

// Summary returns the dashboard aggregates, from cache when fresh enough.
// forceRefresh recomputes regardless of cache age.
func (uc *DashboardUseCase) Summary(ctx context.Context, forceRefresh bool) (*dto.DashboardSummaryResponse, error) {
	uc.mu.Lock()
	if !forceRefresh && uc.cached != nil && time.Since(uc.cachedAt) < cacheTTL {
		cached := uc.cached
		uc.mu.Unlock()
		return cached, nil
	}
	uc.mu.Unlock()

	summary, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.cached = summary
	uc.cachedAt = time.Now()
	uc.mu.Unlock()
	return summary, nil
}

func (uc *DashboardUseCase) compute(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var (
		wg          sync.WaitGroup
		stock       *repository.StockSummary
		receivables decimal.Decimal
		salesKg     decimal.Decimal
		salesUSD    decimal.Decimal
		costs       *repository.OutstandingCosts
		errs        [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		stock, errs[0] = uc.analyticsRepo.GetStockSummary(ctx)
	}()
	go func() {
		defer wg.Done()
		receivables, errs[1] = uc.analyticsRepo.GetReceivablesTotal(ctx)
	}()
	go func() {
		defer wg.Done()
		salesKg, salesUSD, errs[2] = uc.analyticsRepo.GetSalesMetrics(ctx, monthStart, now)
	}()
	go func() {
		defer wg.Done()
		costs, errs[3] = uc.analyticsRepo.GetOutstandingCosts(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	rate := ledger.DefaultUSDTRYRate
	if raw, err := uc.settingsRepo.Get("usd_try_rate", ""); err == nil && raw != "" {
		if r, err := decimal.NewFromString(raw); err == nil && r.GreaterThan(decimal.Zero) {
			rate = r
		}
	}
	payables := costs.USD.Add(ledger.Convert(costs.TRY, ledger.TRY, ledger.USD, rate))

	return &dto.DashboardSummaryResponse{
		TotalRemainingKg: stock.TotalRemainingKg,
		LotsInStock:      stock.LotsInStock,
		LotsPartial:      stock.LotsPartial,
		LotsFinished:     stock.LotsFinished,
		ReceivablesUSD:   receivables,
		PayablesUSD:      payables,
		MonthlyShippedKg: salesKg,
		MonthlySalesUSD:  salesUSD,
		CachedAtUnix:     time.Now().Unix(),
	}, nil
}
