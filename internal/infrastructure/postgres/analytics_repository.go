package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo implements the read-only aggregate queries for the dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetStockSummary folds the lot inventory.
func (r *AnalyticsRepo) GetStockSummary(ctx context.Context) (*repository.StockSummary, error) {
	query := `
		SELECT COALESCE(SUM(remaining_kg), 0),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3)
		FROM lots`
	var s repository.StockSummary
	err := r.q.QueryRow(ctx, query,
		entity.LotStatusInStock, entity.LotStatusPartial, entity.LotStatusFinished,
	).Scan(&s.TotalRemainingKg, &s.LotsInStock, &s.LotsPartial, &s.LotsFinished)
	if err != nil {
		return nil, fmt.Errorf("stock summary: %w", err)
	}
	return &s, nil
}

// GetReceivablesTotal sums positive customer balances (what customers owe).
func (r *AnalyticsRepo) GetReceivablesTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(balance), 0) FROM customers WHERE balance > 0`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("receivables total: %w", err)
	}
	return total, nil
}

// GetSalesMetrics sums shipped kg and USD in [from, to].
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var kg, usd decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_kg), 0), COALESCE(SUM(total_usd), 0)
		 FROM shipments WHERE date >= $1 AND date <= $2`,
		from, to,
	).Scan(&kg, &usd)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sales metrics: %w", err)
	}
	return kg, usd, nil
}

// GetOutstandingCosts sums unpaid production cost remainders per currency.
func (r *AnalyticsRepo) GetOutstandingCosts(ctx context.Context) (*repository.OutstandingCosts, error) {
	query := `
		SELECT COALESCE(SUM(total_cost - paid_amount) FILTER (WHERE currency = 'USD'), 0),
			COALESCE(SUM(total_cost - paid_amount) FILTER (WHERE currency = 'TRY'), 0)
		FROM production_costs WHERE status <> $1`
	var out repository.OutstandingCosts
	err := r.q.QueryRow(ctx, query, entity.CostStatusPaid).Scan(&out.USD, &out.TRY)
	if err != nil {
		return nil, fmt.Errorf("outstanding costs: %w", err)
	}
	return &out, nil
}
