package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockSummary aggregates the lot inventory for the dashboard.
type StockSummary struct {
	TotalRemainingKg decimal.Decimal
	LotsInStock      int
	LotsPartial      int
	LotsFinished     int
}

// OutstandingCosts is what is still owed to subcontractors, grouped by the
// currency the cost was recorded in. Conversion to a single currency happens
// in the use case with the current rate.
type OutstandingCosts struct {
	USD decimal.Decimal
	TRY decimal.Decimal
}

// AnalyticsRepository provides the read-only aggregate queries behind the
// dashboard. All methods take a context: these are the heaviest scans in the
// system.
type AnalyticsRepository interface {
	GetStockSummary(ctx context.Context) (*StockSummary, error)
	GetReceivablesTotal(ctx context.Context) (decimal.Decimal, error)
	GetSalesMetrics(ctx context.Context, from, to time.Time) (kg decimal.Decimal, usd decimal.Decimal, err error)
	GetOutstandingCosts(ctx context.Context) (*OutstandingCosts, error)
}
