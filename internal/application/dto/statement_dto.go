package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/domain/ledger"
)

// StatementRequest query for statement endpoints.
type StatementRequest struct {
	StartDate string `query:"startDate"` // YYYY-MM-DD, empty = all history
}

// StatementResponse is the rendered statement plus header info.
type StatementResponse struct {
	Name      string            `json:"name"`
	Currency  ledger.Currency   `json:"currency"`
	Statement *ledger.Statement `json:"statement"`
}

// DashboardSummaryResponse aggregates for the dashboard page.
type DashboardSummaryResponse struct {
	TotalRemainingKg decimal.Decimal `json:"totalRemainingKg"`
	LotsInStock      int             `json:"lotsInStock"`
	LotsPartial      int             `json:"lotsPartial"`
	LotsFinished     int             `json:"lotsFinished"`
	ReceivablesUSD   decimal.Decimal `json:"receivablesUsd"`
	PayablesUSD      decimal.Decimal `json:"payablesUsd"`
	MonthlyShippedKg decimal.Decimal `json:"monthlyShippedKg"`
	MonthlySalesUSD  decimal.Decimal `json:"monthlySalesUsd"`
	CachedAtUnix     int64           `json:"cachedAt"`
}
