package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier types (subcontractor categories).
const (
	SupplierTypeYarn     = "iplik"    // yarn, settled in USD
	SupplierTypeKnitting = "orme"     // knitting, settled in USD
	SupplierTypeDyeing   = "boyahane" // dyeing, settled in TRY
)

// Supplier represents a subcontractor (yarn spinner, knitter or dyehouse).
//
// SettlementCurrency is an explicit attribute resolved from Type at creation
// (iplik/orme -> USD, boyahane -> TRY) and can be overridden per supplier,
// which covers dyehouses that invoice in USD.
type Supplier struct {
	ID                 string
	Name               string
	Type               string
	ContactInfo        string
	SettlementCurrency string // "USD" or "TRY"
	OpeningBalanceUSD  decimal.Decimal
	OpeningBalanceTRY  decimal.Decimal
	AccrualStartDate   string // "YYYY-MM-DD"; empty = include all history
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DefaultSettlementCurrency returns the currency convention for a supplier type.
func DefaultSettlementCurrency(supplierType string) string {
	if supplierType == SupplierTypeDyeing {
		return "TRY"
	}
	return "USD"
}

// SupplierPrice is a price-list entry. For yarn suppliers YarnTypeID is set
// instead of ProductID.
type SupplierPrice struct {
	ID         string
	SupplierID string
	ProductID  string
	YarnTypeID string
	PricePerKg decimal.Decimal
	Currency   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
