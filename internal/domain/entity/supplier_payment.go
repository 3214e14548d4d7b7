package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierPayment is money paid to a subcontractor. AmountUSD is the
// normalized value; OriginalAmount/OriginalCurrency/ExchangeRate keep what
// was actually entered so extracts can re-convert with the historical rate.
type SupplierPayment struct {
	ID               string
	SupplierID       string
	SupplierType     string
	AmountUSD        decimal.Decimal
	OriginalAmount   decimal.Decimal
	OriginalCurrency string          // "USD" or "TRY"
	ExchangeRate     decimal.Decimal // USD/TRY rate at entry time, zero if unknown
	Method           string
	Date             time.Time
	Note             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
