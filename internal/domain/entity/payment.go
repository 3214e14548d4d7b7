package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods.
const (
	PaymentMethodCash     = "nakit"
	PaymentMethodTransfer = "havale"
	PaymentMethodCheque   = "çek"
)

// Payment is a customer receivable: money received from a customer.
// Creating one credits (decreases) the customer balance; edit and delete
// reverse accordingly.
type Payment struct {
	ID         string
	CustomerID string
	Date       time.Time
	AmountUSD  decimal.Decimal
	Method     string
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
