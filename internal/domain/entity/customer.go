package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a fabric buyer.
//
// Balance is a denormalized running total in USD (positive = customer owes
// money). It is maintained transactionally by the shipment and payment
// commands; RebuildBalance in the customer use case recomputes it from the
// transaction history when drift is suspected.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Note      string
	Balance   decimal.Decimal // USD
	CreatedAt time.Time
	UpdatedAt time.Time
}
