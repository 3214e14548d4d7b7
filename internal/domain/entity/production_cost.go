package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production cost payment statuses.
const (
	CostStatusPending = "pending"
	CostStatusPartial = "partial"
	CostStatusPaid    = "paid"
)

// ProductionCost tracks what is owed to subcontractors for producing a lot.
// LotID is empty for raw-material/yarn entries not tied to a lot. Exactly one
// of the three cost columns is populated for rows synthesized from
// raw-material or yarn shipments.
type ProductionCost struct {
	ID           string
	LotID        string
	ProductID    string
	SupplierID   string
	IplikCost    decimal.Decimal // yarn
	OrmeCost     decimal.Decimal // knitting
	BoyahaneCost decimal.Decimal // dyeing
	TotalCost    decimal.Decimal
	PaidAmount   decimal.Decimal
	Status       string
	PricePerKg   decimal.Decimal
	Currency     string
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DeriveStatus recomputes Status from PaidAmount vs TotalCost.
func (c *ProductionCost) DeriveStatus() {
	switch {
	case c.PaidAmount.LessThanOrEqual(decimal.Zero):
		c.Status = CostStatusPending
	case c.PaidAmount.LessThan(c.TotalCost):
		c.Status = CostStatusPartial
	default:
		c.Status = CostStatusPaid
	}
}
