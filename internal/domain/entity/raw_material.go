package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterialShipment is fabric received from a knitter (örme). Each record
// synthesizes exactly one ProductionCost row with OrmeCost populated; the two
// writes run in the same transaction.
type RawMaterialShipment struct {
	ID         string
	SupplierID string
	ProductID  string
	Kg         decimal.Decimal
	PricePerKg decimal.Decimal
	TotalCost  decimal.Decimal // USD
	Date       time.Time
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// YarnShipment is yarn received from a spinner (iplik). Each record
// synthesizes exactly one ProductionCost row with IplikCost populated.
type YarnShipment struct {
	ID         string
	SupplierID string
	YarnTypeID string
	Kg         decimal.Decimal
	PricePerKg decimal.Decimal
	TotalCost  decimal.Decimal // USD
	Date       time.Time
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// YarnType is a yarn specification (e.g. "30/1 penye").
type YarnType struct {
	ID        string
	Name      string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
