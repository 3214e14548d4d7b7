package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot stock statuses. Values are the Turkish labels shown on screens and
// stored as-is in the database.
const (
	LotStatusInStock  = "Stokta" // full quantity remaining
	LotStatusPartial  = "Kısmi"  // partially consumed
	LotStatusFinished = "Bitti"  // nothing left
)

// Lot represents a dyed fabric batch identified by its party code.
// RemainingKg decreases as shipment lines consume it; Status is always
// derived from RemainingKg vs TotalKg, never set independently.
type Lot struct {
	ID           string
	ProductID    string
	Party        string // lot/batch code, e.g. "P-2409"
	Color        string
	Location     string // warehouse name
	Rolls        int
	AvgKgPerRoll decimal.Decimal
	TotalKg      decimal.Decimal
	RemainingKg  decimal.Decimal
	Status       string
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DeriveStatus recomputes Status from RemainingKg. Callers must invoke it
// after every mutation of RemainingKg; a direct data edit that skips it can
// leave Status stale.
func (l *Lot) DeriveStatus() {
	switch {
	case l.RemainingKg.LessThanOrEqual(decimal.Zero):
		l.Status = LotStatusFinished
	case l.RemainingKg.LessThan(l.TotalKg):
		l.Status = LotStatusPartial
	default:
		l.Status = LotStatusInStock
	}
}
