package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment represents an outbound fabric delivery to a customer. Creating a
// shipment debits the customer by TotalUSD and consumes RemainingKg from the
// lots referenced by its lines; editing or deleting reverses those effects.
type Shipment struct {
	ID               string
	CustomerID       string
	Date             time.Time
	Note             string
	Lines            []ShipmentLine
	TotalKg          decimal.Decimal
	TotalTops        int
	TotalUSD         decimal.Decimal
	ShowTRYInReceipt bool // print TRY equivalents on the receipt
	CalculateVAT     bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ShipmentLine is one lot draw inside a shipment. TRY columns are display
// values computed with the exchange rate current at creation time.
type ShipmentLine struct {
	ID              string
	ShipmentID      string
	LotID           string
	ProductID       string
	ProductName     string
	Party           string
	Kg              decimal.Decimal
	Tops            int // rolls ("top" in the trade)
	UnitUSD         decimal.Decimal
	LineTotalUSD    decimal.Decimal
	LineTotalTRY    decimal.Decimal
	VAT             decimal.Decimal
	VATTRY          decimal.Decimal
	TotalWithVAT    decimal.Decimal
	TotalWithVATTRY decimal.Decimal
}
