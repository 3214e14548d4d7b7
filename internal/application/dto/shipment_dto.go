package dto

import "github.com/shopspring/decimal"

// ShipmentLineRequest is one lot draw in a shipment request. Line totals,
// VAT and TRY display values are computed server-side.
type ShipmentLineRequest struct {
	LotID   string          `json:"lotId"`
	Kg      decimal.Decimal `json:"kg"`
	Tops    int             `json:"tops"`
	UnitUSD decimal.Decimal `json:"unitUsd"`
}

// CreateShipmentRequest body for POST /api/shipments.
type CreateShipmentRequest struct {
	CustomerID       string                `json:"customerId"`
	Date             string                `json:"date"` // YYYY-MM-DD
	Note             string                `json:"note"`
	ShowTRYInReceipt bool                  `json:"showTryInReceipt"`
	CalculateVAT     bool                  `json:"calculateVat"`
	Lines            []ShipmentLineRequest `json:"lines"`
}

// UpdateShipmentRequest body for PUT /api/shipments/:id.
type UpdateShipmentRequest = CreateShipmentRequest
