package dto

import "github.com/shopspring/decimal"

// CreateSupplierRequest body for POST /api/suppliers. SettlementCurrency is
// optional; empty resolves from the supplier type (iplik/orme -> USD,
// boyahane -> TRY).
type CreateSupplierRequest struct {
	Name               string          `json:"name"`
	Type               string          `json:"type"`
	ContactInfo        string          `json:"contactInfo"`
	SettlementCurrency string          `json:"settlementCurrency"`
	OpeningBalanceUSD  decimal.Decimal `json:"openingBalanceUsd"`
	OpeningBalanceTRY  decimal.Decimal `json:"openingBalanceTry"`
	AccrualStartDate   string          `json:"accrualStartDate"` // YYYY-MM-DD
}

// UpdateSupplierRequest body for PUT /api/suppliers/:id.
type UpdateSupplierRequest = CreateSupplierRequest

// CreateSupplierPaymentRequest body for POST /api/supplier-payments.
// Amount is in OriginalCurrency; TRY amounts are normalized to USD with
// ExchangeRate (falling back to the current rate).
type CreateSupplierPaymentRequest struct {
	SupplierID       string          `json:"supplierId"`
	Amount           decimal.Decimal `json:"amount"`
	OriginalCurrency string          `json:"originalCurrency"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	Method           string          `json:"method"`
	Date             string          `json:"date"` // YYYY-MM-DD
	Note             string          `json:"note"`
}

// CreateSupplierPriceRequest body for POST /api/suppliers/:id/prices.
type CreateSupplierPriceRequest struct {
	ProductID  string          `json:"productId"`
	YarnTypeID string          `json:"yarnTypeId"`
	PricePerKg decimal.Decimal `json:"pricePerKg"`
	Currency   string          `json:"currency"`
}

// CreateRawMaterialRequest body for POST /api/raw-material-shipments.
type CreateRawMaterialRequest struct {
	SupplierID string          `json:"supplierId"`
	ProductID  string          `json:"productId"`
	Kg         decimal.Decimal `json:"kg"`
	PricePerKg decimal.Decimal `json:"pricePerKg"`
	Date       string          `json:"date"` // YYYY-MM-DD
	Note       string          `json:"note"`
}

// CreateYarnShipmentRequest body for POST /api/yarn-shipments.
type CreateYarnShipmentRequest struct {
	SupplierID string          `json:"supplierId"`
	YarnTypeID string          `json:"yarnTypeId"`
	Kg         decimal.Decimal `json:"kg"`
	PricePerKg decimal.Decimal `json:"pricePerKg"`
	Date       string          `json:"date"` // YYYY-MM-DD
	Note       string          `json:"note"`
}

// CreateYarnTypeRequest body for POST /api/yarn-types.
type CreateYarnTypeRequest struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// PayProductionCostRequest body for POST /api/production-costs/:id/payments.
type PayProductionCostRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
