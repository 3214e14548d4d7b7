package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body for POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Note  string `json:"note"`
}

// UpdateCustomerRequest body for PUT /api/customers/:id.
type UpdateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Note  string `json:"note"`
}

// CreatePaymentRequest body for POST /api/payments.
type CreatePaymentRequest struct {
	CustomerID string          `json:"customerId"`
	Date       string          `json:"date"` // YYYY-MM-DD
	AmountUSD  decimal.Decimal `json:"amountUsd"`
	Method     string          `json:"method"`
	Note       string          `json:"note"`
}

// UpdatePaymentRequest body for PUT /api/payments/:id.
type UpdatePaymentRequest = CreatePaymentRequest
