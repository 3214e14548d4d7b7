package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body for POST /api/products.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Composition string `json:"composition"`
	GramWeight  int    `json:"gramWeight"`
	Note        string `json:"note"`
}

// UpdateProductRequest body for PUT /api/products/:id.
type UpdateProductRequest = CreateProductRequest

// CreateLotRequest body for POST /api/lots. RemainingKg starts at TotalKg;
// status is derived, never accepted from the client.
type CreateLotRequest struct {
	ProductID    string          `json:"productId"`
	Party        string          `json:"party"`
	Color        string          `json:"color"`
	Location     string          `json:"location"`
	Rolls        int             `json:"rolls"`
	AvgKgPerRoll decimal.Decimal `json:"avgKgPerRoll"`
	TotalKg      decimal.Decimal `json:"totalKg"`
	Date         string          `json:"date"` // YYYY-MM-DD
}

// UpdateLotRequest body for PUT /api/lots/:id. TotalKg edits shift
// RemainingKg by the same delta so consumed kg stays consistent.
type UpdateLotRequest = CreateLotRequest

// LotListRequest query filters for GET /api/lots.
type LotListRequest struct {
	ProductID string `query:"productId"`
	Location  string `query:"location"`
	Status    string `query:"status"`
	PageRequest
}
