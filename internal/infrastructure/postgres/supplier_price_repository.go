package postgres

import (
	"context"
	"fmt"

	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

var _ repository.SupplierPriceRepository = (*SupplierPriceRepo)(nil)

// SupplierPriceRepo implements SupplierPriceRepository over PostgreSQL.
type SupplierPriceRepo struct {
	q Querier
}

// NewSupplierPriceRepository builds the adapter. Pass pool or tx (Querier).
func NewSupplierPriceRepository(q Querier) *SupplierPriceRepo {
	return &SupplierPriceRepo{q: q}
}

// Create persists a price-list entry.
func (r *SupplierPriceRepo) Create(price *entity.SupplierPrice) error {
	query := `
		INSERT INTO supplier_prices (id, supplier_id, product_id, yarn_type_id, price_per_kg,
			currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		price.ID, price.SupplierID, price.ProductID, price.YarnTypeID, price.PricePerKg,
		price.Currency, price.CreatedAt, price.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier price: %w", err)
	}
	return nil
}

// ListBySupplier returns the price list of a supplier.
func (r *SupplierPriceRepo) ListBySupplier(supplierID string) ([]*entity.SupplierPrice, error) {
	query := `
		SELECT id, supplier_id, product_id, yarn_type_id, price_per_kg, currency, created_at, updated_at
		FROM supplier_prices WHERE supplier_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier prices: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierPrice
	for rows.Next() {
		var p entity.SupplierPrice
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.ProductID, &p.YarnTypeID, &p.PricePerKg, &p.Currency, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier price: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update updates a price-list entry.
func (r *SupplierPriceRepo) Update(price *entity.SupplierPrice) error {
	query := `
		UPDATE supplier_prices SET product_id = $2, yarn_type_id = $3, price_per_kg = $4,
			currency = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		price.ID, price.ProductID, price.YarnTypeID, price.PricePerKg, price.Currency, price.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier price: %w", err)
	}
	return nil
}

// Delete removes a price-list entry by ID.
func (r *SupplierPriceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM supplier_prices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier price: %w", err)
	}
	return nil
}
