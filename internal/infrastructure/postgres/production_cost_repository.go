package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

var _ repository.ProductionCostRepository = (*ProductionCostRepo)(nil)

const productionCostColumns = `id, lot_id, product_id, supplier_id, iplik_cost, orme_cost,
		boyahane_cost, total_cost, paid_amount, status, price_per_kg, currency, date,
		created_at, updated_at`

// ProductionCostRepo implements ProductionCostRepository over PostgreSQL.
type ProductionCostRepo struct {
	q Querier
}

// NewProductionCostRepository builds the adapter. Pass pool or tx (Querier).
func NewProductionCostRepository(q Querier) *ProductionCostRepo {
	return &ProductionCostRepo{q: q}
}

func scanProductionCost(row pgx.Row) (*entity.ProductionCost, error) {
	var c entity.ProductionCost
	err := row.Scan(
		&c.ID, &c.LotID, &c.ProductID, &c.SupplierID, &c.IplikCost, &c.OrmeCost,
		&c.BoyahaneCost, &c.TotalCost, &c.PaidAmount, &c.Status, &c.PricePerKg, &c.Currency,
		&c.Date, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persists a production cost row.
func (r *ProductionCostRepo) Create(cost *entity.ProductionCost) error {
	query := `
		INSERT INTO production_costs (id, lot_id, product_id, supplier_id, iplik_cost, orme_cost,
			boyahane_cost, total_cost, paid_amount, status, price_per_kg, currency, date,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		cost.ID, cost.LotID, cost.ProductID, cost.SupplierID, cost.IplikCost, cost.OrmeCost,
		cost.BoyahaneCost, cost.TotalCost, cost.PaidAmount, cost.Status, cost.PricePerKg,
		cost.Currency, cost.Date, cost.CreatedAt, cost.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production cost: %w", err)
	}
	return nil
}

// GetByID fetches a production cost by ID. Returns nil when not found.
func (r *ProductionCostRepo) GetByID(id string) (*entity.ProductionCost, error) {
	query := `SELECT ` + productionCostColumns + ` FROM production_costs WHERE id = $1`
	c, err := scanProductionCost(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production cost: %w", err)
	}
	return c, nil
}

// List returns production costs newest first with pagination.
func (r *ProductionCostRepo) List(limit, offset int) ([]*entity.ProductionCost, error) {
	query := `SELECT ` + productionCostColumns + `
		FROM production_costs ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListBySupplier returns all cost rows of a supplier, oldest first (extract order).
func (r *ProductionCostRepo) ListBySupplier(supplierID string) ([]*entity.ProductionCost, error) {
	query := `SELECT ` + productionCostColumns + `
		FROM production_costs WHERE supplier_id = $1 ORDER BY date, created_at`
	return r.list(query, supplierID)
}

// ListByLot returns the cost rows tied to a lot.
func (r *ProductionCostRepo) ListByLot(lotID string) ([]*entity.ProductionCost, error) {
	query := `SELECT ` + productionCostColumns + `
		FROM production_costs WHERE lot_id = $1 ORDER BY date, created_at`
	return r.list(query, lotID)
}

func (r *ProductionCostRepo) list(query string, args ...any) ([]*entity.ProductionCost, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list production costs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionCost
	for rows.Next() {
		c, err := scanProductionCost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production cost: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update updates a production cost row.
func (r *ProductionCostRepo) Update(cost *entity.ProductionCost) error {
	query := `
		UPDATE production_costs SET lot_id = $2, product_id = $3, supplier_id = $4, iplik_cost = $5,
			orme_cost = $6, boyahane_cost = $7, total_cost = $8, paid_amount = $9, status = $10,
			price_per_kg = $11, currency = $12, date = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cost.ID, cost.LotID, cost.ProductID, cost.SupplierID, cost.IplikCost, cost.OrmeCost,
		cost.BoyahaneCost, cost.TotalCost, cost.PaidAmount, cost.Status, cost.PricePerKg,
		cost.Currency, cost.Date, cost.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production cost: %w", err)
	}
	return nil
}

// Delete removes a production cost by ID.
func (r *ProductionCostRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM production_costs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production cost: %w", err)
	}
	return nil
}
