package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

var (
	_ repository.RawMaterialRepository  = (*RawMaterialRepo)(nil)
	_ repository.YarnShipmentRepository = (*YarnShipmentRepo)(nil)
	_ repository.YarnTypeRepository     = (*YarnTypeRepo)(nil)
)

// RawMaterialRepo implements RawMaterialRepository over PostgreSQL.
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository builds the adapter. Pass pool or tx (Querier).
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

// Create persists a knitted fabric receipt.
func (r *RawMaterialRepo) Create(s *entity.RawMaterialShipment) error {
	query := `
		INSERT INTO raw_material_shipments (id, supplier_id, product_id, kg, price_per_kg,
			total_cost, date, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.SupplierID, s.ProductID, s.Kg, s.PricePerKg, s.TotalCost, s.Date, s.Note,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert raw material shipment: %w", err)
	}
	return nil
}

// GetByID fetches a receipt by ID. Returns nil when not found.
func (r *RawMaterialRepo) GetByID(id string) (*entity.RawMaterialShipment, error) {
	query := `
		SELECT id, supplier_id, product_id, kg, price_per_kg, total_cost, date, note, created_at, updated_at
		FROM raw_material_shipments WHERE id = $1`
	var s entity.RawMaterialShipment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.SupplierID, &s.ProductID, &s.Kg, &s.PricePerKg, &s.TotalCost, &s.Date, &s.Note,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material shipment: %w", err)
	}
	return &s, nil
}

// ListBySupplier returns all receipts of a supplier, oldest first.
func (r *RawMaterialRepo) ListBySupplier(supplierID string) ([]*entity.RawMaterialShipment, error) {
	query := `
		SELECT id, supplier_id, product_id, kg, price_per_kg, total_cost, date, note, created_at, updated_at
		FROM raw_material_shipments WHERE supplier_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list raw material shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.RawMaterialShipment
	for rows.Next() {
		var s entity.RawMaterialShipment
		if err := rows.Scan(&s.ID, &s.SupplierID, &s.ProductID, &s.Kg, &s.PricePerKg, &s.TotalCost, &s.Date, &s.Note, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan raw material shipment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete removes a receipt by ID.
func (r *RawMaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM raw_material_shipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete raw material shipment: %w", err)
	}
	return nil
}

// YarnShipmentRepo implements YarnShipmentRepository over PostgreSQL.
type YarnShipmentRepo struct {
	q Querier
}

// NewYarnShipmentRepository builds the adapter. Pass pool or tx (Querier).
func NewYarnShipmentRepository(q Querier) *YarnShipmentRepo {
	return &YarnShipmentRepo{q: q}
}

// Create persists a yarn receipt.
func (r *YarnShipmentRepo) Create(s *entity.YarnShipment) error {
	query := `
		INSERT INTO yarn_shipments (id, supplier_id, yarn_type_id, kg, price_per_kg,
			total_cost, date, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.SupplierID, s.YarnTypeID, s.Kg, s.PricePerKg, s.TotalCost, s.Date, s.Note,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert yarn shipment: %w", err)
	}
	return nil
}

// GetByID fetches a yarn receipt by ID. Returns nil when not found.
func (r *YarnShipmentRepo) GetByID(id string) (*entity.YarnShipment, error) {
	query := `
		SELECT id, supplier_id, yarn_type_id, kg, price_per_kg, total_cost, date, note, created_at, updated_at
		FROM yarn_shipments WHERE id = $1`
	var s entity.YarnShipment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.SupplierID, &s.YarnTypeID, &s.Kg, &s.PricePerKg, &s.TotalCost, &s.Date, &s.Note,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get yarn shipment: %w", err)
	}
	return &s, nil
}

// ListBySupplier returns all yarn receipts of a supplier, oldest first.
func (r *YarnShipmentRepo) ListBySupplier(supplierID string) ([]*entity.YarnShipment, error) {
	query := `
		SELECT id, supplier_id, yarn_type_id, kg, price_per_kg, total_cost, date, note, created_at, updated_at
		FROM yarn_shipments WHERE supplier_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list yarn shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.YarnShipment
	for rows.Next() {
		var s entity.YarnShipment
		if err := rows.Scan(&s.ID, &s.SupplierID, &s.YarnTypeID, &s.Kg, &s.PricePerKg, &s.TotalCost, &s.Date, &s.Note, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan yarn shipment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete removes a yarn receipt by ID.
func (r *YarnShipmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM yarn_shipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete yarn shipment: %w", err)
	}
	return nil
}

// YarnTypeRepo implements YarnTypeRepository over PostgreSQL.
type YarnTypeRepo struct {
	q Querier
}

// NewYarnTypeRepository builds the adapter. Pass pool or tx (Querier).
func NewYarnTypeRepository(q Querier) *YarnTypeRepo {
	return &YarnTypeRepo{q: q}
}

// Create persists a yarn type.
func (r *YarnTypeRepo) Create(y *entity.YarnType) error {
	query := `INSERT INTO yarn_types (id, name, note, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, y.ID, y.Name, y.Note, y.CreatedAt, y.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert yarn type: %w", err)
	}
	return nil
}

// GetByID fetches a yarn type by ID. Returns nil when not found.
func (r *YarnTypeRepo) GetByID(id string) (*entity.YarnType, error) {
	query := `SELECT id, name, note, created_at, updated_at FROM yarn_types WHERE id = $1`
	var y entity.YarnType
	err := r.q.QueryRow(context.Background(), query, id).Scan(&y.ID, &y.Name, &y.Note, &y.CreatedAt, &y.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get yarn type: %w", err)
	}
	return &y, nil
}

// List returns all yarn types ordered by name.
func (r *YarnTypeRepo) List() ([]*entity.YarnType, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name, note, created_at, updated_at FROM yarn_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list yarn types: %w", err)
	}
	defer rows.Close()
	var list []*entity.YarnType
	for rows.Next() {
		var y entity.YarnType
		if err := rows.Scan(&y.ID, &y.Name, &y.Note, &y.CreatedAt, &y.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan yarn type: %w", err)
		}
		list = append(list, &y)
	}
	return list, rows.Err()
}

// Delete removes a yarn type by ID.
func (r *YarnTypeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM yarn_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete yarn type: %w", err)
	}
	return nil
}
