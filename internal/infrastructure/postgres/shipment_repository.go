package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implements ShipmentRepository over PostgreSQL. Header and
// lines live in two tables; Create/Update write both, so callers should run
// them inside a transaction (TxRunner does).
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository builds the adapter. Pass pool or tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create persists the shipment header and all its lines.
func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	ctx := context.Background()
	query := `
		INSERT INTO shipments (id, customer_id, date, note, total_kg, total_tops, total_usd,
			show_try_in_receipt, calculate_vat, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		shipment.ID, shipment.CustomerID, shipment.Date, shipment.Note,
		shipment.TotalKg, shipment.TotalTops, shipment.TotalUSD,
		shipment.ShowTRYInReceipt, shipment.CalculateVAT, shipment.CreatedAt, shipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return r.insertLines(ctx, shipment)
}

func (r *ShipmentRepo) insertLines(ctx context.Context, shipment *entity.Shipment) error {
	query := `
		INSERT INTO shipment_lines (id, shipment_id, lot_id, product_id, product_name, party,
			kg, tops, unit_usd, line_total_usd, line_total_try, vat, vat_try,
			total_with_vat, total_with_vat_try)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	for _, line := range shipment.Lines {
		_, err := r.q.Exec(ctx, query,
			line.ID, shipment.ID, line.LotID, line.ProductID, line.ProductName, line.Party,
			line.Kg, line.Tops, line.UnitUSD, line.LineTotalUSD, line.LineTotalTRY,
			line.VAT, line.VATTRY, line.TotalWithVAT, line.TotalWithVATTRY,
		)
		if err != nil {
			return fmt.Errorf("insert shipment line: %w", err)
		}
	}
	return nil
}

// GetByID fetches a shipment with its lines. Returns nil when not found.
func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	ctx := context.Background()
	query := `
		SELECT id, customer_id, date, note, total_kg, total_tops, total_usd,
			show_try_in_receipt, calculate_vat, created_at, updated_at
		FROM shipments WHERE id = $1`
	var s entity.Shipment
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CustomerID, &s.Date, &s.Note, &s.TotalKg, &s.TotalTops, &s.TotalUSD,
		&s.ShowTRYInReceipt, &s.CalculateVAT, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	lines, err := r.loadLines(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Lines = lines
	return &s, nil
}

func (r *ShipmentRepo) loadLines(ctx context.Context, shipmentID string) ([]entity.ShipmentLine, error) {
	query := `
		SELECT id, shipment_id, lot_id, product_id, product_name, party, kg, tops, unit_usd,
			line_total_usd, line_total_try, vat, vat_try, total_with_vat, total_with_vat_try
		FROM shipment_lines WHERE shipment_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list shipment lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.ShipmentLine
	for rows.Next() {
		var l entity.ShipmentLine
		if err := rows.Scan(
			&l.ID, &l.ShipmentID, &l.LotID, &l.ProductID, &l.ProductName, &l.Party,
			&l.Kg, &l.Tops, &l.UnitUSD, &l.LineTotalUSD, &l.LineTotalTRY,
			&l.VAT, &l.VATTRY, &l.TotalWithVAT, &l.TotalWithVATTRY,
		); err != nil {
			return nil, fmt.Errorf("scan shipment line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// List returns shipment headers newest first (lines not loaded).
func (r *ShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	query := `
		SELECT id, customer_id, date, note, total_kg, total_tops, total_usd,
			show_try_in_receipt, calculate_vat, created_at, updated_at
		FROM shipments ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	return r.listHeaders(query, limit, offset)
}

// ListByCustomer returns all shipments of a customer with lines loaded,
// oldest first (statement order).
func (r *ShipmentRepo) ListByCustomer(customerID string) ([]*entity.Shipment, error) {
	ctx := context.Background()
	query := `
		SELECT id, customer_id, date, note, total_kg, total_tops, total_usd,
			show_try_in_receipt, calculate_vat, created_at, updated_at
		FROM shipments WHERE customer_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list shipments by customer: %w", err)
	}
	defer rows.Close()
	list, err := scanShipmentRows(rows)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		lines, err := r.loadLines(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Lines = lines
	}
	return list, nil
}

func (r *ShipmentRepo) listHeaders(query string, args ...any) ([]*entity.Shipment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	return scanShipmentRows(rows)
}

func scanShipmentRows(rows pgx.Rows) ([]*entity.Shipment, error) {
	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(
			&s.ID, &s.CustomerID, &s.Date, &s.Note, &s.TotalKg, &s.TotalTops, &s.TotalUSD,
			&s.ShowTRYInReceipt, &s.CalculateVAT, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update rewrites the header and replaces all lines.
func (r *ShipmentRepo) Update(shipment *entity.Shipment) error {
	ctx := context.Background()
	query := `
		UPDATE shipments SET customer_id = $2, date = $3, note = $4, total_kg = $5,
			total_tops = $6, total_usd = $7, show_try_in_receipt = $8, calculate_vat = $9,
			updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		shipment.ID, shipment.CustomerID, shipment.Date, shipment.Note, shipment.TotalKg,
		shipment.TotalTops, shipment.TotalUSD, shipment.ShowTRYInReceipt, shipment.CalculateVAT,
		shipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM shipment_lines WHERE shipment_id = $1`, shipment.ID); err != nil {
		return fmt.Errorf("delete shipment lines: %w", err)
	}
	return r.insertLines(ctx, shipment)
}

// Delete removes the shipment and its lines.
func (r *ShipmentRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM shipment_lines WHERE shipment_id = $1`, id); err != nil {
		return fmt.Errorf("delete shipment lines: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM shipments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	return nil
}
