package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = `id, product_id, party, color, location, rolls, avg_kg_per_roll,
		total_kg, remaining_kg, status, date, created_at, updated_at`

// LotRepo implements LotRepository over PostgreSQL.
type LotRepo struct {
	q Querier
}

// NewLotRepository builds the adapter. Pass pool or tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var l entity.Lot
	err := row.Scan(
		&l.ID, &l.ProductID, &l.Party, &l.Color, &l.Location, &l.Rolls, &l.AvgKgPerRoll,
		&l.TotalKg, &l.RemainingKg, &l.Status, &l.Date, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persists a new lot.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (id, product_id, party, color, location, rolls, avg_kg_per_roll,
			total_kg, remaining_kg, status, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ProductID, lot.Party, lot.Color, lot.Location, lot.Rolls, lot.AvgKgPerRoll,
		lot.TotalKg, lot.RemainingKg, lot.Status, lot.Date, lot.CreatedAt, lot.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID fetches a lot by ID. Returns nil when not found.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	lot, err := scanLot(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return lot, nil
}

// GetForUpdate fetches a lot and locks its row (SELECT FOR UPDATE). Use only
// inside a transaction.
func (r *LotRepo) GetForUpdate(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1 FOR UPDATE`
	lot, err := scanLot(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot for update: %w", err)
	}
	return lot, nil
}

// List returns lots matching the filter, newest first.
func (r *LotRepo) List(filter repository.LotFilter, limit, offset int) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots
		WHERE ($1 = '' OR product_id = $1)
		  AND ($2 = '' OR location = $2)
		  AND ($3 = '' OR status = $3)
		ORDER BY date DESC, party LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query,
		filter.ProductID, filter.Location, filter.Status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, lot)
	}
	return list, rows.Err()
}

// Update updates all editable lot fields.
func (r *LotRepo) Update(lot *entity.Lot) error {
	query := `
		UPDATE lots SET product_id = $2, party = $3, color = $4, location = $5, rolls = $6,
			avg_kg_per_roll = $7, total_kg = $8, remaining_kg = $9, status = $10, date = $11,
			updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ProductID, lot.Party, lot.Color, lot.Location, lot.Rolls,
		lot.AvgKgPerRoll, lot.TotalKg, lot.RemainingKg, lot.Status, lot.Date, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lot: %w", err)
	}
	return nil
}

// UpdateRemaining writes only RemainingKg and the derived Status, for the
// shipment commands that consume or return stock.
func (r *LotRepo) UpdateRemaining(lot *entity.Lot) error {
	query := `UPDATE lots SET remaining_kg = $2, status = $3, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, lot.ID, lot.RemainingKg, lot.Status)
	if err != nil {
		return fmt.Errorf("update lot remaining: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a lot by ID.
func (r *LotRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lot: %w", err)
	}
	return nil
}
