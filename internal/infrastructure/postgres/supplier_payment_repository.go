package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

var _ repository.SupplierPaymentRepository = (*SupplierPaymentRepo)(nil)

const supplierPaymentColumns = `id, supplier_id, supplier_type, amount_usd, original_amount,
		original_currency, exchange_rate, method, date, note, created_at, updated_at`

// SupplierPaymentRepo implements SupplierPaymentRepository over PostgreSQL.
type SupplierPaymentRepo struct {
	q Querier
}

// NewSupplierPaymentRepository builds the adapter. Pass pool or tx (Querier).
func NewSupplierPaymentRepository(q Querier) *SupplierPaymentRepo {
	return &SupplierPaymentRepo{q: q}
}

func scanSupplierPayment(row pgx.Row) (*entity.SupplierPayment, error) {
	var p entity.SupplierPayment
	err := row.Scan(
		&p.ID, &p.SupplierID, &p.SupplierType, &p.AmountUSD, &p.OriginalAmount,
		&p.OriginalCurrency, &p.ExchangeRate, &p.Method, &p.Date, &p.Note, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persists a supplier payment.
func (r *SupplierPaymentRepo) Create(payment *entity.SupplierPayment) error {
	query := `
		INSERT INTO supplier_payments (id, supplier_id, supplier_type, amount_usd, original_amount,
			original_currency, exchange_rate, method, date, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.SupplierID, payment.SupplierType, payment.AmountUSD, payment.OriginalAmount,
		payment.OriginalCurrency, payment.ExchangeRate, payment.Method, payment.Date, payment.Note,
		payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier payment: %w", err)
	}
	return nil
}

// GetByID fetches a supplier payment by ID. Returns nil when not found.
func (r *SupplierPaymentRepo) GetByID(id string) (*entity.SupplierPayment, error) {
	query := `SELECT ` + supplierPaymentColumns + ` FROM supplier_payments WHERE id = $1`
	p, err := scanSupplierPayment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier payment: %w", err)
	}
	return p, nil
}

// ListBySupplier returns all payments of a supplier, oldest first (extract order).
func (r *SupplierPaymentRepo) ListBySupplier(supplierID string) ([]*entity.SupplierPayment, error) {
	query := `SELECT ` + supplierPaymentColumns + `
		FROM supplier_payments WHERE supplier_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierPayment
	for rows.Next() {
		p, err := scanSupplierPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update updates a supplier payment.
func (r *SupplierPaymentRepo) Update(payment *entity.SupplierPayment) error {
	query := `
		UPDATE supplier_payments SET supplier_id = $2, supplier_type = $3, amount_usd = $4,
			original_amount = $5, original_currency = $6, exchange_rate = $7, method = $8,
			date = $9, note = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.SupplierID, payment.SupplierType, payment.AmountUSD,
		payment.OriginalAmount, payment.OriginalCurrency, payment.ExchangeRate, payment.Method,
		payment.Date, payment.Note, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier payment: %w", err)
	}
	return nil
}

// Delete removes a supplier payment by ID.
func (r *SupplierPaymentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM supplier_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier payment: %w", err)
	}
	return nil
}
