package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// TxRunner opens a transaction and hands tx-bound repositories to the
// command closure. Commit on nil, rollback on error or panic.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) inTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Run executes a shipping command: shipment, lot, customer and payment
// repositories all bound to one transaction.
func (r *TxRunner) Run(ctx context.Context, fn func(
	shipmentRepo repository.ShipmentRepository,
	lotRepo repository.LotRepository,
	customerRepo repository.CustomerRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(
			NewShipmentRepository(q),
			NewLotRepository(q),
			NewCustomerRepository(q),
			NewPaymentRepository(q),
		)
	})
}

// RunProcurement executes a procurement command: production cost, receipt
// and supplier payment repositories bound to one transaction.
func (r *TxRunner) RunProcurement(ctx context.Context, fn func(
	costRepo repository.ProductionCostRepository,
	rawRepo repository.RawMaterialRepository,
	yarnRepo repository.YarnShipmentRepository,
	supplierPaymentRepo repository.SupplierPaymentRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(
			NewProductionCostRepository(q),
			NewRawMaterialRepository(q),
			NewYarnShipmentRepository(q),
			NewSupplierPaymentRepository(q),
		)
	})
}
