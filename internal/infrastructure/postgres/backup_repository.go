package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

var _ repository.BackupRepository = (*BackupRepo)(nil)

// dataTables lists every table the backup touches, in an order where
// children precede parents so deletes never trip foreign keys. Users are
// deliberately not part of the snapshot: a restore must not lock out the
// account performing it.
var dataTables = []string{
	"shipment_lines",
	"shipments",
	"payments",
	"production_costs",
	"raw_material_shipments",
	"yarn_shipments",
	"supplier_payments",
	"supplier_prices",
	"lots",
	"yarn_types",
	"suppliers",
	"products",
	"customers",
	"settings",
}

// BackupRepo implements full-dataset export and restore over PostgreSQL.
type BackupRepo struct {
	pool *pgxpool.Pool
}

// NewBackupRepository builds the adapter. It needs the pool itself, not a
// Querier, because restore opens its own transaction.
func NewBackupRepository(pool *pgxpool.Pool) *BackupRepo {
	return &BackupRepo{pool: pool}
}

// ExportAll reads every collection. The reads are not wrapped in a
// transaction; exports run against a quiet system and a serializable
// snapshot of this size is not worth the lock footprint.
func (r *BackupRepo) ExportAll(ctx context.Context) (*entity.Snapshot, error) {
	s := &entity.Snapshot{Settings: map[string]string{}}
	var err error

	customerRepo := NewCustomerRepository(r.pool)
	if s.Customers, err = customerRepo.List(1<<30, 0); err != nil {
		return nil, err
	}
	productRepo := NewProductRepository(r.pool)
	if s.Products, err = productRepo.List(1<<30, 0); err != nil {
		return nil, err
	}
	lotRepo := NewLotRepository(r.pool)
	if s.Lots, err = lotRepo.List(repository.LotFilter{}, 1<<30, 0); err != nil {
		return nil, err
	}
	costRepo := NewProductionCostRepository(r.pool)
	if s.ProductionCosts, err = costRepo.List(1<<30, 0); err != nil {
		return nil, err
	}
	supplierRepo := NewSupplierRepository(r.pool)
	if s.Suppliers, err = supplierRepo.List(1<<30, 0); err != nil {
		return nil, err
	}

	shipmentRepo := NewShipmentRepository(r.pool)
	for _, c := range s.Customers {
		shipments, err := shipmentRepo.ListByCustomer(c.ID)
		if err != nil {
			return nil, err
		}
		s.Shipments = append(s.Shipments, shipments...)
	}
	paymentRepo := NewPaymentRepository(r.pool)
	for _, c := range s.Customers {
		payments, err := paymentRepo.ListByCustomer(c.ID)
		if err != nil {
			return nil, err
		}
		s.Payments = append(s.Payments, payments...)
	}

	supplierPaymentRepo := NewSupplierPaymentRepository(r.pool)
	priceRepo := NewSupplierPriceRepository(r.pool)
	rawRepo := NewRawMaterialRepository(r.pool)
	yarnRepo := NewYarnShipmentRepository(r.pool)
	for _, sup := range s.Suppliers {
		payments, err := supplierPaymentRepo.ListBySupplier(sup.ID)
		if err != nil {
			return nil, err
		}
		s.SupplierPayments = append(s.SupplierPayments, payments...)
		prices, err := priceRepo.ListBySupplier(sup.ID)
		if err != nil {
			return nil, err
		}
		s.SupplierPrices = append(s.SupplierPrices, prices...)
		raws, err := rawRepo.ListBySupplier(sup.ID)
		if err != nil {
			return nil, err
		}
		s.RawMaterialShipments = append(s.RawMaterialShipments, raws...)
		yarns, err := yarnRepo.ListBySupplier(sup.ID)
		if err != nil {
			return nil, err
		}
		s.YarnShipments = append(s.YarnShipments, yarns...)
	}

	yarnTypeRepo := NewYarnTypeRepository(r.pool)
	if s.YarnTypes, err = yarnTypeRepo.List(); err != nil {
		return nil, err
	}

	if s.Settings, err = r.allSettings(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *BackupRepo) allSettings(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

// ImportAll wipes every collection and inserts the snapshot, all in one
// transaction. A bad snapshot rolls back to the previous data.
func (r *BackupRepo) ImportAll(ctx context.Context, snapshot *entity.Snapshot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := clearTables(ctx, tx); err != nil {
		return err
	}
	if err := insertSnapshot(tx, snapshot); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertSnapshot(tx pgx.Tx, s *entity.Snapshot) error {
	customerRepo := NewCustomerRepository(tx)
	for _, c := range s.Customers {
		if err := customerRepo.Create(c); err != nil {
			return err
		}
	}
	productRepo := NewProductRepository(tx)
	for _, p := range s.Products {
		if err := productRepo.Create(p); err != nil {
			return err
		}
	}
	supplierRepo := NewSupplierRepository(tx)
	for _, sup := range s.Suppliers {
		if err := supplierRepo.Create(sup); err != nil {
			return err
		}
	}
	yarnTypeRepo := NewYarnTypeRepository(tx)
	for _, yt := range s.YarnTypes {
		if err := yarnTypeRepo.Create(yt); err != nil {
			return err
		}
	}
	lotRepo := NewLotRepository(tx)
	for _, l := range s.Lots {
		if err := lotRepo.Create(l); err != nil {
			return err
		}
	}
	shipmentRepo := NewShipmentRepository(tx)
	for _, sh := range s.Shipments {
		if err := shipmentRepo.Create(sh); err != nil {
			return err
		}
	}
	paymentRepo := NewPaymentRepository(tx)
	for _, p := range s.Payments {
		if err := paymentRepo.Create(p); err != nil {
			return err
		}
	}
	supplierPaymentRepo := NewSupplierPaymentRepository(tx)
	for _, p := range s.SupplierPayments {
		if err := supplierPaymentRepo.Create(p); err != nil {
			return err
		}
	}
	priceRepo := NewSupplierPriceRepository(tx)
	for _, p := range s.SupplierPrices {
		if err := priceRepo.Create(p); err != nil {
			return err
		}
	}
	costRepo := NewProductionCostRepository(tx)
	for _, c := range s.ProductionCosts {
		if err := costRepo.Create(c); err != nil {
			return err
		}
	}
	rawRepo := NewRawMaterialRepository(tx)
	for _, sh := range s.RawMaterialShipments {
		if err := rawRepo.Create(sh); err != nil {
			return err
		}
	}
	yarnRepo := NewYarnShipmentRepository(tx)
	for _, sh := range s.YarnShipments {
		if err := yarnRepo.Create(sh); err != nil {
			return err
		}
	}
	settingsRepo := NewSettingsRepository(tx)
	for k, v := range s.Settings {
		if err := settingsRepo.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll wipes every collection in one transaction.
func (r *BackupRepo) ClearAll(ctx context.Context) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := clearTables(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func clearTables(ctx context.Context, q Querier) error {
	for _, table := range dataTables {
		if _, err := q.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
