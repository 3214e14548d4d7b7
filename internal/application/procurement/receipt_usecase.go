package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/ledger"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// ReceiptUseCase records goods received from subcontractors. Every receipt
// synthesizes exactly one production cost row in the same transaction, so
// the supplier ledger never sees a receipt without its debt or vice versa.
type ReceiptUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	rawRepo      repository.RawMaterialRepository
	yarnRepo     repository.YarnShipmentRepository
	costRepo     repository.ProductionCostRepository
}

// NewReceiptUseCase builds the use case.
func NewReceiptUseCase(
	txRunner TxRunner,
	supplierRepo repository.SupplierRepository,
	rawRepo repository.RawMaterialRepository,
	yarnRepo repository.YarnShipmentRepository,
	costRepo repository.ProductionCostRepository,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		rawRepo:      rawRepo,
		yarnRepo:     yarnRepo,
		costRepo:     costRepo,
	}
}

// ListCosts returns production cost rows newest first. When supplierID or
// lotID is set the result is filtered accordingly; both set is rejected.
func (uc *ReceiptUseCase) ListCosts(supplierID, lotID string, limit, offset int) ([]*entity.ProductionCost, error) {
	switch {
	case supplierID != "" && lotID != "":
		return nil, domain.ErrInvalidInput
	case supplierID != "":
		return uc.costRepo.ListBySupplier(supplierID)
	case lotID != "":
		return uc.costRepo.ListByLot(lotID)
	}
	if limit <= 0 {
		limit = 20
	}
	return uc.costRepo.List(limit, offset)
}

func (uc *ReceiptUseCase) requireSupplier(id, wantType string) (*entity.Supplier, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.Type != wantType {
		return nil, domain.ErrInvalidInput
	}
	return supplier, nil
}

// CreateRawMaterial records knitted fabric from an örme supplier and the
// matching OrmeCost production cost row in one transaction.
func (uc *ReceiptUseCase) CreateRawMaterial(ctx context.Context, in dto.CreateRawMaterialRequest) (*entity.RawMaterialShipment, error) {
	if in.ProductID == "" || !in.Kg.GreaterThan(decimal.Zero) || !in.PricePerKg.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.requireSupplier(in.SupplierID, entity.SupplierTypeKnitting)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	shipment := &entity.RawMaterialShipment{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		ProductID:  in.ProductID,
		Kg:         in.Kg,
		PricePerKg: in.PricePerKg,
		TotalCost:  in.Kg.Mul(in.PricePerKg).Round(2),
		Date:       date,
		Note:       in.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.txRunner.RunProcurement(ctx, func(
		costRepo repository.ProductionCostRepository,
		rawRepo repository.RawMaterialRepository,
		_ repository.YarnShipmentRepository,
		_ repository.SupplierPaymentRepository,
	) error {
		if err := rawRepo.Create(shipment); err != nil {
			return err
		}
		cost := &entity.ProductionCost{
			ID:         shipment.ID, // cost row shares the receipt id, delete cascades by id
			ProductID:  in.ProductID,
			SupplierID: in.SupplierID,
			OrmeCost:   shipment.TotalCost,
			TotalCost:  shipment.TotalCost,
			PaidAmount: decimal.Zero,
			PricePerKg: in.PricePerKg,
			Currency:   supplier.SettlementCurrency,
			Date:       date,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		cost.DeriveStatus()
		return costRepo.Create(cost)
	})
	if err != nil {
		return nil, err
	}
	return shipment, nil
}

// CreateYarn records yarn from an iplik supplier and the matching IplikCost
// production cost row in one transaction.
func (uc *ReceiptUseCase) CreateYarn(ctx context.Context, in dto.CreateYarnShipmentRequest) (*entity.YarnShipment, error) {
	if in.YarnTypeID == "" || !in.Kg.GreaterThan(decimal.Zero) || !in.PricePerKg.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.requireSupplier(in.SupplierID, entity.SupplierTypeYarn)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	shipment := &entity.YarnShipment{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		YarnTypeID: in.YarnTypeID,
		Kg:         in.Kg,
		PricePerKg: in.PricePerKg,
		TotalCost:  in.Kg.Mul(in.PricePerKg).Round(2),
		Date:       date,
		Note:       in.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.txRunner.RunProcurement(ctx, func(
		costRepo repository.ProductionCostRepository,
		_ repository.RawMaterialRepository,
		yarnRepo repository.YarnShipmentRepository,
		_ repository.SupplierPaymentRepository,
	) error {
		if err := yarnRepo.Create(shipment); err != nil {
			return err
		}
		cost := &entity.ProductionCost{
			ID:         shipment.ID,
			SupplierID: in.SupplierID,
			IplikCost:  shipment.TotalCost,
			TotalCost:  shipment.TotalCost,
			PaidAmount: decimal.Zero,
			PricePerKg: in.PricePerKg,
			Currency:   supplier.SettlementCurrency,
			Date:       date,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		cost.DeriveStatus()
		return costRepo.Create(cost)
	})
	if err != nil {
		return nil, err
	}
	return shipment, nil
}

// DeleteRawMaterial removes the receipt and its synthesized cost row together.
func (uc *ReceiptUseCase) DeleteRawMaterial(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunProcurement(ctx, func(
		costRepo repository.ProductionCostRepository,
		rawRepo repository.RawMaterialRepository,
		_ repository.YarnShipmentRepository,
		_ repository.SupplierPaymentRepository,
	) error {
		shipment, err := rawRepo.GetByID(id)
		if err != nil {
			return err
		}
		if shipment == nil {
			return domain.ErrNotFound
		}
		if err := rawRepo.Delete(id); err != nil {
			return err
		}
		return costRepo.Delete(id)
	})
}

// DeleteYarn removes the receipt and its synthesized cost row together.
func (uc *ReceiptUseCase) DeleteYarn(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunProcurement(ctx, func(
		costRepo repository.ProductionCostRepository,
		_ repository.RawMaterialRepository,
		yarnRepo repository.YarnShipmentRepository,
		_ repository.SupplierPaymentRepository,
	) error {
		shipment, err := yarnRepo.GetByID(id)
		if err != nil {
			return err
		}
		if shipment == nil {
			return domain.ErrNotFound
		}
		if err := yarnRepo.Delete(id); err != nil {
			return err
		}
		return costRepo.Delete(id)
	})
}

// ListRawMaterials returns receipts for a knitting supplier.
func (uc *ReceiptUseCase) ListRawMaterials(supplierID string) ([]*entity.RawMaterialShipment, error) {
	if supplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.rawRepo.ListBySupplier(supplierID)
}

// ListYarn returns receipts for a yarn supplier.
func (uc *ReceiptUseCase) ListYarn(supplierID string) ([]*entity.YarnShipment, error) {
	if supplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.yarnRepo.ListBySupplier(supplierID)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	return time.Parse("2006-01-02", s)
}

// resolveRate picks the rate used to normalize a TRY amount to USD.
func resolveRate(entered decimal.Decimal, settingsRepo repository.SettingsRepository) decimal.Decimal {
	if entered.GreaterThan(decimal.Zero) {
		return entered
	}
	raw, err := settingsRepo.Get("usd_try_rate", "")
	if err == nil && raw != "" {
		if rate, err := decimal.NewFromString(raw); err == nil && rate.GreaterThan(decimal.Zero) {
			return rate
		}
	}
	return ledger.DefaultUSDTRYRate
}
