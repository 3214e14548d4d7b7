package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/ledger"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

func validSupplierType(t string) bool {
	switch t {
	case entity.SupplierTypeYarn, entity.SupplierTypeKnitting, entity.SupplierTypeDyeing:
		return true
	}
	return false
}

// SupplierUseCase manages subcontractors and their price lists.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
	priceRepo    repository.SupplierPriceRepository
}

// NewSupplierUseCase builds the use case.
func NewSupplierUseCase(
	supplierRepo repository.SupplierRepository,
	priceRepo repository.SupplierPriceRepository,
) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo, priceRepo: priceRepo}
}

// Create registers a supplier. An empty SettlementCurrency resolves from the
// type; AccrualStartDate is validated up front so a malformed date fails the
// request instead of silently widening the extract window later.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	if in.Name == "" || !validSupplierType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	currency := in.SettlementCurrency
	if currency == "" {
		currency = entity.DefaultSettlementCurrency(in.Type)
	}
	if !ledger.Currency(currency).Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.AccrualStartDate != "" {
		if _, err := ledger.ParseStartDate(in.AccrualStartDate); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Type:               in.Type,
		ContactInfo:        in.ContactInfo,
		SettlementCurrency: currency,
		OpeningBalanceUSD:  in.OpeningBalanceUSD,
		OpeningBalanceTRY:  in.OpeningBalanceTRY,
		AccrualStartDate:   in.AccrualStartDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Update edits a supplier. Changing the type does not silently flip the
// settlement currency; the caller must send the new currency explicitly.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*entity.Supplier, error) {
	if id == "" || in.Name == "" || !validSupplierType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.SettlementCurrency != "" {
		if !ledger.Currency(in.SettlementCurrency).Valid() {
			return nil, domain.ErrInvalidInput
		}
		supplier.SettlementCurrency = in.SettlementCurrency
	}
	if in.AccrualStartDate != "" {
		if _, err := ledger.ParseStartDate(in.AccrualStartDate); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	supplier.Name = in.Name
	supplier.Type = in.Type
	supplier.ContactInfo = in.ContactInfo
	supplier.OpeningBalanceUSD = in.OpeningBalanceUSD
	supplier.OpeningBalanceTRY = in.OpeningBalanceTRY
	supplier.AccrualStartDate = in.AccrualStartDate
	supplier.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetByID returns a supplier or ErrNotFound.
func (uc *SupplierUseCase) GetByID(id string) (*entity.Supplier, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

// List returns suppliers, optionally filtered by type.
func (uc *SupplierUseCase) List(supplierType string, limit, offset int) ([]*entity.Supplier, error) {
	if supplierType != "" {
		if !validSupplierType(supplierType) {
			return nil, domain.ErrInvalidInput
		}
		return uc.supplierRepo.ListByType(supplierType)
	}
	return uc.supplierRepo.List(limit, offset)
}

// Delete removes a supplier.
func (uc *SupplierUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.supplierRepo.Delete(id)
}

// AddPrice appends a price-list entry. Yarn suppliers price yarn types,
// everyone else prices products; exactly one of the two ids must be set.
func (uc *SupplierUseCase) AddPrice(supplierID string, in dto.CreateSupplierPriceRequest) (*entity.SupplierPrice, error) {
	if supplierID == "" || !in.PricePerKg.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if (in.ProductID == "") == (in.YarnTypeID == "") {
		return nil, domain.ErrInvalidInput
	}
	if !ledger.Currency(in.Currency).Valid() {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	price := &entity.SupplierPrice{
		ID:         uuid.New().String(),
		SupplierID: supplierID,
		ProductID:  in.ProductID,
		YarnTypeID: in.YarnTypeID,
		PricePerKg: in.PricePerKg,
		Currency:   in.Currency,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.priceRepo.Create(price); err != nil {
		return nil, err
	}
	return price, nil
}

// ListPrices returns the price list for a supplier.
func (uc *SupplierUseCase) ListPrices(supplierID string) ([]*entity.SupplierPrice, error) {
	if supplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.priceRepo.ListBySupplier(supplierID)
}

// DeletePrice removes a price-list entry.
func (uc *SupplierUseCase) DeletePrice(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.priceRepo.Delete(id)
}
