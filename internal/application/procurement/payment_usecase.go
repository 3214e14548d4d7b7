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
	"github.com/kumasoglu/tekstil-api/pkg/logger"
)

// SupplierPaymentUseCase records money paid to subcontractors and payments
// against individual production cost rows.
type SupplierPaymentUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	paymentRepo  repository.SupplierPaymentRepository
	costRepo     repository.ProductionCostRepository
	settingsRepo repository.SettingsRepository
	log          *logger.Logger
}

// NewSupplierPaymentUseCase builds the use case.
func NewSupplierPaymentUseCase(
	txRunner TxRunner,
	supplierRepo repository.SupplierRepository,
	paymentRepo repository.SupplierPaymentRepository,
	costRepo repository.ProductionCostRepository,
	settingsRepo repository.SettingsRepository,
	log *logger.Logger,
) *SupplierPaymentUseCase {
	return &SupplierPaymentUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		paymentRepo:  paymentRepo,
		costRepo:     costRepo,
		settingsRepo: settingsRepo,
		log:          log,
	}
}

// Create records a payment to a supplier. TRY amounts are normalized to USD
// with the entered rate, or the current rate when none was entered; the
// original amount, currency and rate are kept so extracts can re-convert.
func (uc *SupplierPaymentUseCase) Create(in dto.CreateSupplierPaymentRequest) (*entity.SupplierPayment, error) {
	if in.SupplierID == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	currency := ledger.Currency(in.OriginalCurrency)
	if !currency.Valid() {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	rate := decimal.Zero
	amountUSD := in.Amount
	if currency == ledger.TRY {
		rate = resolveRate(in.ExchangeRate, uc.settingsRepo)
		amountUSD = ledger.Convert(in.Amount, ledger.TRY, ledger.USD, rate)
	}

	now := time.Now()
	payment := &entity.SupplierPayment{
		ID:               uuid.New().String(),
		SupplierID:       in.SupplierID,
		SupplierType:     supplier.Type,
		AmountUSD:        amountUSD,
		OriginalAmount:   in.Amount,
		OriginalCurrency: string(currency),
		ExchangeRate:     rate,
		Method:           in.Method,
		Date:             date,
		Note:             in.Note,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ListBySupplier returns all payments made to one supplier.
func (uc *SupplierPaymentUseCase) ListBySupplier(supplierID string) ([]*entity.SupplierPayment, error) {
	if supplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.paymentRepo.ListBySupplier(supplierID)
}

// Delete removes a supplier payment.
func (uc *SupplierPaymentUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}
	return uc.paymentRepo.Delete(id)
}

// PayCost applies a payment against one production cost row. PaidAmount may
// exceed TotalCost (overpayment stays visible); status rederives to
// pending/partial/paid.
func (uc *SupplierPaymentUseCase) PayCost(ctx context.Context, costID string, amount decimal.Decimal) (*entity.ProductionCost, error) {
	if costID == "" || !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.ProductionCost
	err := uc.txRunner.RunProcurement(ctx, func(
		costRepo repository.ProductionCostRepository,
		_ repository.RawMaterialRepository,
		_ repository.YarnShipmentRepository,
		_ repository.SupplierPaymentRepository,
	) error {
		cost, err := costRepo.GetByID(costID)
		if err != nil {
			return err
		}
		if cost == nil {
			return domain.ErrNotFound
		}
		cost.PaidAmount = cost.PaidAmount.Add(amount)
		cost.DeriveStatus()
		cost.UpdatedAt = time.Now()
		if err := costRepo.Update(cost); err != nil {
			return err
		}
		updated = cost
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// OutstandingBalance is what the business still owes a supplier in its
// settlement currency: opening balance plus accrued costs minus payments,
// windowed by the supplier's accrual start date.
func (uc *SupplierPaymentUseCase) OutstandingBalance(supplierID string) (decimal.Decimal, error) {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return decimal.Zero, err
	}
	if supplier == nil {
		return decimal.Zero, domain.ErrNotFound
	}

	currency := ledger.Currency(supplier.SettlementCurrency)
	start, err := ledger.ParseStartDate(supplier.AccrualStartDate)
	if err != nil {
		uc.log.Warn().
			Str("supplierId", supplier.ID).
			Str("accrualStartDate", supplier.AccrualStartDate).
			Msg("unparsable accrual start date, balance includes all history")
		start = time.Time{}
	}
	rate := resolveRate(decimal.Zero, uc.settingsRepo)

	balance := supplier.OpeningBalanceUSD
	if currency == ledger.TRY {
		balance = supplier.OpeningBalanceTRY
	}

	costs, err := uc.costRepo.ListBySupplier(supplierID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, c := range costs {
		if !start.IsZero() && c.Date.Before(start) {
			continue
		}
		amount := c.TotalCost
		if stored := ledger.Currency(c.Currency); stored.Valid() && stored != currency {
			amount = ledger.Convert(amount, stored, currency, rate)
		}
		balance = balance.Add(amount)
	}

	payments, err := uc.paymentRepo.ListBySupplier(supplierID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, p := range payments {
		if !start.IsZero() && p.Date.Before(start) {
			continue
		}
		amount := p.AmountUSD
		if currency == ledger.TRY {
			amount = ledger.Convert(p.AmountUSD, ledger.USD, ledger.TRY, ledger.ResolveRate(p.ExchangeRate, rate))
		}
		balance = balance.Sub(amount)
	}
	return balance, nil
}
