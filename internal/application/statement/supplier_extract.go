package statement

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/ledger"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
	"github.com/kumasoglu/tekstil-api/pkg/logger"
)

// SupplierExtractUseCase builds supplier extracts (cari ekstre). The extract
// currency is the supplier's settlement currency. Production cost rows debit
// the extract; raw-material and yarn receipts are already represented by the
// cost rows they synthesize, so listing them too would double count.
// Supplier payments credit.
type SupplierExtractUseCase struct {
	supplierRepo repository.SupplierRepository
	costRepo     repository.ProductionCostRepository
	paymentRepo  repository.SupplierPaymentRepository
	settingsRepo repository.SettingsRepository
	log          *logger.Logger
}

// NewSupplierExtractUseCase builds the use case.
func NewSupplierExtractUseCase(
	supplierRepo repository.SupplierRepository,
	costRepo repository.ProductionCostRepository,
	paymentRepo repository.SupplierPaymentRepository,
	settingsRepo repository.SettingsRepository,
	log *logger.Logger,
) *SupplierExtractUseCase {
	return &SupplierExtractUseCase{
		supplierRepo: supplierRepo,
		costRepo:     costRepo,
		paymentRepo:  paymentRepo,
		settingsRepo: settingsRepo,
		log:          log,
	}
}

// costDescription labels a cost row by whichever cost column it carries.
func costDescription(c *entity.ProductionCost) string {
	switch {
	case c.IplikCost.GreaterThan(decimal.Zero):
		return "İplik alımı"
	case c.OrmeCost.GreaterThan(decimal.Zero):
		return "Örme fasonu"
	case c.BoyahaneCost.GreaterThan(decimal.Zero):
		return "Boya fasonu"
	default:
		return "Üretim maliyeti"
	}
}

// Build assembles and renders the extract for one supplier.
//
// The accrual start date is stored as a string; if it fails to parse the
// extract degrades to full history with a loud warning rather than guessing
// a window.
func (uc *SupplierExtractUseCase) Build(supplierID string) (*dto.StatementResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	currency := ledger.Currency(supplier.SettlementCurrency)
	if !currency.Valid() {
		currency = ledger.Currency(entity.DefaultSettlementCurrency(supplier.Type))
	}

	start, err := ledger.ParseStartDate(supplier.AccrualStartDate)
	if err != nil {
		uc.log.Warn().
			Str("supplierId", supplier.ID).
			Str("accrualStartDate", supplier.AccrualStartDate).
			Msg("unparsable accrual start date, extract includes all history")
		start = time.Time{}
	}

	opening := supplier.OpeningBalanceUSD
	if currency == ledger.TRY {
		opening = supplier.OpeningBalanceTRY
	}

	costs, err := uc.costRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}

	txs := make([]ledger.Transaction, 0, len(costs)+len(payments))
	for _, c := range costs {
		txs = append(txs, ledger.Transaction{
			Date:        c.Date,
			Description: costDescription(c),
			Source:      ledger.SourceProductionCost,
			Ref:         c.ID,
			Debit:       c.TotalCost,
			Currency:    ledger.Currency(c.Currency),
		})
	}
	for _, p := range payments {
		desc := "Ödeme"
		if p.Method != "" {
			desc = "Ödeme (" + p.Method + ")"
		}
		txs = append(txs, ledger.Transaction{
			Date:         p.Date,
			Description:  desc,
			Source:       ledger.SourceSupplierPayment,
			Ref:          p.ID,
			Credit:       p.OriginalAmount,
			Currency:     ledger.Currency(p.OriginalCurrency),
			ExchangeRate: p.ExchangeRate,
		})
	}

	st, err := ledger.Build(ledger.BuildInput{
		OpeningBalance: opening,
		StartDate:      start,
		Currency:       currency,
		CurrentRate:    currentRate(uc.settingsRepo),
		Transactions:   txs,
	})
	if err != nil {
		return nil, err
	}
	return &dto.StatementResponse{
		Name:      fmt.Sprintf("%s (%s)", supplier.Name, supplier.Type),
		Currency:  currency,
		Statement: st,
	}, nil
}
