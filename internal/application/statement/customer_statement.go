// Package statement assembles ledger transactions from the domain
// collections and renders customer statements and supplier extracts.
package statement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/ledger"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// CustomerStatementUseCase builds customer statements. Customers settle in
// USD: shipments debit, payments credit.
type CustomerStatementUseCase struct {
	customerRepo repository.CustomerRepository
	shipmentRepo repository.ShipmentRepository
	paymentRepo  repository.PaymentRepository
	settingsRepo repository.SettingsRepository
}

// NewCustomerStatementUseCase builds the use case.
func NewCustomerStatementUseCase(
	customerRepo repository.CustomerRepository,
	shipmentRepo repository.ShipmentRepository,
	paymentRepo repository.PaymentRepository,
	settingsRepo repository.SettingsRepository,
) *CustomerStatementUseCase {
	return &CustomerStatementUseCase{
		customerRepo: customerRepo,
		shipmentRepo: shipmentRepo,
		paymentRepo:  paymentRepo,
		settingsRepo: settingsRepo,
	}
}

// currentRate reads the current USD/TRY rate from settings.
func currentRate(settingsRepo repository.SettingsRepository) decimal.Decimal {
	raw, err := settingsRepo.Get("usd_try_rate", "")
	if err != nil || raw == "" {
		return ledger.DefaultUSDTRYRate
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil || !rate.GreaterThan(decimal.Zero) {
		return ledger.DefaultUSDTRYRate
	}
	return rate
}

// Build assembles and renders the statement for one customer.
func (uc *CustomerStatementUseCase) Build(customerID string, req dto.StatementRequest) (*dto.StatementResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	start, err := ledger.ParseStartDate(req.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	shipments, err := uc.shipmentRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	txs := make([]ledger.Transaction, 0, len(shipments)+len(payments))
	for _, sh := range shipments {
		txs = append(txs, ledger.Transaction{
			Date:        sh.Date,
			Description: fmt.Sprintf("Sevkiyat %s kg", sh.TotalKg.StringFixed(1)),
			Source:      ledger.SourceShipment,
			Ref:         sh.ID,
			Debit:       sh.TotalUSD,
			Currency:    ledger.USD,
		})
	}
	for _, p := range payments {
		desc := "Tahsilat"
		if p.Method != "" {
			desc = "Tahsilat (" + p.Method + ")"
		}
		txs = append(txs, ledger.Transaction{
			Date:        p.Date,
			Description: desc,
			Source:      ledger.SourcePayment,
			Ref:         p.ID,
			Credit:      p.AmountUSD,
			Currency:    ledger.USD,
		})
	}

	st, err := ledger.Build(ledger.BuildInput{
		OpeningBalance: decimal.Zero,
		StartDate:      start,
		Currency:       ledger.USD,
		CurrentRate:    currentRate(uc.settingsRepo),
		Transactions:   txs,
	})
	if err != nil {
		return nil, err
	}
	return &dto.StatementResponse{
		Name:      customer.Name,
		Currency:  ledger.USD,
		Statement: st,
	}, nil
}
