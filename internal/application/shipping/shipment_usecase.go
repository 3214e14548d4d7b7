package shipping

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

// Settings keys read by the shipment commands.
const (
	SettingUSDTRYRate = "usd_try_rate"
	SettingVATRate    = "vat_rate"

	defaultVATRate = "0.10"
)

// ShipmentUseCase creates, edits and deletes shipments. Every command runs
// the shipment write, the lot stock mutation and the customer balance
// mutation in a single transaction, with the lot rows locked
// (SELECT FOR UPDATE) for the duration.
type ShipmentUseCase struct {
	txRunner     TxRunner
	shipmentRepo repository.ShipmentRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	lotRepo      repository.LotRepository
	settingsRepo repository.SettingsRepository
}

// NewShipmentUseCase builds the use case.
func NewShipmentUseCase(
	txRunner TxRunner,
	shipmentRepo repository.ShipmentRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	settingsRepo repository.SettingsRepository,
) *ShipmentUseCase {
	return &ShipmentUseCase{
		txRunner:     txRunner,
		shipmentRepo: shipmentRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		lotRepo:      lotRepo,
		settingsRepo: settingsRepo,
	}
}

// GetByID returns a shipment with lines, or ErrNotFound.
func (uc *ShipmentUseCase) GetByID(id string) (*entity.Shipment, error) {
	shipment, err := uc.shipmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}
	return shipment, nil
}

// List returns shipment headers newest first.
func (uc *ShipmentUseCase) List(page dto.PageRequest) ([]*entity.Shipment, error) {
	page.DefaultPage()
	return uc.shipmentRepo.List(page.Limit, page.Offset)
}

// currentRate reads the USD/TRY rate from settings, falling back to the
// ledger default when unset or unparsable.
func (uc *ShipmentUseCase) currentRate() decimal.Decimal {
	raw, err := uc.settingsRepo.Get(SettingUSDTRYRate, "")
	if err != nil || raw == "" {
		return ledger.DefaultUSDTRYRate
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil || !rate.GreaterThan(decimal.Zero) {
		return ledger.DefaultUSDTRYRate
	}
	return rate
}

func (uc *ShipmentUseCase) vatRate() decimal.Decimal {
	raw, err := uc.settingsRepo.Get(SettingVATRate, defaultVATRate)
	if err != nil {
		return decimal.RequireFromString(defaultVATRate)
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.RequireFromString(defaultVATRate)
	}
	return rate
}

// buildLines validates the requested lines against their lots and computes
// all derived amounts. Lots are read through lotRepo, which inside a command
// is the tx-bound repository with row locks held. The product name is
// denormalized onto the line at write time, so receipts and exports keep it
// after a product rename or delete.
func buildLines(
	lotRepo repository.LotRepository,
	productRepo repository.ProductRepository,
	shipmentID string,
	in []dto.ShipmentLineRequest,
	calculateVAT bool,
	vatRate, tryRate decimal.Decimal,
	lock bool,
) ([]entity.ShipmentLine, map[string]*entity.Lot, error) {
	if len(in) == 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	lots := make(map[string]*entity.Lot)
	productNames := make(map[string]string)
	lines := make([]entity.ShipmentLine, 0, len(in))
	for _, req := range in {
		if req.LotID == "" || !req.Kg.GreaterThan(decimal.Zero) || req.UnitUSD.LessThan(decimal.Zero) {
			return nil, nil, domain.ErrInvalidInput
		}
		lot, ok := lots[req.LotID]
		if !ok {
			var err error
			if lock {
				lot, err = lotRepo.GetForUpdate(req.LotID)
			} else {
				lot, err = lotRepo.GetByID(req.LotID)
			}
			if err != nil {
				return nil, nil, err
			}
			if lot == nil {
				return nil, nil, domain.ErrNotFound
			}
			lots[req.LotID] = lot
		}
		productName, ok := productNames[lot.ProductID]
		if !ok {
			product, err := productRepo.GetByID(lot.ProductID)
			if err != nil {
				return nil, nil, err
			}
			if product != nil {
				productName = product.Name
			}
			productNames[lot.ProductID] = productName
		}

		lineTotal := req.Kg.Mul(req.UnitUSD).Round(2)
		vat := decimal.Zero
		if calculateVAT {
			vat = lineTotal.Mul(vatRate).Round(2)
		}
		totalWithVAT := lineTotal.Add(vat)
		lines = append(lines, entity.ShipmentLine{
			ID:              uuid.New().String(),
			ShipmentID:      shipmentID,
			LotID:           lot.ID,
			ProductID:       lot.ProductID,
			ProductName:     productName,
			Party:           lot.Party,
			Kg:              req.Kg,
			Tops:            req.Tops,
			UnitUSD:         req.UnitUSD,
			LineTotalUSD:    lineTotal,
			LineTotalTRY:    ledger.Convert(lineTotal, ledger.USD, ledger.TRY, tryRate),
			VAT:             vat,
			VATTRY:          ledger.Convert(vat, ledger.USD, ledger.TRY, tryRate),
			TotalWithVAT:    totalWithVAT,
			TotalWithVATTRY: ledger.Convert(totalWithVAT, ledger.USD, ledger.TRY, tryRate),
		})
	}
	return lines, lots, nil
}

func sumTotals(lines []entity.ShipmentLine) (kg decimal.Decimal, tops int, usd decimal.Decimal) {
	kg, usd = decimal.Zero, decimal.Zero
	for _, l := range lines {
		kg = kg.Add(l.Kg)
		tops += l.Tops
		usd = usd.Add(l.LineTotalUSD)
	}
	return kg, tops, usd
}

// Create validates the request, then in one transaction: inserts the
// shipment, decrements each lot's RemainingKg (rederiving status) and debits
// the customer balance by the shipment total.
func (uc *ShipmentUseCase) Create(ctx context.Context, in dto.CreateShipmentRequest) (*entity.Shipment, error) {
	if in.CustomerID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	vatRate, tryRate := uc.vatRate(), uc.currentRate()
	shipment := &entity.Shipment{
		ID:               uuid.New().String(),
		CustomerID:       in.CustomerID,
		Date:             date,
		Note:             in.Note,
		ShowTRYInReceipt: in.ShowTRYInReceipt,
		CalculateVAT:     in.CalculateVAT,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = uc.txRunner.Run(ctx, func(
		shipmentRepo repository.ShipmentRepository,
		lotRepo repository.LotRepository,
		customerRepo repository.CustomerRepository,
		_ repository.PaymentRepository,
	) error {
		lines, lots, err := buildLines(lotRepo, uc.productRepo, shipment.ID, in.Lines, in.CalculateVAT, vatRate, tryRate, true)
		if err != nil {
			return err
		}
		// Consume stock per line; a lot can appear in several lines.
		for _, line := range lines {
			lot := lots[line.LotID]
			if lot.RemainingKg.LessThan(line.Kg) {
				return domain.ErrInsufficientStock
			}
			lot.RemainingKg = lot.RemainingKg.Sub(line.Kg)
		}
		for _, lot := range lots {
			lot.DeriveStatus()
			if err := lotRepo.UpdateRemaining(lot); err != nil {
				return err
			}
		}
		shipment.Lines = lines
		shipment.TotalKg, shipment.TotalTops, shipment.TotalUSD = sumTotals(lines)
		if err := shipmentRepo.Create(shipment); err != nil {
			return err
		}
		return customerRepo.AdjustBalance(shipment.CustomerID, shipment.TotalUSD)
	})
	if err != nil {
		return nil, err
	}
	return shipment, nil
}

// Update edits a shipment. Per lot it applies kgDelta = oldKg - newKg to
// RemainingKg (positive returns stock, negative consumes more) and rederives
// status. If the customer changed, the old total is reversed on the old
// customer and the new total applied to the new one; otherwise the single
// delta newTotal - oldTotal is applied.
func (uc *ShipmentUseCase) Update(ctx context.Context, id string, in dto.UpdateShipmentRequest) (*entity.Shipment, error) {
	if id == "" || in.CustomerID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	vatRate, tryRate := uc.vatRate(), uc.currentRate()
	var updated *entity.Shipment

	err = uc.txRunner.Run(ctx, func(
		shipmentRepo repository.ShipmentRepository,
		lotRepo repository.LotRepository,
		customerRepo repository.CustomerRepository,
		_ repository.PaymentRepository,
	) error {
		old, err := shipmentRepo.GetByID(id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}

		lines, lots, err := buildLines(lotRepo, uc.productRepo, id, in.Lines, in.CalculateVAT, vatRate, tryRate, true)
		if err != nil {
			return err
		}

		// Net kg change per lot across old and new lines.
		deltas := make(map[string]decimal.Decimal) // positive = stock returned
		for _, l := range old.Lines {
			deltas[l.LotID] = deltas[l.LotID].Add(l.Kg)
		}
		for _, l := range lines {
			deltas[l.LotID] = deltas[l.LotID].Sub(l.Kg)
		}
		for lotID, delta := range deltas {
			if delta.IsZero() {
				continue
			}
			lot, ok := lots[lotID]
			if !ok {
				lot, err = lotRepo.GetForUpdate(lotID)
				if err != nil {
					return err
				}
				if lot == nil {
					return domain.ErrNotFound
				}
			}
			next := lot.RemainingKg.Add(delta)
			if next.LessThan(decimal.Zero) {
				return domain.ErrInsufficientStock
			}
			lot.RemainingKg = next
			lot.DeriveStatus()
			if err := lotRepo.UpdateRemaining(lot); err != nil {
				return err
			}
		}

		next := *old
		next.CustomerID = in.CustomerID
		next.Date = date
		next.Note = in.Note
		next.ShowTRYInReceipt = in.ShowTRYInReceipt
		next.CalculateVAT = in.CalculateVAT
		next.Lines = lines
		next.TotalKg, next.TotalTops, next.TotalUSD = sumTotals(lines)
		next.UpdatedAt = time.Now()
		if err := shipmentRepo.Update(&next); err != nil {
			return err
		}

		if old.CustomerID != next.CustomerID {
			if err := customerRepo.AdjustBalance(old.CustomerID, old.TotalUSD.Neg()); err != nil {
				return err
			}
			if err := customerRepo.AdjustBalance(next.CustomerID, next.TotalUSD); err != nil {
				return err
			}
		} else if diff := next.TotalUSD.Sub(old.TotalUSD); !diff.IsZero() {
			if err := customerRepo.AdjustBalance(next.CustomerID, diff); err != nil {
				return err
			}
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete reverses a create: all line kg return to their lots, statuses are
// rederived, and the customer balance drops by the stored shipment total.
func (uc *ShipmentUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		shipmentRepo repository.ShipmentRepository,
		lotRepo repository.LotRepository,
		customerRepo repository.CustomerRepository,
		_ repository.PaymentRepository,
	) error {
		shipment, err := shipmentRepo.GetByID(id)
		if err != nil {
			return err
		}
		if shipment == nil {
			return domain.ErrNotFound
		}

		returned := make(map[string]decimal.Decimal)
		for _, line := range shipment.Lines {
			returned[line.LotID] = returned[line.LotID].Add(line.Kg)
		}
		for lotID, kg := range returned {
			lot, err := lotRepo.GetForUpdate(lotID)
			if err != nil {
				return err
			}
			if lot == nil {
				// The lot was deleted after the shipment; nothing to return
				// stock to. The balance reversal below still applies.
				continue
			}
			lot.RemainingKg = lot.RemainingKg.Add(kg)
			lot.DeriveStatus()
			if err := lotRepo.UpdateRemaining(lot); err != nil {
				return err
			}
		}

		if err := shipmentRepo.Delete(id); err != nil {
			return err
		}
		return customerRepo.AdjustBalance(shipment.CustomerID, shipment.TotalUSD.Neg())
	})
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	return time.Parse("2006-01-02", s)
}
