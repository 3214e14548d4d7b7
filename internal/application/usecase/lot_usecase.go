package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// LotUseCase manages fabric lots. Stock consumption happens in the shipment
// commands; here only the lot master data and TotalKg corrections live.
type LotUseCase struct {
	lotRepo     repository.LotRepository
	productRepo repository.ProductRepository
}

// NewLotUseCase builds the use case.
func NewLotUseCase(lotRepo repository.LotRepository, productRepo repository.ProductRepository) *LotUseCase {
	return &LotUseCase{lotRepo: lotRepo, productRepo: productRepo}
}

// Create registers a lot with RemainingKg = TotalKg and derived status.
func (uc *LotUseCase) Create(in dto.CreateLotRequest) (*entity.Lot, error) {
	if in.ProductID == "" || in.Party == "" || !in.TotalKg.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	lot := &entity.Lot{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		Party:        in.Party,
		Color:        in.Color,
		Location:     in.Location,
		Rolls:        in.Rolls,
		AvgKgPerRoll: in.AvgKgPerRoll,
		TotalKg:      in.TotalKg,
		RemainingKg:  in.TotalKg,
		Date:         date,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	lot.DeriveStatus()
	if err := uc.lotRepo.Create(lot); err != nil {
		return nil, err
	}
	return lot, nil
}

// GetByID returns a lot or ErrNotFound.
func (uc *LotUseCase) GetByID(id string) (*entity.Lot, error) {
	lot, err := uc.lotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return lot, nil
}

// List returns lots matching the filter.
func (uc *LotUseCase) List(req dto.LotListRequest) ([]*entity.Lot, error) {
	req.DefaultPage()
	return uc.lotRepo.List(repository.LotFilter{
		ProductID: req.ProductID,
		Location:  req.Location,
		Status:    req.Status,
	}, req.Limit, req.Offset)
}

// Update edits lot master data. A TotalKg correction shifts RemainingKg by
// the same delta, so kg already consumed by shipments stays consumed; the
// status rederives afterwards.
func (uc *LotUseCase) Update(id string, in dto.UpdateLotRequest) (*entity.Lot, error) {
	if id == "" || in.Party == "" || !in.TotalKg.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	lot, err := uc.lotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}

	delta := in.TotalKg.Sub(lot.TotalKg)
	remaining := lot.RemainingKg.Add(delta)
	if remaining.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	lot.Party = in.Party
	lot.Color = in.Color
	lot.Location = in.Location
	lot.Rolls = in.Rolls
	lot.AvgKgPerRoll = in.AvgKgPerRoll
	lot.TotalKg = in.TotalKg
	lot.RemainingKg = remaining
	lot.Date = date
	lot.UpdatedAt = time.Now()
	lot.DeriveStatus()
	if err := uc.lotRepo.Update(lot); err != nil {
		return nil, err
	}
	return lot, nil
}

// Delete removes a lot.
func (uc *LotUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.lotRepo.Delete(id)
}
