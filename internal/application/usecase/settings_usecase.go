package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/ledger"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// Settings keys.
const (
	SettingUSDTRYRate = "usd_try_rate"
	SettingVATRate    = "vat_rate"
)

// SettingsUseCase reads and writes application settings, chiefly the current
// USD/TRY exchange rate.
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsUseCase builds the use case.
func NewSettingsUseCase(settingsRepo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo}
}

// GetRate returns the current USD/TRY rate, falling back to the default.
func (uc *SettingsUseCase) GetRate() (decimal.Decimal, error) {
	raw, err := uc.settingsRepo.Get(SettingUSDTRYRate, "")
	if err != nil {
		return decimal.Zero, err
	}
	if raw == "" {
		return ledger.DefaultUSDTRYRate, nil
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil || !rate.GreaterThan(decimal.Zero) {
		return ledger.DefaultUSDTRYRate, nil
	}
	return rate, nil
}

// SetRate stores a new USD/TRY rate. The rate must be positive.
func (uc *SettingsUseCase) SetRate(rate decimal.Decimal) error {
	if !rate.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return uc.settingsRepo.Set(SettingUSDTRYRate, rate.String())
}

// Get reads an arbitrary setting.
func (uc *SettingsUseCase) Get(key, def string) (string, error) {
	if key == "" {
		return "", domain.ErrInvalidInput
	}
	return uc.settingsRepo.Get(key, def)
}

// Set writes an arbitrary setting.
func (uc *SettingsUseCase) Set(key, value string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	return uc.settingsRepo.Set(key, value)
}
