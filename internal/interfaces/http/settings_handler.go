package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/application/usecase"
)

// SettingsHandler serves the exchange rate and other key/value settings.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler builds the handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetRate GET /api/settings/exchange-rate
func (h *SettingsHandler) GetRate(c *fiber.Ctx) error {
	rate, err := h.uc.GetRate()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"rate": rate})
}

// SetRate PUT /api/settings/exchange-rate
func (h *SettingsHandler) SetRate(c *fiber.Ctx) error {
	var in struct {
		Rate decimal.Decimal `json:"rate"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetRate(in.Rate); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"rate": in.Rate})
}

// Get GET /api/settings/:key
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	value, err := h.uc.Get(c.Params("key"), "")
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"key": c.Params("key"), "value": value})
}

// Set PUT /api/settings/:key
func (h *SettingsHandler) Set(c *fiber.Ctx) error {
	var in struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Set(c.Params("key"), in.Value); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"key": c.Params("key"), "value": in.Value})
}
