package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/application/usecase"
)

// InventoryHandler serves lot CRUD and listing.
type InventoryHandler struct {
	uc *usecase.LotUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *usecase.LotUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create POST /api/lots
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	lot, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lot)
}

// GetByID GET /api/lots/:id
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	lot, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(lot)
}

// List GET /api/lots?productId=&location=&status=&limit=&offset=
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var req dto.LotListRequest
	if err := c.QueryParser(&req); err != nil {
		return badBody(c)
	}
	list, err := h.uc.List(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/lots/:id
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	lot, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(lot)
}

// Delete DELETE /api/lots/:id
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
