package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/application/procurement"
	"github.com/kumasoglu/tekstil-api/internal/application/usecase"
)

// ProductionHandler serves subcontractor receipts, yarn types, production
// costs and cost settlements.
type ProductionHandler struct {
	receiptUC  *procurement.ReceiptUseCase
	paymentUC  *procurement.SupplierPaymentUseCase
	yarnTypeUC *usecase.YarnTypeUseCase
}

// NewProductionHandler builds the handler.
func NewProductionHandler(
	receiptUC *procurement.ReceiptUseCase,
	paymentUC *procurement.SupplierPaymentUseCase,
	yarnTypeUC *usecase.YarnTypeUseCase,
) *ProductionHandler {
	return &ProductionHandler{receiptUC: receiptUC, paymentUC: paymentUC, yarnTypeUC: yarnTypeUC}
}

// CreateRawMaterial POST /api/raw-material-shipments
func (h *ProductionHandler) CreateRawMaterial(c *fiber.Ctx) error {
	var in dto.CreateRawMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	shipment, err := h.receiptUC.CreateRawMaterial(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shipment)
}

// ListRawMaterials GET /api/raw-material-shipments?supplierId=
func (h *ProductionHandler) ListRawMaterials(c *fiber.Ctx) error {
	list, err := h.receiptUC.ListRawMaterials(c.Query("supplierId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// DeleteRawMaterial DELETE /api/raw-material-shipments/:id
func (h *ProductionHandler) DeleteRawMaterial(c *fiber.Ctx) error {
	if err := h.receiptUC.DeleteRawMaterial(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateYarn POST /api/yarn-shipments
func (h *ProductionHandler) CreateYarn(c *fiber.Ctx) error {
	var in dto.CreateYarnShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	shipment, err := h.receiptUC.CreateYarn(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shipment)
}

// ListYarn GET /api/yarn-shipments?supplierId=
func (h *ProductionHandler) ListYarn(c *fiber.Ctx) error {
	list, err := h.receiptUC.ListYarn(c.Query("supplierId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// DeleteYarn DELETE /api/yarn-shipments/:id
func (h *ProductionHandler) DeleteYarn(c *fiber.Ctx) error {
	if err := h.receiptUC.DeleteYarn(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateYarnType POST /api/yarn-types
func (h *ProductionHandler) CreateYarnType(c *fiber.Ctx) error {
	var in dto.CreateYarnTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	yarnType, err := h.yarnTypeUC.Create(in.Name, in.Note)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(yarnType)
}

// ListYarnTypes GET /api/yarn-types
func (h *ProductionHandler) ListYarnTypes(c *fiber.Ctx) error {
	list, err := h.yarnTypeUC.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// DeleteYarnType DELETE /api/yarn-types/:id
func (h *ProductionHandler) DeleteYarnType(c *fiber.Ctx) error {
	if err := h.yarnTypeUC.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCosts GET /api/production-costs?supplierId=&lotId=&limit=20&offset=0
func (h *ProductionHandler) ListCosts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	list, err := h.receiptUC.ListCosts(c.Query("supplierId"), c.Query("lotId"), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// PayCost POST /api/production-costs/:id/payments
func (h *ProductionHandler) PayCost(c *fiber.Ctx) error {
	var in dto.PayProductionCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	cost, err := h.paymentUC.PayCost(c.Context(), c.Params("id"), in.Amount)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cost)
}
