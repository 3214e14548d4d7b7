package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/application/procurement"
	"github.com/kumasoglu/tekstil-api/internal/application/statement"
)

// SupplierHandler serves supplier CRUD, price lists, supplier payments,
// the outstanding balance and the account extract.
type SupplierHandler struct {
	uc        *procurement.SupplierUseCase
	paymentUC *procurement.SupplierPaymentUseCase
	extractUC *statement.SupplierExtractUseCase
	pdfGen    StatementPDFGenerator
}

// NewSupplierHandler builds the handler.
func NewSupplierHandler(
	uc *procurement.SupplierUseCase,
	paymentUC *procurement.SupplierPaymentUseCase,
	extractUC *statement.SupplierExtractUseCase,
	pdfGen StatementPDFGenerator,
) *SupplierHandler {
	return &SupplierHandler{uc: uc, paymentUC: paymentUC, extractUC: extractUC, pdfGen: pdfGen}
}

// Create POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	supplier, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// GetByID GET /api/suppliers/:id
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	supplier, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(supplier)
}

// List GET /api/suppliers?type=iplik&limit=20&offset=0
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Query("type"), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	supplier, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(supplier)
}

// Delete DELETE /api/suppliers/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPrice POST /api/suppliers/:id/prices
func (h *SupplierHandler) AddPrice(c *fiber.Ctx) error {
	var in dto.CreateSupplierPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	price, err := h.uc.AddPrice(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(price)
}

// ListPrices GET /api/suppliers/:id/prices
func (h *SupplierHandler) ListPrices(c *fiber.Ctx) error {
	prices, err := h.uc.ListPrices(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(prices)
}

// DeletePrice DELETE /api/supplier-prices/:id
func (h *SupplierHandler) DeletePrice(c *fiber.Ctx) error {
	if err := h.uc.DeletePrice(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePayment POST /api/supplier-payments
func (h *SupplierHandler) CreatePayment(c *fiber.Ctx) error {
	var in dto.CreateSupplierPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	payment, err := h.paymentUC.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// ListPayments GET /api/suppliers/:id/payments
func (h *SupplierHandler) ListPayments(c *fiber.Ctx) error {
	payments, err := h.paymentUC.ListBySupplier(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(payments)
}

// DeletePayment DELETE /api/supplier-payments/:id
func (h *SupplierHandler) DeletePayment(c *fiber.Ctx) error {
	if err := h.paymentUC.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Balance GET /api/suppliers/:id/balance
func (h *SupplierHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.paymentUC.OutstandingBalance(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"balance": balance})
}

// Extract GET /api/suppliers/:id/extract?format=json|csv|pdf
func (h *SupplierHandler) Extract(c *fiber.Ctx) error {
	resp, err := h.extractUC.Build(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return renderStatement(c, resp, h.pdfGen)
}
