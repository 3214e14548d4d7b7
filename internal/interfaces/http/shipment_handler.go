package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/application/shipping"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// ReceiptPDFGenerator renders a shipment receipt as PDF bytes.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(shipment *entity.Shipment, customer *entity.Customer) ([]byte, error)
}

// ShipmentHandler serves shipment CRUD and receipt rendering.
type ShipmentHandler struct {
	uc           *shipping.ShipmentUseCase
	customerRepo repository.CustomerRepository
	pdfGen       ReceiptPDFGenerator
}

// NewShipmentHandler builds the handler.
func NewShipmentHandler(
	uc *shipping.ShipmentUseCase,
	customerRepo repository.CustomerRepository,
	pdfGen ReceiptPDFGenerator,
) *ShipmentHandler {
	return &ShipmentHandler{uc: uc, customerRepo: customerRepo, pdfGen: pdfGen}
}

// Create POST /api/shipments
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	shipment, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shipment)
}

// GetByID GET /api/shipments/:id
func (h *ShipmentHandler) GetByID(c *fiber.Ctx) error {
	shipment, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(shipment)
}

// List GET /api/shipments?limit=20&offset=0
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	list, err := h.uc.List(page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/shipments/:id
func (h *ShipmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	shipment, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(shipment)
}

// Delete DELETE /api/shipments/:id
func (h *ShipmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt GET /api/shipments/:id/receipt
func (h *ShipmentHandler) Receipt(c *fiber.Ctx) error {
	shipment, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	customer, err := h.customerRepo.GetByID(shipment.CustomerID)
	if err != nil {
		return fail(c, err)
	}
	if customer == nil {
		// Customer deleted after the shipment; render with a placeholder.
		customer = &entity.Customer{ID: shipment.CustomerID, Name: "-"}
	}

	out, err := h.pdfGen.GenerateReceiptPDF(shipment, customer)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="irsaliye.pdf"`)
	return c.Send(out)
}
