package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/application/statement"
	"github.com/kumasoglu/tekstil-api/internal/application/usecase"
)

// StatementPDFGenerator renders a statement response as PDF bytes.
type StatementPDFGenerator interface {
	GenerateStatementPDF(resp *dto.StatementResponse) ([]byte, error)
}

// CustomerHandler serves customer CRUD, balance repair and statements.
type CustomerHandler struct {
	uc          *usecase.CustomerUseCase
	statementUC *statement.CustomerStatementUseCase
	pdfGen      StatementPDFGenerator
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(
	uc *usecase.CustomerUseCase,
	statementUC *statement.CustomerStatementUseCase,
	pdfGen StatementPDFGenerator,
) *CustomerHandler {
	return &CustomerHandler{uc: uc, statementUC: statementUC, pdfGen: pdfGen}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customer)
}

// List GET /api/customers?limit=20&offset=0
func (h *CustomerHandler) List(c *fiber.Ctx) error {
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

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RebuildBalance POST /api/customers/:id/rebuild-balance
func (h *CustomerHandler) RebuildBalance(c *fiber.Ctx) error {
	balance, err := h.uc.RebuildBalance(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"balance": balance})
}

// Statement GET /api/customers/:id/statement?startDate=2024-01-01&format=json|csv|pdf
func (h *CustomerHandler) Statement(c *fiber.Ctx) error {
	var req dto.StatementRequest
	if err := c.QueryParser(&req); err != nil {
		return badBody(c)
	}
	resp, err := h.statementUC.Build(c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return renderStatement(c, resp, h.pdfGen)
}

// renderStatement writes a statement response in the requested format.
func renderStatement(c *fiber.Ctx, resp *dto.StatementResponse, pdfGen StatementPDFGenerator) error {
	switch c.Query("format", "json") {
	case "csv":
		out, err := statement.RenderCSV(resp)
		if err != nil {
			return fail(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="ekstre.csv"`)
		return c.Send(out)
	case "pdf":
		out, err := pdfGen.GenerateStatementPDF(resp)
		if err != nil {
			return fail(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="ekstre.pdf"`)
		return c.Send(out)
	default:
		return c.JSON(resp)
	}
}
