package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kumasoglu/tekstil-api/internal/application/analytics"
)

// DashboardHandler serves the cached dashboard summary.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary GET /api/dashboard?refresh=true
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context(), c.QueryBool("refresh"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}
