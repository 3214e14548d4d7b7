package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kumasoglu/tekstil-api/internal/application/backup"
)

// BackupHandler serves the full-database JSON backup and per-collection
// CSV exports.
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler builds the handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export GET /api/backup/export
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	out, err := h.uc.Export(c.Context())
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="yedek.json"`)
	return c.Send(out)
}

// ExportCSV GET /api/backup/export/csv?collection=customers
func (h *BackupHandler) ExportCSV(c *fiber.Ctx) error {
	out, err := h.uc.ExportCollectionCSV(c.Context(), c.Query("collection"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+c.Query("collection")+`.csv"`)
	return c.Send(out)
}

// Import POST /api/backup/import
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	if err := h.uc.Import(c.Context(), c.Body()); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "restored"})
}

// Clear POST /api/backup/clear
func (h *BackupHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "cleared"})
}
