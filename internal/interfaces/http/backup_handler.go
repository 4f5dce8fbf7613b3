package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/MUNTAZIR1234/Invoice/internal/application/backup"
	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
)

// BackupHandler exports, restores and resets the whole data set.
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler builds the handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export GET /api/backup
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.uc.Export()
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, fiber.MIMEApplicationJSON, filename, data)
}

// Restore replaces every record with the uploaded snapshot. A snapshot that
// fails to parse leaves the data untouched.
// POST /api/backup
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	r, closeFn, err := uploadReader(c)
	if err != nil {
		return badRequest(c, &dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	defer closeFn()
	data, err := io.ReadAll(r)
	if err != nil {
		return badRequest(c, &dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	summary, err := h.uc.Restore(data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// Reset deletes every record and the company profile.
// POST /api/system/reset
func (h *BackupHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
