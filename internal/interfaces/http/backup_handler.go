package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/kiosco-stock/internal/application/dto"
	"github.com/tu-usuario/kiosco-stock/internal/application/usecase"
)

// BackupHandler export e import del estado completo (solo admin).
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export devuelve el estado completo como JSON descargable.
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="kiosco-stock-backup.json"`)
	return c.JSON(h.uc.Export())
}

// Import valida el archivo y reemplaza el estado completo. Todo o nada: si
// algún registro no pasa validación no se toca nada.
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	var in dto.BackupFile
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	verrs, err := h.uc.Import(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if len(verrs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Errors: verrs})
	}
	return c.JSON(fiber.Map{"message": "backup importado"})
}

// Reset borra catálogo y ledger.
func (h *BackupHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "datos reiniciados"})
}
