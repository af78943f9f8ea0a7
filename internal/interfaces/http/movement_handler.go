package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/kiosco-stock/internal/application/dto"
	"github.com/tu-usuario/kiosco-stock/internal/application/usecase"
	"github.com/tu-usuario/kiosco-stock/internal/domain/permission"
	"github.com/tu-usuario/kiosco-stock/pkg/metrics"
)

// MovementHandler maneja las peticiones HTTP del ledger de movimientos.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register registra un movimiento. El permiso depende del tipo (un vendedor
// solo registra salidas), así que se chequea acá después de parsear el body y
// antes de validar.
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	if action, ok := permission.ForMovementType(in.Type); ok {
		if !permission.Can(GetRole(c), action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este tipo de movimiento"})
		}
	}
	// Tipo desconocido sigue de largo: lo rechaza la validación con mensaje.

	resp, verrs, err := h.uc.Register(in, GetUsername(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if len(verrs) > 0 {
		metrics.ValidationRejectsTotal.WithLabelValues("movement").Inc()
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Errors: verrs})
	}

	metrics.MovementsTotal.WithLabelValues(in.Type).Inc()
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List devuelve el historial más nuevo primero. Sin el permiso de ver todo,
// cada usuario ve solo sus propios movimientos. ?limit acota el resultado.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	viewAll := permission.Can(GetRole(c), permission.MovementsViewAll)
	return c.JSON(h.uc.List(GetUsername(c), viewAll, limit))
}
