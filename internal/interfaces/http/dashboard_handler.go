package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/kiosco-stock/internal/application/dto"
	"github.com/tu-usuario/kiosco-stock/internal/application/usecase"
)

// DashboardHandler maneja el resumen del negocio y la analítica horaria.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve los KPIs derivados del estado actual.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}

// SalesHours devuelve la distribución de ventas por hora del día.
// ?from y ?to aceptan RFC3339 o fecha simple (2006-01-02); por defecto los
// últimos 7 días.
func (h *DashboardHandler) SalesHours(c *fiber.Ctx) error {
	from, ok := parseQueryTime(c.Query("from"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "from inválido (RFC3339 o YYYY-MM-DD)"})
	}
	to, ok := parseQueryTime(c.Query("to"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "to inválido (RFC3339 o YYYY-MM-DD)"})
	}
	// Una fecha pelada como "to" cubre hasta el final de ese día.
	if !to.IsZero() && to.Hour() == 0 && to.Minute() == 0 && to.Second() == 0 {
		to = to.Add(24*time.Hour - time.Second)
	}
	return c.JSON(h.uc.SalesHours(from, to))
}

func parseQueryTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}
