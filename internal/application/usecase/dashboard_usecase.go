package usecase

import (
	"time"

	"github.com/tu-usuario/kiosco-stock/internal/application/dto"
	"github.com/tu-usuario/kiosco-stock/internal/application/state"
	"github.com/tu-usuario/kiosco-stock/internal/domain/analytics"
	"github.com/tu-usuario/kiosco-stock/internal/domain/stock"
	"github.com/tu-usuario/kiosco-stock/pkg/formatting"
)

// Ventana por defecto para la analítica de horas de venta.
const defaultSalesHoursDays = 7

// DashboardUseCase resumen del negocio: KPIs derivados del ledger y analítica
// de horas de venta. Sin caché: derivación pura sobre el estado actual en
// cada llamada.
type DashboardUseCase struct {
	store *state.Store
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store *state.Store) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// Summary calcula las métricas del dashboard sobre el estado actual.
func (uc *DashboardUseCase) Summary() dto.DashboardSummaryResponse {
	s := uc.store.Snapshot()
	stockByID := stock.ComputeStock(s.Products, s.Movements)
	m := stock.ComputeMetrics(s.Products, stockByID, s.Movements)

	low := stock.LowStockProducts(s.Products, stockByID)
	lowItems := make([]dto.ProductResponse, 0, len(low))
	for i := range low {
		lowItems = append(lowItems, toProductResponse(&low[i], stockByID[low[i].ID]))
	}

	return dto.DashboardSummaryResponse{
		TotalProducts:   m.TotalProducts,
		LowStockCount:   m.LowStockCount,
		Valuation:       m.Valuation,
		PotentialMargin: m.PotentialMargin,
		GrossSales:      m.GrossSales,

		ValuationDisplay:       formatting.Money(m.Valuation),
		PotentialMarginDisplay: formatting.Money(m.PotentialMargin),
		GrossSalesDisplay:      formatting.Money(m.GrossSales),

		LowStock: lowItems,
	}
}

// SalesHours agrupa las ventas por hora del día dentro de [from, to]. Con
// fechas cero usa los últimos 7 días.
func (uc *DashboardUseCase) SalesHours(from, to time.Time) dto.SalesHoursResponse {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -defaultSalesHoursDays)
	}

	s := uc.store.Snapshot()
	b := analytics.BuildHourlyBuckets(s.Movements, from, to)

	return dto.SalesHoursResponse{
		From:           from,
		To:             to,
		SalesByHour:    b.SalesByHour[:],
		UnitsByHour:    b.UnitsByHour[:],
		TotalSales:     b.TotalSales,
		TotalUnits:     b.TotalUnits,
		PeakHour:       b.PeakHour,
		PeakSalesValue: b.PeakSalesValue,
		PeakUnitsHour:  b.PeakUnitsHour,
		PeakUnitsValue: b.PeakUnitsValue,
	}
}
