package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/kiosco-stock/internal/application/usecase"
	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

func TestSummary_KPIsDerivadosDelLedger(t *testing.T) {
	p := agua() // costo 350, precio 700, stock mínimo 10
	movements := []entity.Movement{
		{ID: "m1", ProductID: "p1", Type: entity.MovementTypeIN, Qty: decimal.NewFromInt(20), User: "admin"},
		{ID: "m2", ProductID: "p1", Type: entity.MovementTypeOUT, Qty: decimal.NewFromInt(18), User: "kiosco"},
	}
	store := storeCon(t, []entity.Product{p}, movements)
	uc := usecase.NewDashboardUseCase(store)

	sum := uc.Summary()

	assert.Equal(t, 1, sum.TotalProducts)
	assert.Equal(t, 1, sum.LowStockCount, "stock 2 <= mínimo 10")
	assert.True(t, sum.Valuation.Equal(decimal.NewFromInt(700)), "2 * 350, got %s", sum.Valuation)
	assert.True(t, sum.PotentialMargin.Equal(decimal.NewFromInt(700)), "2 * (700-350)")
	assert.True(t, sum.GrossSales.Equal(decimal.NewFromInt(12600)), "18 * 700")

	assert.NotEmpty(t, sum.ValuationDisplay, "el monto formateado acompaña al crudo")
	assert.Contains(t, sum.ValuationDisplay, "$")

	require.Len(t, sum.LowStock, 1)
	assert.Equal(t, "p1", sum.LowStock[0].ID)
	assert.True(t, sum.LowStock[0].LowStock)
}

func TestSummary_SinDatos(t *testing.T) {
	store := storeCon(t, nil, nil)
	uc := usecase.NewDashboardUseCase(store)

	sum := uc.Summary()

	assert.Zero(t, sum.TotalProducts)
	assert.Zero(t, sum.LowStockCount)
	assert.True(t, sum.Valuation.IsZero())
	assert.Empty(t, sum.LowStock)
}

func TestSalesHours_AgrupaPorHoraDentroDelRango(t *testing.T) {
	// Hora local: los buckets se indexan por hora local del día.
	at := func(hour int) string {
		return time.Date(2026, 8, 25, hour, 30, 0, 0, time.Local).Format(time.RFC3339)
	}
	movements := []entity.Movement{
		{ID: "m1", ProductID: "p1", Type: entity.MovementTypeOUT, Qty: decimal.NewFromInt(2), AtISO: at(9)},
		{ID: "m2", ProductID: "p1", Type: entity.MovementTypeOUT, Qty: decimal.NewFromInt(1), AtISO: at(9)},
		{ID: "m3", ProductID: "p1", Type: entity.MovementTypeOUT, Qty: decimal.NewFromInt(5), AtISO: at(17)},
		// Las entradas no son ventas, no cuentan.
		{ID: "m4", ProductID: "p1", Type: entity.MovementTypeIN, Qty: decimal.NewFromInt(50), AtISO: at(9)},
	}
	store := storeCon(t, []entity.Product{agua()}, movements)
	uc := usecase.NewDashboardUseCase(store)

	from := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 8, 26, 0, 0, 0, 0, time.Local)
	resp := uc.SalesHours(from, to)

	require.Len(t, resp.SalesByHour, 24)
	assert.Equal(t, 2, resp.SalesByHour[9])
	assert.Equal(t, 1, resp.SalesByHour[17])
	assert.Equal(t, 3, resp.TotalSales)
	assert.True(t, resp.TotalUnits.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, 9, resp.PeakHour, "dos ventas a las 9 contra una a las 17")
	assert.Equal(t, 17, resp.PeakUnitsHour, "5 unidades a las 17 contra 3 a las 9")
}

func TestSalesHours_FechasCeroUsanUltimaSemana(t *testing.T) {
	store := storeCon(t, nil, nil)
	uc := usecase.NewDashboardUseCase(store)

	resp := uc.SalesHours(time.Time{}, time.Time{})

	assert.False(t, resp.From.IsZero())
	assert.False(t, resp.To.IsZero())
	assert.WithinDuration(t, resp.To.AddDate(0, 0, -7), resp.From, time.Second)
	assert.Equal(t, 0, resp.PeakHour, "sin ventas el pico reporta hora 0")
	assert.Zero(t, resp.PeakSalesValue)
}
