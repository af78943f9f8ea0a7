package stock

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

// Metrics son los KPIs del dashboard, derivados del catálogo + stock plegado.
type Metrics struct {
	TotalProducts   int             // productos activos
	LowStockCount   int             // activos con stock <= minStock (borde inclusivo)
	Valuation       decimal.Decimal // sum(stock * cost)
	PotentialMargin decimal.Decimal // sum(stock * (price - cost))
	GrossSales      decimal.Decimal // sum sobre OUT de price * qty
}

// ComputeMetrics calcula las métricas sin mutar sus entradas. Cost, Price y
// MinStock ausentes valen cero; movimientos OUT de productos inexistentes
// aportan cero a GrossSales.
func ComputeMetrics(products []entity.Product, stockByID map[string]decimal.Decimal, movements []entity.Movement) Metrics {
	m := Metrics{
		Valuation:       decimal.Zero,
		PotentialMargin: decimal.Zero,
		GrossSales:      decimal.Zero,
	}

	priceByID := make(map[string]decimal.Decimal, len(products))
	for i := range products {
		p := &products[i]
		priceByID[p.ID] = p.Price

		if !p.IsActive() {
			continue
		}
		m.TotalProducts++

		current := stockByID[p.ID]
		if current.LessThanOrEqual(p.MinStock) {
			m.LowStockCount++
		}
		m.Valuation = m.Valuation.Add(current.Mul(p.Cost))
		m.PotentialMargin = m.PotentialMargin.Add(current.Mul(p.Price.Sub(p.Cost)))
	}

	for i := range movements {
		mv := &movements[i]
		if mv.Type != entity.MovementTypeOUT {
			continue
		}
		price, ok := priceByID[mv.ProductID]
		if !ok {
			continue
		}
		m.GrossSales = m.GrossSales.Add(price.Mul(mv.Qty))
	}

	return m
}

// LowStockProducts lista los productos activos en o bajo su umbral mínimo,
// para el widget de alertas del dashboard.
func LowStockProducts(products []entity.Product, stockByID map[string]decimal.Decimal) []entity.Product {
	var low []entity.Product
	for i := range products {
		p := &products[i]
		if !p.IsActive() {
			continue
		}
		if stockByID[p.ID].LessThanOrEqual(p.MinStock) {
			low = append(low, *p)
		}
	}
	return low
}
