// Package stock es el motor de derivación del inventario: el stock nunca se
// almacena, se calcula plegando el ledger de movimientos.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

// ComputeStock pliega el ledger en stock absoluto por producto.
// Reglas:
//   - IN suma
//   - OUT resta
//   - ADJUST setea stock absoluto (qty)
//
// El mapa resultante cubre todos los productos (default cero). Movimientos que
// referencian productos desconocidos se ignoran. El pliegue es una reducción
// estricta de izquierda a derecha: para que ADJUST signifique "stock absoluto
// en ese punto", el caller debe entregar los movimientos en orden cronológico.
func ComputeStock(products []entity.Product, movements []entity.Movement) map[string]decimal.Decimal {
	stockByID := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		stockByID[p.ID] = decimal.Zero
	}

	for i := range movements {
		m := &movements[i]
		current, ok := stockByID[m.ProductID]
		if !ok {
			continue
		}
		switch m.Type {
		case entity.MovementTypeIN:
			stockByID[m.ProductID] = current.Add(m.Qty)
		case entity.MovementTypeOUT:
			stockByID[m.ProductID] = current.Sub(m.Qty)
		case entity.MovementTypeADJUST:
			stockByID[m.ProductID] = m.Qty
		}
	}

	return stockByID
}
