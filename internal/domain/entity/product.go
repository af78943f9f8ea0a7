package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo del kiosco.
// El stock nunca se guarda aquí: se deriva siempre del ledger de movimientos.
// La baja es lógica (Active=false) para no invalidar el historial.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"` // único entre activos e inactivos
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
	MinStock decimal.Decimal `json:"minStock"`
	Active   *bool           `json:"active,omitempty"` // ausente = activo
}

// IsActive trata la ausencia del flag como activo (blobs viejos no lo traen).
func (p *Product) IsActive() bool {
	return p.Active == nil || *p.Active
}

// Bool helper para el flag Active.
func Bool(b bool) *bool { return &b }
