package dto

import "github.com/shopspring/decimal"

// UpsertProductRequest entrada para crear o editar un producto. Sin ID se
// crea con identificador generado; con ID se reemplaza el registro.
type UpsertProductRequest struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
	MinStock decimal.Decimal `json:"min_stock"`
	Active   *bool           `json:"active,omitempty"`
}

// ProductResponse salida de un producto con su stock derivado del ledger.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
	MinStock decimal.Decimal `json:"min_stock"`
	Active   bool            `json:"active"`
	Stock    decimal.Decimal `json:"stock"`
	LowStock bool            `json:"low_stock"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
