package dto

import "github.com/shopspring/decimal"

// RegisterMovementRequest entrada para registrar un movimiento.
// Para IN/OUT la cantidad debe ser > 0; para ADJUST es el stock final (>= 0).
type RegisterMovementRequest struct {
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"` // IN, OUT, ADJUST
	Qty       decimal.Decimal `json:"qty"`
	Note      string          `json:"note,omitempty"`
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"`
	Qty       decimal.Decimal `json:"qty"`
	Note      string          `json:"note,omitempty"`
	User      string          `json:"user,omitempty"`
	At        string          `json:"at,omitempty"` // ISO-8601; vacío si el registro histórico no tiene fecha parseable
}

// MovementListResponse lista de movimientos, más nuevo primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
