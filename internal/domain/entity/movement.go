package entity

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del ledger.
const (
	MovementTypeIN     = "IN"     // entrada: suma al stock
	MovementTypeOUT    = "OUT"    // salida/venta: resta del stock
	MovementTypeADJUST = "ADJUST" // ajuste: setea stock absoluto
)

// ValidMovementType indica si el tipo es uno de los tres reconocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUST:
		return true
	}
	return false
}

// Movement es una entrada inmutable del ledger append-only.
// Puede referenciar un producto ya dado de baja: la baja lógica no invalida
// el historial.
type Movement struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Type      string          `json:"type"`
	Qty       decimal.Decimal `json:"qty"`
	Note      string          `json:"note,omitempty"`
	User      string          `json:"user,omitempty"`
	AtISO     string          `json:"atISO,omitempty"`

	// Campos de fecha heredados de blobs viejos. Se conservan crudos porque el
	// formato no es homogéneo: ISO, epoch en segundos o en milisegundos.
	CreatedAt json.RawMessage `json:"createdAt,omitempty"`
	Datetime  json.RawMessage `json:"datetime,omitempty"`
	Date      json.RawMessage `json:"date,omitempty"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
}

// DateCandidates devuelve los valores de fecha en orden de preferencia.
func (m *Movement) DateCandidates() []json.RawMessage {
	candidates := []json.RawMessage{m.CreatedAt, m.Datetime, m.Date, m.Timestamp}
	if m.AtISO != "" {
		raw, _ := json.Marshal(m.AtISO)
		candidates = append(candidates, raw)
	}
	return candidates
}

// movementAlias evita la recursión en UnmarshalJSON.
type movementAlias Movement

// UnmarshalJSON tolera cantidades corruptas en blobs viejos: si qty no es un
// número ni un string numérico queda en cero, en lugar de tumbar la carga
// completa del ledger.
func (m *Movement) UnmarshalJSON(data []byte) error {
	aux := struct {
		*movementAlias
		Qty json.RawMessage `json:"qty"`
	}{movementAlias: (*movementAlias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.Qty = coerceQty(aux.Qty)
	return nil
}

func coerceQty(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err == nil {
		return d
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if d, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil {
			return d
		}
	}
	return decimal.Zero
}
