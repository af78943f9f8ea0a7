// Package validation reglas puras de entrada de datos. Devuelven una lista
// ordenada de mensajes para el usuario (lista vacía = válido) y nunca
// devuelven error: el caller re-pregunta.
package validation

import (
	"strings"

	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

// ValidateProduct valida un candidato antes de admitirlo al catálogo.
// El SKU debe ser único (sin distinguir mayúsculas, tras trim) entre todos los
// productos, activos e inactivos, excluyendo al que se está editando.
func ValidateProduct(p entity.Product, allProducts []entity.Product) []string {
	var errs []string

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "El nombre es requerido.")
	}
	if strings.TrimSpace(p.SKU) == "" {
		errs = append(errs, "El SKU/código es requerido.")
	}
	if strings.TrimSpace(p.Category) == "" {
		errs = append(errs, "La categoría es requerida.")
	}

	if p.Cost.IsNegative() {
		errs = append(errs, "Costo inválido (no negativo).")
	}
	if p.Price.IsNegative() {
		errs = append(errs, "Precio inválido (no negativo).")
	}
	if p.MinStock.IsNegative() {
		errs = append(errs, "Stock mínimo inválido (no negativo).")
	}

	sku := strings.ToLower(strings.TrimSpace(p.SKU))
	if sku != "" {
		for i := range allProducts {
			other := &allProducts[i]
			if other.ID == p.ID {
				continue
			}
			if strings.ToLower(strings.TrimSpace(other.SKU)) == sku {
				errs = append(errs, "El SKU ya existe. Debe ser único.")
				break
			}
		}
	}

	return errs
}

// ValidateMovement valida un candidato antes de anexarlo al ledger.
// Reglas de negocio adicionales (ej. rechazar una salida mayor al stock
// disponible) se componen por concatenación sobre esta lista, no la
// reemplazan.
func ValidateMovement(m entity.Movement, products []entity.Product) []string {
	var errs []string

	if m.ProductID == "" {
		errs = append(errs, "Producto requerido.")
	}
	exists := false
	for i := range products {
		if products[i].ID == m.ProductID {
			exists = true
			break
		}
	}
	if !exists {
		errs = append(errs, "Producto no encontrado.")
	}

	if !entity.ValidMovementType(m.Type) {
		errs = append(errs, "Tipo de movimiento inválido.")
	}

	if m.Type == entity.MovementTypeADJUST {
		if m.Qty.IsNegative() {
			errs = append(errs, "En ajuste, el stock final no puede ser negativo.")
		}
	} else {
		if !m.Qty.IsPositive() {
			errs = append(errs, "La cantidad debe ser mayor a 0.")
		}
	}

	return errs
}
