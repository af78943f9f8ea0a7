// Package state modela el estado de la aplicación y su función de transición.
// No hay store global ambiente: el State se pasa explícito y Reduce es una
// función pura sobre una variante etiquetada de acciones.
package state

import (
	"slices"

	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

// State es el estado completo en memoria: catálogo + ledger.
// Movements se mantiene en orden cronológico (más viejo primero), que es el
// orden de aplicación que espera el pliegue de stock.
type State struct {
	Products  []entity.Product
	Movements []entity.Movement
}

// Action es la variante etiquetada de transición.
type Action interface{ isAction() }

// Init reemplaza el estado completo (carga inicial o import de backup).
type Init struct {
	Products  []entity.Product
	Movements []entity.Movement
}

// UpsertProduct inserta o reemplaza un producto por ID.
type UpsertProduct struct{ Product entity.Product }

// DeactivateProduct baja lógica: marca Active=false, nunca borra.
type DeactivateProduct struct{ ID string }

// AddMovement anexa un movimiento al final del ledger.
type AddMovement struct{ Movement entity.Movement }

// ResetAll vuelve al estado vacío.
type ResetAll struct{}

func (Init) isAction()              {}
func (UpsertProduct) isAction()     {}
func (DeactivateProduct) isAction() {}
func (AddMovement) isAction()       {}
func (ResetAll) isAction()          {}

// Reduce aplica la acción y devuelve el nuevo estado sin mutar el anterior.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Init:
		return State{
			Products:  slices.Clone(a.Products),
			Movements: slices.Clone(a.Movements),
		}

	case UpsertProduct:
		products := slices.Clone(s.Products)
		for i := range products {
			if products[i].ID == a.Product.ID {
				products[i] = a.Product
				return State{Products: products, Movements: s.Movements}
			}
		}
		return State{Products: append(products, a.Product), Movements: s.Movements}

	case DeactivateProduct:
		products := slices.Clone(s.Products)
		for i := range products {
			if products[i].ID == a.ID {
				products[i].Active = entity.Bool(false)
			}
		}
		return State{Products: products, Movements: s.Movements}

	case AddMovement:
		movements := append(slices.Clone(s.Movements), a.Movement)
		return State{Products: s.Products, Movements: movements}

	case ResetAll:
		return State{}
	}
	return s
}
