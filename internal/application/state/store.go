package state

import (
	"slices"
	"sync"

	"github.com/tu-usuario/kiosco-stock/internal/domain/repository"
)

// Store posee el State detrás de un mutex y persiste cada transición a través
// de los repositorios (reemplazo de colección completa). El sistema modela un
// solo actor; el lock solo garantiza que cada paso validar→anexar→persistir
// corra completo sin intercalarse con otro request.
type Store struct {
	mu        sync.Mutex
	state     State
	products  repository.ProductRepository
	movements repository.MovementRepository
}

// NewStore construye el store sobre los repositorios.
func NewStore(products repository.ProductRepository, movements repository.MovementRepository) *Store {
	return &Store{products: products, movements: movements}
}

// Load inicializa el estado desde los repositorios. No persiste: las
// colecciones recién se leyeron.
func (s *Store) Load() error {
	products, err := s.products.GetAll()
	if err != nil {
		return err
	}
	movements, err := s.movements.GetAll()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(State{}, Init{Products: products, Movements: movements})
	return nil
}

// Snapshot devuelve una copia del estado para derivar vistas sin lock.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Products:  slices.Clone(s.state.Products),
		Movements: slices.Clone(s.state.Movements),
	}
}

// Dispatch aplica la acción y persiste las colecciones afectadas.
func (s *Store) Dispatch(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(a)
}

// Update ejecuta fn con el estado actual bajo el lock; si fn devuelve una
// acción, se aplica en el mismo paso atómico. Es el punto de entrada del flujo
// de aceptación: fn valida contra el estado vigente y decide la transición.
func (s *Store) Update(fn func(current State) (Action, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	action, err := fn(s.state)
	if err != nil {
		return err
	}
	if action == nil {
		return nil
	}
	return s.applyLocked(action)
}

// applyLocked reduce y persiste. Si la persistencia falla, el estado en
// memoria se revierte para no divergir del blob.
func (s *Store) applyLocked(a Action) error {
	previous := s.state
	s.state = Reduce(previous, a)

	var err error
	switch a.(type) {
	case UpsertProduct, DeactivateProduct:
		err = s.products.SaveAll(s.state.Products)
	case AddMovement:
		err = s.movements.SaveAll(s.state.Movements)
	case Init, ResetAll:
		if err = s.products.SaveAll(s.state.Products); err == nil {
			err = s.movements.SaveAll(s.state.Movements)
		}
	}
	if err != nil {
		s.state = previous
		return err
	}
	return nil
}
