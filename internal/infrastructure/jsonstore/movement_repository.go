package jsonstore

import (
	"errors"

	"github.com/tu-usuario/kiosco-stock/internal/domain"
	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

const movementsKey = "movements"

// MovementRepository ledger de movimientos sobre el blob "movements".
// El slice persiste en orden cronológico (más viejo primero).
type MovementRepository struct {
	store *Store
	max   int // tope del ledger; 0 = sin tope
}

// NewMovementRepository construye el repositorio con el tope configurado.
func NewMovementRepository(store *Store, maxMovements int) *MovementRepository {
	return &MovementRepository{store: store, max: maxMovements}
}

// GetAll devuelve el ledger completo; si el blob no existe siembra los
// movimientos iniciales.
func (r *MovementRepository) GetAll() ([]entity.Movement, error) {
	var movements []entity.Movement
	err := r.store.Read(movementsKey, &movements)
	if errors.Is(err, domain.ErrNotFound) {
		movements = SeedMovements()
		if err := r.store.Write(movementsKey, movements); err != nil {
			return nil, err
		}
		return movements, nil
	}
	if err != nil {
		return nil, err
	}
	return movements, nil
}

// SaveAll reemplaza el ledger completo. Si supera el tope, recorta desechando
// los movimientos más viejos (el frente del slice).
func (r *MovementRepository) SaveAll(movements []entity.Movement) error {
	if r.max > 0 && len(movements) > r.max {
		movements = movements[len(movements)-r.max:]
	}
	return r.store.Write(movementsKey, movements)
}
