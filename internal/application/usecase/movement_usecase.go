package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/kiosco-stock/internal/application/dto"
	"github.com/tu-usuario/kiosco-stock/internal/application/state"
	"github.com/tu-usuario/kiosco-stock/internal/domain/analytics"
	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
	"github.com/tu-usuario/kiosco-stock/internal/domain/stock"
	"github.com/tu-usuario/kiosco-stock/internal/domain/validation"
)

// MovementUseCase registra movimientos en el ledger y lista el historial.
type MovementUseCase struct {
	store *state.Store
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(store *state.Store) *MovementUseCase {
	return &MovementUseCase{store: store}
}

// Register valida el candidato y lo anexa al ledger en un solo paso atómico:
// validar → reglas de negocio → anexar → persistir. Para salidas, la regla
// "no vender más de lo disponible" se concatena a la lista de validación, no
// la reemplaza. Lista no vacía significa rechazado (el movimiento no entró).
func (uc *MovementUseCase) Register(in dto.RegisterMovementRequest, username string) (*dto.MovementResponse, []string, error) {
	candidate := entity.Movement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Qty:       in.Qty,
		Note:      in.Note,
		User:      username,
		AtISO:     time.Now().Format(time.RFC3339),
	}

	var verrs []string
	err := uc.store.Update(func(s state.State) (state.Action, error) {
		verrs = validation.ValidateMovement(candidate, s.Products)

		if len(verrs) == 0 && candidate.Type == entity.MovementTypeOUT {
			available := stock.ComputeStock(s.Products, s.Movements)[candidate.ProductID]
			if candidate.Qty.GreaterThan(available) {
				verrs = append(verrs, fmt.Sprintf("Stock insuficiente. Disponible: %s.", available.String()))
			}
		}
		if len(verrs) > 0 {
			return nil, nil
		}
		return state.AddMovement{Movement: candidate}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	resp := toMovementResponse(&candidate)
	return &resp, nil, nil
}

// List devuelve el historial más nuevo primero. Sin permiso de ver todo,
// solo los movimientos registrados por username. limit <= 0 devuelve todo.
func (uc *MovementUseCase) List(username string, viewAll bool, limit int) dto.MovementListResponse {
	s := uc.store.Snapshot()

	items := make([]dto.MovementResponse, 0, len(s.Movements))
	for i := len(s.Movements) - 1; i >= 0; i-- {
		m := &s.Movements[i]
		if !viewAll && m.User != username {
			continue
		}
		items = append(items, toMovementResponse(m))
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return dto.MovementListResponse{Items: items, Total: len(items)}
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	at := ""
	if when, ok := analytics.MovementTime(m); ok {
		at = when.Format(time.RFC3339)
	}
	return dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Qty:       m.Qty,
		Note:      m.Note,
		User:      m.User,
		At:        at,
	}
}
