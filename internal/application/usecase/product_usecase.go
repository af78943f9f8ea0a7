package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/kiosco-stock/internal/application/dto"
	"github.com/tu-usuario/kiosco-stock/internal/application/state"
	"github.com/tu-usuario/kiosco-stock/internal/domain"
	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
	"github.com/tu-usuario/kiosco-stock/internal/domain/stock"
	"github.com/tu-usuario/kiosco-stock/internal/domain/validation"
)

// ProductUseCase administra el catálogo: altas, ediciones y baja lógica.
// El stock de cada producto se deriva del ledger en cada lectura.
type ProductUseCase struct {
	store *state.Store
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store *state.Store) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// List devuelve el catálogo con stock derivado. includeInactive agrega los
// productos dados de baja.
func (uc *ProductUseCase) List(includeInactive bool) dto.ProductListResponse {
	s := uc.store.Snapshot()
	stockByID := stock.ComputeStock(s.Products, s.Movements)

	items := make([]dto.ProductResponse, 0, len(s.Products))
	for i := range s.Products {
		p := &s.Products[i]
		if !includeInactive && !p.IsActive() {
			continue
		}
		items = append(items, toProductResponse(p, stockByID[p.ID]))
	}
	return dto.ProductListResponse{Items: items, Total: len(items)}
}

// GetByID devuelve un producto por ID (activo o no) con su stock.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	s := uc.store.Snapshot()
	for i := range s.Products {
		if s.Products[i].ID == id {
			stockByID := stock.ComputeStock(s.Products, s.Movements)
			resp := toProductResponse(&s.Products[i], stockByID[id])
			return &resp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Upsert valida el candidato y lo inserta o reemplaza. Devuelve la lista de
// mensajes de validación; no vacía significa rechazado.
func (uc *ProductUseCase) Upsert(in dto.UpsertProductRequest) (*dto.ProductResponse, []string, error) {
	candidate := entity.Product{
		ID:       in.ID,
		Name:     in.Name,
		SKU:      in.SKU,
		Category: in.Category,
		Cost:     in.Cost,
		Price:    in.Price,
		MinStock: in.MinStock,
		Active:   in.Active,
	}
	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	}

	var verrs []string
	err := uc.store.Update(func(s state.State) (state.Action, error) {
		// Al editar sin flag explícito se preserva el estado activo previo.
		if candidate.Active == nil {
			for i := range s.Products {
				if s.Products[i].ID == candidate.ID {
					candidate.Active = s.Products[i].Active
					break
				}
			}
		}
		verrs = validation.ValidateProduct(candidate, s.Products)
		if len(verrs) > 0 {
			return nil, nil
		}
		return state.UpsertProduct{Product: candidate}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	resp, err := uc.GetByID(candidate.ID)
	return resp, nil, err
}

// Deactivate baja lógica: marca Active=false, nunca borra. El historial de
// movimientos del producto queda intacto.
func (uc *ProductUseCase) Deactivate(id string) error {
	return uc.store.Update(func(s state.State) (state.Action, error) {
		for i := range s.Products {
			if s.Products[i].ID == id {
				return state.DeactivateProduct{ID: id}, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

func toProductResponse(p *entity.Product, current decimal.Decimal) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		SKU:      p.SKU,
		Category: p.Category,
		Cost:     p.Cost,
		Price:    p.Price,
		MinStock: p.MinStock,
		Active:   p.IsActive(),
		Stock:    current,
		LowStock: current.LessThanOrEqual(p.MinStock),
	}
}
