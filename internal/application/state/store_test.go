package state_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/kiosco-stock/internal/application/state"
	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

// Repositorios en memoria para los tests del store.

type fakeProductRepo struct {
	products []entity.Product
	saves    int
	failSave bool
}

func (r *fakeProductRepo) GetAll() ([]entity.Product, error) { return r.products, nil }
func (r *fakeProductRepo) SaveAll(products []entity.Product) error {
	if r.failSave {
		return errors.New("disco lleno")
	}
	r.products = products
	r.saves++
	return nil
}

type fakeMovementRepo struct {
	movements []entity.Movement
	saves     int
}

func (r *fakeMovementRepo) GetAll() ([]entity.Movement, error) { return r.movements, nil }
func (r *fakeMovementRepo) SaveAll(movements []entity.Movement) error {
	r.movements = movements
	r.saves++
	return nil
}

func newTestStore(t *testing.T, products []entity.Product, movements []entity.Movement) (*state.Store, *fakeProductRepo, *fakeMovementRepo) {
	t.Helper()
	pr := &fakeProductRepo{products: products}
	mr := &fakeMovementRepo{movements: movements}
	store := state.NewStore(pr, mr)
	require.NoError(t, store.Load())
	return store, pr, mr
}

func TestStore_LoadCargaDesdeRepos(t *testing.T) {
	store, _, _ := newTestStore(t,
		[]entity.Product{producto("p1", "S-1")},
		[]entity.Movement{movimiento("m1", "p1")},
	)

	s := store.Snapshot()
	assert.Len(t, s.Products, 1)
	assert.Len(t, s.Movements, 1)
}

func TestStore_DispatchPersisteLaColeccionAfectada(t *testing.T) {
	store, pr, mr := newTestStore(t, nil, nil)

	require.NoError(t, store.Dispatch(state.UpsertProduct{Product: producto("p1", "S-1")}))

	assert.Equal(t, 1, pr.saves)
	assert.Equal(t, 0, mr.saves, "un upsert de producto no toca el ledger")
	assert.Len(t, pr.products, 1)
}

func TestStore_UpdateAplicaLaAccionBajoElLock(t *testing.T) {
	store, _, mr := newTestStore(t, []entity.Product{producto("p1", "S-1")}, nil)

	err := store.Update(func(current state.State) (state.Action, error) {
		require.Len(t, current.Products, 1)
		return state.AddMovement{Movement: movimiento("m1", "p1")}, nil
	})

	require.NoError(t, err)
	assert.Len(t, store.Snapshot().Movements, 1)
	assert.Equal(t, 1, mr.saves)
}

func TestStore_UpdateSinAccionNoTransiciona(t *testing.T) {
	store, pr, mr := newTestStore(t, nil, nil)

	require.NoError(t, store.Update(func(state.State) (state.Action, error) {
		return nil, nil
	}))

	assert.Equal(t, 0, pr.saves)
	assert.Equal(t, 0, mr.saves)
}

func TestStore_UpdatePropagaElErrorDeFn(t *testing.T) {
	store, _, _ := newTestStore(t, nil, nil)
	sentinel := errors.New("rechazado")

	err := store.Update(func(state.State) (state.Action, error) {
		return nil, sentinel
	})

	assert.ErrorIs(t, err, sentinel)
}

func TestStore_FalloDePersistenciaRevierteElEstado(t *testing.T) {
	store, pr, _ := newTestStore(t, nil, nil)
	pr.failSave = true

	err := store.Dispatch(state.UpsertProduct{Product: producto("p1", "S-1")})

	require.Error(t, err)
	assert.Empty(t, store.Snapshot().Products, "el estado en memoria no diverge del blob")
}

func TestStore_SnapshotDevuelveCopias(t *testing.T) {
	store, _, _ := newTestStore(t, []entity.Product{producto("p1", "S-1")}, nil)

	s := store.Snapshot()
	s.Products[0].Name = "mutado"

	assert.Equal(t, "p1", store.Snapshot().Products[0].Name)
}
