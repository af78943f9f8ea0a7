package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/kiosco-stock/internal/application/dto"
	"github.com/tu-usuario/kiosco-stock/internal/application/usecase"
	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

func TestExport_IncluyeEstadoCompleto(t *testing.T) {
	store := storeCon(t, []entity.Product{agua()}, []entity.Movement{entradaDe(5)})
	uc := usecase.NewBackupUseCase(store)

	file := uc.Export()

	assert.Equal(t, dto.BackupVersion, file.Version)
	assert.False(t, file.ExportedAt.IsZero())
	require.Len(t, file.Products, 1)
	require.Len(t, file.Movements, 1)
	assert.Equal(t, "p1", file.Products[0].ID)
}

func TestImport_ReemplazaElEstado(t *testing.T) {
	store := storeCon(t, []entity.Product{agua()}, []entity.Movement{entradaDe(5)})
	uc := usecase.NewBackupUseCase(store)

	otro := agua()
	otro.ID = "p2"
	otro.SKU = "CHIC-001"
	otro.Name = "Chicle"
	verrs, err := uc.Import(dto.BackupFile{
		Version:  dto.BackupVersion,
		Products: []entity.Product{otro},
		Movements: []entity.Movement{
			{ID: "mx", ProductID: "p2", Type: entity.MovementTypeIN, Qty: decimal.NewFromInt(3), User: "admin"},
		},
	})

	require.NoError(t, err)
	assert.Empty(t, verrs)

	s := store.Snapshot()
	require.Len(t, s.Products, 1)
	assert.Equal(t, "p2", s.Products[0].ID, "el catálogo anterior desapareció")
	require.Len(t, s.Movements, 1)
	assert.Equal(t, "mx", s.Movements[0].ID)
}

func TestImport_UnRegistroInvalidoNoTocaNada(t *testing.T) {
	store := storeCon(t, []entity.Product{agua()}, nil)
	uc := usecase.NewBackupUseCase(store)

	roto := agua()
	roto.ID = "p2"
	roto.SKU = "CHIC-001"
	roto.Name = "" // nombre requerido
	verrs, err := uc.Import(dto.BackupFile{
		Version:  dto.BackupVersion,
		Products: []entity.Product{agua(), roto},
		Movements: []entity.Movement{
			{ID: "mx", ProductID: "inexistente", Type: entity.MovementTypeIN, Qty: decimal.NewFromInt(1)},
		},
	})

	require.NoError(t, err)
	require.NotEmpty(t, verrs)
	assert.Contains(t, verrs[0], "Producto 2:", "el mensaje ubica el registro con problema")
	assert.Contains(t, verrs[len(verrs)-1], "Movimiento 1:")

	s := store.Snapshot()
	assert.Len(t, s.Products, 1, "o entra todo el archivo o no entra nada")
	assert.Empty(t, s.Movements)
}

func TestImport_VersionFuturaRechazada(t *testing.T) {
	store := storeCon(t, nil, nil)
	uc := usecase.NewBackupUseCase(store)

	verrs, err := uc.Import(dto.BackupFile{Version: dto.BackupVersion + 1})

	require.NoError(t, err)
	require.Len(t, verrs, 1)
	assert.Contains(t, verrs[0], "Versión de backup no soportada")
}

func TestReset_DejaElEstadoVacio(t *testing.T) {
	store := storeCon(t, []entity.Product{agua()}, []entity.Movement{entradaDe(5)})
	uc := usecase.NewBackupUseCase(store)

	require.NoError(t, uc.Reset())

	s := store.Snapshot()
	assert.Empty(t, s.Products)
	assert.Empty(t, s.Movements)
}
