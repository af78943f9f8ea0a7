package usecase

import (
	"fmt"
	"time"

	"github.com/tu-usuario/kiosco-stock/internal/application/dto"
	"github.com/tu-usuario/kiosco-stock/internal/application/state"
	"github.com/tu-usuario/kiosco-stock/internal/domain/validation"
)

// BackupUseCase exporta e importa el estado completo. El import es reemplazo
// total: o entra todo el archivo o no entra nada.
type BackupUseCase struct {
	store *state.Store
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(store *state.Store) *BackupUseCase {
	return &BackupUseCase{store: store}
}

// Export devuelve el estado completo como archivo de backup.
func (uc *BackupUseCase) Export() dto.BackupFile {
	s := uc.store.Snapshot()
	return dto.BackupFile{
		Version:    dto.BackupVersion,
		ExportedAt: time.Now(),
		Products:   s.Products,
		Movements:  s.Movements,
	}
}

// Import valida el archivo completo y reemplaza el estado. Devuelve la lista
// de mensajes si algún registro no pasa validación; en ese caso no se tocó
// nada. Los movimientos se importan en el orden del archivo, que se asume
// cronológico (es el orden en que Export los escribe).
func (uc *BackupUseCase) Import(in dto.BackupFile) ([]string, error) {
	if in.Version > dto.BackupVersion {
		return []string{fmt.Sprintf("Versión de backup no soportada: %d.", in.Version)}, nil
	}

	var verrs []string
	for i := range in.Products {
		for _, msg := range validation.ValidateProduct(in.Products[i], in.Products) {
			verrs = append(verrs, fmt.Sprintf("Producto %d: %s", i+1, msg))
		}
	}
	for i := range in.Movements {
		for _, msg := range validation.ValidateMovement(in.Movements[i], in.Products) {
			verrs = append(verrs, fmt.Sprintf("Movimiento %d: %s", i+1, msg))
		}
	}
	if len(verrs) > 0 {
		return verrs, nil
	}

	err := uc.store.Dispatch(state.Init{Products: in.Products, Movements: in.Movements})
	return nil, err
}

// Reset borra catálogo y ledger (estado vacío persistido).
func (uc *BackupUseCase) Reset() error {
	return uc.store.Dispatch(state.ResetAll{})
}
