package dto

import (
	"time"

	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

// BackupVersion versión del formato de backup.
const BackupVersion = 1

// BackupFile estado completo exportable/importable. El import reemplaza todo
// (semántica last-write-wins, sin merge).
type BackupFile struct {
	Version    int               `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Products   []entity.Product  `json:"products"`
	Movements  []entity.Movement `json:"movements"`
}
