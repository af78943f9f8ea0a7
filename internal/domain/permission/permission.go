// Package permission tabla de permisos por rol. La comprobación ocurre antes
// de invocar la validación: el rol gatea qué tipos de movimiento y qué
// acciones de catálogo puede ejecutar cada usuario.
package permission

import "github.com/tu-usuario/kiosco-stock/internal/domain/entity"

// Action acción gateada por rol.
type Action string

const (
	ProductCreate        Action = "PRODUCT_CREATE"
	ProductDeactivate    Action = "PRODUCT_DEACTIVATE"
	MovementCreateIN     Action = "MOVEMENT_CREATE_IN"
	MovementCreateOUT    Action = "MOVEMENT_CREATE_OUT"
	MovementCreateADJUST Action = "MOVEMENT_CREATE_ADJUST"
	MovementsViewAll     Action = "MOVEMENTS_VIEW_ALL"
	BackupManage         Action = "BACKUP_MANAGE"
)

var byRole = map[string][]Action{
	entity.RoleAdmin: {
		ProductCreate,
		ProductDeactivate,
		MovementCreateIN,
		MovementCreateOUT,
		MovementCreateADJUST,
		MovementsViewAll,
		BackupManage,
	},
	entity.RoleBodeguero: {
		MovementCreateIN,
		MovementCreateADJUST,
		MovementsViewAll,
	},
	entity.RoleVendedor: {
		MovementCreateOUT,
	},
}

// Can indica si el rol puede ejecutar la acción.
func Can(role string, action Action) bool {
	for _, a := range byRole[role] {
		if a == action {
			return true
		}
	}
	return false
}

// ForMovementType mapea un tipo de movimiento a la acción que lo gatea.
func ForMovementType(movementType string) (Action, bool) {
	switch movementType {
	case entity.MovementTypeIN:
		return MovementCreateIN, true
	case entity.MovementTypeOUT:
		return MovementCreateOUT, true
	case entity.MovementTypeADJUST:
		return MovementCreateADJUST, true
	}
	return "", false
}
