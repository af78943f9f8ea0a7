package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// Estados de usuario.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del kiosco.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"` // bcrypt, nunca plano
	Name         string    `json:"name,omitempty"`
	Role         string    `json:"role"` // admin, bodeguero, vendedor
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
