// Package repository define los contratos de persistencia. El almacén trabaja
// por colección completa: se lee todo y se reemplaza todo, sin updates
// parciales ni lenguaje de consulta.
package repository

import "github.com/tu-usuario/kiosco-stock/internal/domain/entity"

// ProductRepository catálogo completo de productos.
type ProductRepository interface {
	GetAll() ([]entity.Product, error)
	SaveAll(products []entity.Product) error
}

// MovementRepository ledger completo de movimientos, en orden cronológico
// (más viejo primero). SaveAll puede recortar al máximo configurado,
// desechando los más viejos.
type MovementRepository interface {
	GetAll() ([]entity.Movement, error)
	SaveAll(movements []entity.Movement) error
}

// UserRepository usuarios del sistema.
type UserRepository interface {
	GetAll() ([]entity.User, error)
	SaveAll(users []entity.User) error
	FindByUsername(username string) (*entity.User, error)
}
