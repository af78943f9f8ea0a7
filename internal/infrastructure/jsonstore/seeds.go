package jsonstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

// SeedProducts catálogo inicial del kiosco para la primera corrida.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:       "p_agua_500",
			Name:     "Agua 500ml",
			SKU:      "AGUA-500",
			Category: "Bebidas",
			Cost:     decimal.NewFromInt(350),
			Price:    decimal.NewFromInt(700),
			MinStock: decimal.NewFromInt(10),
			Active:   entity.Bool(true),
		},
		{
			ID:       "p_chicle",
			Name:     "Chicle",
			SKU:      "CHIC-001",
			Category: "Golosinas",
			Cost:     decimal.NewFromInt(80),
			Price:    decimal.NewFromInt(200),
			MinStock: decimal.NewFromInt(20),
			Active:   entity.Bool(true),
		},
	}
}

// SeedMovements compras iniciales, en orden cronológico.
func SeedMovements() []entity.Movement {
	now := time.Now().Format(time.RFC3339)
	return []entity.Movement{
		{
			ID:        "m1",
			ProductID: "p_agua_500",
			Type:      entity.MovementTypeIN,
			Qty:       decimal.NewFromInt(30),
			Note:      "Compra inicial",
			User:      "admin",
			AtISO:     now,
		},
		{
			ID:        "m2",
			ProductID: "p_chicle",
			Type:      entity.MovementTypeIN,
			Qty:       decimal.NewFromInt(50),
			Note:      "Compra inicial",
			User:      "admin",
			AtISO:     now,
		},
	}
}

// SeedUsers devuelve la función de siembra de usuarios con los passwords de
// configuración (pensados para development; en producción se cambian por env).
func SeedUsers(adminPassword, employeePassword string) func() ([]entity.User, error) {
	return func() ([]entity.User, error) {
		adminHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		employeeHash, err := bcrypt.GenerateFromPassword([]byte(employeePassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		return []entity.User{
			{
				ID:           uuid.New().String(),
				Username:     "admin",
				PasswordHash: string(adminHash),
				Name:         "Administrador",
				Role:         entity.RoleAdmin,
				Status:       entity.UserStatusActive,
				CreatedAt:    now,
			},
			{
				ID:           uuid.New().String(),
				Username:     "kiosco",
				PasswordHash: string(employeeHash),
				Name:         "Kiosco",
				Role:         entity.RoleVendedor,
				Status:       entity.UserStatusActive,
				CreatedAt:    now,
			},
		}, nil
	}
}
