package jsonstore

import (
	"errors"
	"strings"

	"github.com/tu-usuario/kiosco-stock/internal/domain"
	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

const usersKey = "users"

// UserRepository usuarios sobre el blob "users".
type UserRepository struct {
	store *Store
	seed  func() ([]entity.User, error)
}

// NewUserRepository construye el repositorio; seed se invoca una sola vez si
// el blob no existe (los hashes bcrypt se generan recién ahí).
func NewUserRepository(store *Store, seed func() ([]entity.User, error)) *UserRepository {
	return &UserRepository{store: store, seed: seed}
}

// GetAll devuelve todos los usuarios, sembrando en la primera corrida.
func (r *UserRepository) GetAll() ([]entity.User, error) {
	var users []entity.User
	err := r.store.Read(usersKey, &users)
	if errors.Is(err, domain.ErrNotFound) {
		users, err = r.seed()
		if err != nil {
			return nil, err
		}
		if err := r.store.Write(usersKey, users); err != nil {
			return nil, err
		}
		return users, nil
	}
	if err != nil {
		return nil, err
	}
	return users, nil
}

// SaveAll reemplaza la colección de usuarios.
func (r *UserRepository) SaveAll(users []entity.User) error {
	return r.store.Write(usersKey, users)
}

// FindByUsername busca por username exacto (tras trim). Devuelve nil sin
// error si no existe.
func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	users, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}
