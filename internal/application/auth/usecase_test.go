package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/kiosco-stock/internal/application/auth"
	"github.com/tu-usuario/kiosco-stock/internal/application/dto"
	"github.com/tu-usuario/kiosco-stock/internal/domain"
	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/kiosco-stock/pkg/jwt"
)

type memUserRepo struct{ users []entity.User }

func (r *memUserRepo) GetAll() ([]entity.User, error) { return r.users, nil }
func (r *memUserRepo) SaveAll(u []entity.User) error  { r.users = u; return nil }
func (r *memUserRepo) FindByUsername(username string) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			return &r.users[i], nil
		}
	}
	return nil, nil
}

const testSecret = "secret-de-test"

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "kiosco-stock-test"}
}

func userWith(t *testing.T, username, password, role, status string) entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return entity.User{
		ID:           "u1",
		Username:     username,
		PasswordHash: string(hash),
		Name:         "Usuario de Prueba",
		Role:         role,
		Status:       status,
		CreatedAt:    time.Now(),
	}
}

func TestLogin_CredencialesValidasEmiteTokenConRol(t *testing.T) {
	repo := &memUserRepo{users: []entity.User{
		userWith(t, "kiosco", "123456", entity.RoleVendedor, entity.UserStatusActive),
	}}
	uc := auth.NewUseCase(repo, testJWTConfig())

	resp, err := uc.Login(dto.LoginRequest{Username: "kiosco", Password: "123456"})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "kiosco", resp.User.Username)
	assert.Equal(t, entity.RoleVendedor, resp.User.Role)

	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, claims.Role, "el rol viaja dentro del token")
}

func TestLogin_RecortaEspaciosDelUsername(t *testing.T) {
	repo := &memUserRepo{users: []entity.User{
		userWith(t, "admin", "admin123", entity.RoleAdmin, entity.UserStatusActive),
	}}
	uc := auth.NewUseCase(repo, testJWTConfig())

	resp, err := uc.Login(dto.LoginRequest{Username: "  admin  ", Password: "admin123"})

	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Username)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := &memUserRepo{users: []entity.User{
		userWith(t, "admin", "admin123", entity.RoleAdmin, entity.UserStatusActive),
	}}
	uc := auth.NewUseCase(repo, testJWTConfig())

	resp, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewUseCase(&memUserRepo{}, testJWTConfig())

	resp, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "x"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivoBloqueado(t *testing.T) {
	repo := &memUserRepo{users: []entity.User{
		userWith(t, "viejo", "123456", entity.RoleVendedor, entity.UserStatusInactive),
	}}
	uc := auth.NewUseCase(repo, testJWTConfig())

	resp, err := uc.Login(dto.LoginRequest{Username: "viejo", Password: "123456"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"password correcta pero usuario dado de baja")
}
