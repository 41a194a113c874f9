package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/barsilva/bar-erp/internal/application/auth"
	"github.com/barsilva/bar-erp/internal/application/dto"
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/infrastructure/memory"
	"github.com/barsilva/bar-erp/pkg/jwt"
)

func setupAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := memory.New()
	store.SetOwner(&entity.User{
		ID:           "owner",
		Username:     "silva",
		PasswordHash: string(hash),
		Name:         "Bar do Silva",
		CreatedAt:    time.Now(),
	})

	return auth.NewAuthUseCase(memory.NewUserRepository(store), auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "bar-erp",
	})
}

func TestLogin(t *testing.T) {
	uc := setupAuth(t)

	out, err := uc.Login(dto.LoginRequest{Username: "silva", Password: "segredo123"})
	require.NoError(t, err)

	assert.Equal(t, "silva", out.User.Username)
	assert.Equal(t, "Bar do Silva", out.User.Name)

	userID, name, err := jwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "owner", userID)
	assert.Equal(t, "Bar do Silva", name)
}

func TestLoginCredenciaisErradas(t *testing.T) {
	uc := setupAuth(t)

	_, err := uc.Login(dto.LoginRequest{Username: "silva", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "nao-existe", Password: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuário desconhecido recebe o mesmo erro")
}
