package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-ledger/internal/application/auth"
	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	pkgjwt "github.com/jhoicas/pos-ledger/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "pos-ledger-test"
)

func testUseCase(creds auth.Credentials) *auth.AuthUseCase {
	return auth.NewAuthUseCase(creds, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc := testUseCase(auth.Credentials{Username: "admin", Password: "1234"})

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Username)
	assert.Equal(t, auth.RoleAdmin, out.Role)

	// El token emitido debe ser parseable con el mismo secret.
	username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, auth.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := testUseCase(auth.Credentials{Username: "admin", Password: "1234"})
	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "4321"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioIncorrecto(t *testing.T) {
	uc := testUseCase(auth.Credentials{Username: "admin", Password: "1234"})
	_, err := uc.Login(dto.LoginRequest{Username: "root", Password: "1234"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_HashBcryptTienePrioridad(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segura"), bcrypt.MinCost)
	require.NoError(t, err)

	uc := testUseCase(auth.Credentials{
		Username:     "admin",
		Password:     "1234", // ignorada cuando hay hash
		PasswordHash: string(hash),
	})

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "segura"})
	assert.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "1234"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"con hash configurado la password plana deja de valer")
}
