// Package auth implementa el login del administrador de la tienda.
// No hay registro de usuarios: las credenciales vienen de la configuración.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/pkg/jwt"
)

// RoleAdmin único rol de la aplicación.
const RoleAdmin = "admin"

// Credentials credenciales configuradas del administrador.
// Si PasswordHash (bcrypt) está presente tiene prioridad sobre Password.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación.
type AuthUseCase struct {
	creds  Credentials
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(creds Credentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, jwtCfg: jwtCfg}
}

// Login verifica username/password contra las credenciales configuradas y
// genera un JWT. Retorna ErrUnauthorized en cualquier credencial incorrecta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.creds.Username)) != 1 {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.verifyPassword(in.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.creds.Username, RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Username: uc.creds.Username,
		Role:     RoleAdmin,
	}, nil
}

func (uc *AuthUseCase) verifyPassword(password string) error {
	if uc.creds.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(uc.creds.PasswordHash), []byte(password))
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(uc.creds.Password)) != 1 {
		return domain.ErrUnauthorized
	}
	return nil
}
