package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/pkg/jwt"
)

// RoleAdmin único rol de sesión.
const RoleAdmin = "admin"

// SessionConfig configuración para generación de tokens de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials credenciales del administrador. PasswordHash es bcrypt; si está vacío
// se hashea Password al construir el caso de uso.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// AuthUseCase login del administrador y validación de sesiones.
type AuthUseCase struct {
	username string
	hash     []byte
	session  SessionConfig
}

// NewAuthUseCase construye el caso de uso. Sin contraseña configurada el login siempre falla.
func NewAuthUseCase(creds Credentials, session SessionConfig) (*AuthUseCase, error) {
	uc := &AuthUseCase{username: creds.Username, session: session}
	switch {
	case creds.PasswordHash != "":
		uc.hash = []byte(creds.PasswordHash)
	case creds.Password != "":
		h, err := HashPassword(creds.Password)
		if err != nil {
			return nil, err
		}
		uc.hash = []byte(h)
	}
	return uc, nil
}

// HashPassword devuelve el hash bcrypt de password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: contraseña vacía", domain.ErrInvalidInput)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Enabled indica si hay credenciales configuradas.
func (uc *AuthUseCase) Enabled() bool {
	return len(uc.hash) > 0
}

// Login verifica usuario/contraseña y emite el token de sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.Enabled() {
		return nil, domain.ErrUnauthorized
	}
	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.username)) == 1
	if err := bcrypt.CompareHashAndPassword(uc.hash, []byte(in.Password)); err != nil || !userOK {
		return nil, domain.ErrUnauthorized
	}
	token, exp, err := jwt.Generate(uc.session.Secret, uc.username, RoleAdmin, uc.session.Issuer, uc.session.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: exp}, nil
}

// Authenticated indica si token es una sesión válida de administrador.
func (uc *AuthUseCase) Authenticated(token string) bool {
	if token == "" {
		return false
	}
	subject, role, err := jwt.Parse(uc.session.Secret, token)
	if err != nil {
		return false
	}
	return role == RoleAdmin && subject == uc.username
}
