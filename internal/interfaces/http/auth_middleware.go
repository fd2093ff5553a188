package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
)

// LocalAuthenticated clave en c.Locals con el indicador de sesión de administrador.
const LocalAuthenticated = "authenticated"

// sessionValidator lo implementa *auth.AuthUseCase.
type sessionValidator interface {
	Authenticated(token string) bool
}

// SessionMiddleware lee el token de la cookie de sesión (o de Authorization: Bearer)
// y deja en c.Locals si la petición viene de un administrador. Nunca rechaza.
func SessionMiddleware(validator sessionValidator, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = strings.TrimSpace(parts[1])
			}
		}
		c.Locals(LocalAuthenticated, validator.Authenticated(token))
		return c.Next()
	}
}

// RequireSession responde 401 si SessionMiddleware no marcó la petición como autenticada.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAuthenticated(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "inicie sesión"})
		}
		return c.Next()
	}
}

// IsAuthenticated devuelve el indicador de sesión del contexto.
func IsAuthenticated(c *fiber.Ctx) bool {
	ok, _ := c.Locals(LocalAuthenticated).(bool)
	return ok
}
