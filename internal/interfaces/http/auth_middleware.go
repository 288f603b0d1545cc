package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cadastra/cadastro-api/internal/application/dto"
	"github.com/cadastra/cadastro-api/pkg/jwt"
)

// LocalEmail chave em c.Locals com o email (subject) do token validado.
const LocalEmail = "email"

// AuthMiddleware valida o Bearer Token JWT e coloca o subject em c.Locals.
// Toda falha (header ausente, formato errado, assinatura, expiração, subject
// ausente) responde o mesmo 401 com desafio WWW-Authenticate, sem indicar
// qual verificação falhou.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c)
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c)
		}
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code: "INVALID_CREDENTIALS", Message: "Não foi possível validar as credenciais",
	})
}

// GetEmail devolve o email do contexto (depois do middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
