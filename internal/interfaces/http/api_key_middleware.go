package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/cadastra/cadastro-api/internal/application/dto"
)

// APIKeyMiddleware protege as rotas internas (ex.: /api/party) exigindo o
// header X-API-Key igual à chave configurada. Comparação em tempo constante.
func APIKeyMiddleware(internalKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Get("X-API-Key")
		if internalKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(internalKey)) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "Acesso negado",
			})
		}
		return c.Next()
	}
}
