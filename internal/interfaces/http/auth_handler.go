package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cadastra/cadastro-api/internal/application/auth"
	"github.com/cadastra/cadastro-api/internal/application/dto"
	"github.com/cadastra/cadastro-api/internal/domain"
)

// AuthHandler trata login e a rota protegida de exemplo.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrCredenciaisInvalidas) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "INVALID_CREDENTIALS", Message: "Email ou senha incorretos.",
			})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Protegido godoc
// @Summary      Rota protegida de exemplo
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /protegido [get]
func (h *AuthHandler) Protegido(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"mensagem": "Você acessou uma rota protegida!",
		"user":     fiber.Map{"email": GetEmail(c)},
	})
}
